// Copyright 2026 Veridian Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"slices"
)

// ValidateProfile validates a Profile according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//   - FounderName must not be empty
//   - Role, Stage and Location must come from the fixed vocabularies
//
// NOT validated:
//   - Idea/About/Notes (free text, may be empty)
//   - Keywords (free-form comma-separated tags)
func ValidateProfile(p *Profile) error {
	if p == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}

	if p.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyId)
	}

	if p.FounderName == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyFounderName)
	}

	if !slices.Contains(Roles, p.Role) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidProfile, ErrInvalidRole, p.Role)
	}

	if !ValidStage(p.Stage) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidProfile, ErrInvalidStage, p.Stage)
	}

	if !slices.Contains(Locations, p.Location) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidProfile, ErrInvalidLocation, p.Location)
	}

	return nil
}

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//   - Text must not be empty
//   - Stage must come from the fixed vocabulary
//
// NOT validated:
//   - Vector (empty until the ingestion pipeline embeds the text)
func ValidateDocument(d *Document) error {
	if d == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if d.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyId)
	}

	if d.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyDocumentText)
	}

	if !ValidStage(d.Stage) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidDocument, ErrInvalidStage, d.Stage)
	}

	return nil
}

// ValidStage reports whether a Stage value is part of the fixed vocabulary.
func ValidStage(s Stage) bool {
	return slices.Contains(Stages, s)
}
