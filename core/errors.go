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

import "errors"

// Domain validation errors
var (
	// ErrInvalidProfile indicates a Profile failed validation.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrEmptyId indicates the Id field is empty.
	ErrEmptyId = errors.New("id cannot be empty")

	// ErrEmptyFounderName indicates the FounderName field is empty.
	ErrEmptyFounderName = errors.New("founder name cannot be empty")

	// ErrInvalidRole indicates a Role value outside the fixed vocabulary.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidStage indicates a Stage value outside the fixed vocabulary.
	ErrInvalidStage = errors.New("invalid stage")

	// ErrInvalidLocation indicates a Location outside the fixed vocabulary.
	ErrInvalidLocation = errors.New("invalid location")

	// ErrEmptyDocumentText indicates the rendered document text is empty.
	ErrEmptyDocumentText = errors.New("document text cannot be empty")

	// ErrIdMismatch indicates a document does not carry its profile's id.
	ErrIdMismatch = errors.New("document id does not match profile id")
)
