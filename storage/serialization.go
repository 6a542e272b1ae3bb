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


package storage

import (
	"github.com/veridian-labs/cofoundry/core"
)

// MarshalProfile serializes a Profile to bytes.
func MarshalProfile(p *core.Profile) []byte {
	buf := make([]byte, core.ProfileMUS.Size(*p))
	core.ProfileMUS.Marshal(*p, buf)
	return buf
}

// UnmarshalProfile deserializes a Profile from bytes.
func UnmarshalProfile(data []byte) (*core.Profile, error) {
	p, _, err := core.ProfileMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// MarshalDocument serializes a Document to bytes.
func MarshalDocument(d *core.Document) []byte {
	buf := make([]byte, core.DocumentMUS.Size(*d))
	core.DocumentMUS.Marshal(*d, buf)
	return buf
}

// UnmarshalDocument deserializes a Document from bytes.
func UnmarshalDocument(data []byte) (*core.Document, error) {
	d, _, err := core.DocumentMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
