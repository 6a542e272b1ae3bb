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


package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/veridian-labs/cofoundry/core"
)

// header is the canonical CSV column order.
var header = []string{
	"id", "founder_name", "email", "role", "company", "location",
	"idea", "about", "keywords", "stage", "linked_in", "notes",
}

// WriteCSV writes profiles to w in the canonical column order.
func WriteCSV(w io.Writer, profiles []*core.Profile) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return err
	}
	for _, p := range profiles {
		record := []string{
			string(p.Id), p.FounderName, p.Email, string(p.Role),
			p.Company, p.Location, p.Idea, p.About, p.Keywords,
			string(p.Stage), p.LinkedIn, p.Notes,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes profiles to the named file, creating or
// truncating it.
func WriteCSVFile(path string, profiles []*core.Profile) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, profiles); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadCSV parses profiles from r. The header row must carry the
// canonical columns; rows are validated as they are read.
func ReadCSV(r io.Reader) ([]*core.Profile, error) {
	cr := csv.NewReader(r)

	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	cols, err := mapColumns(head)
	if err != nil {
		return nil, err
	}

	var profiles []*core.Profile
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv row %d: %w", line, err)
		}

		p := &core.Profile{
			Id:          core.ID(record[cols["id"]]),
			FounderName: record[cols["founder_name"]],
			Email:       record[cols["email"]],
			Role:        core.Role(record[cols["role"]]),
			Company:     record[cols["company"]],
			Location:    record[cols["location"]],
			Idea:        record[cols["idea"]],
			About:       record[cols["about"]],
			Keywords:    record[cols["keywords"]],
			Stage:       core.Stage(record[cols["stage"]]),
			LinkedIn:    record[cols["linked_in"]],
			Notes:       record[cols["notes"]],
		}
		if err := core.ValidateProfile(p); err != nil {
			return nil, fmt.Errorf("csv row %d: %w", line, err)
		}
		profiles = append(profiles, p)
	}

	return profiles, nil
}

// ReadCSVFile parses profiles from the named file.
func ReadCSVFile(path string) ([]*core.Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// mapColumns resolves each canonical column to its position, so files
// with reordered columns still load.
func mapColumns(head []string) (map[string]int, error) {
	cols := make(map[string]int, len(head))
	for i, name := range head {
		cols[name] = i
	}
	for _, required := range header {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("csv header missing column %q", required)
		}
	}
	return cols, nil
}
