package search

import (
	"encoding/json"

	"github.com/veridian-labs/cofoundry/core"
)

// contextEntry is the shape of a single candidate as presented to the
// generator. Location and stage are included so explanations can
// reference them, even though filtering already happened upstream.
type contextEntry struct {
	Id       string `json:"id"`
	Location string `json:"location"`
	Stage    string `json:"stage"`
	Content  string `json:"content"`
}

// buildContext serializes up to limit candidates into the JSON document
// handed to the generator. Candidates arrive ranked, so truncation keeps
// the best ones.
func buildContext(candidates []*core.Candidate, limit int) (string, error) {
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	entries := make([]contextEntry, 0, len(candidates))
	for _, c := range candidates {
		if c == nil || c.Document == nil {
			continue
		}
		entries = append(entries, contextEntry{
			Id:       string(c.Document.Id),
			Location: c.Document.Location,
			Stage:    string(c.Document.Stage),
			Content:  c.Document.Text,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
