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


package query

import (
	"regexp"
	"sort"
	"strings"

	"github.com/veridian-labs/cofoundry/core"
)

// locationAliases maps query tokens to canonical location strings.
// Canonical forms themselves are matched too (lowercased).
var locationAliases = map[string]string{
	"san francisco, usa":   "San Francisco, USA",
	"san francisco":        "San Francisco, USA",
	"sf":                   "San Francisco, USA",
	"new york, usa":        "New York, USA",
	"new york":             "New York, USA",
	"ny":                   "New York, USA",
	"nyc":                  "New York, USA",
	"london, uk":           "London, UK",
	"london":               "London, UK",
	"berlin, germany":      "Berlin, Germany",
	"berlin":               "Berlin, Germany",
	"bangalore, india":     "Bangalore, India",
	"bangalore":            "Bangalore, India",
	"blr":                  "Bangalore, India",
	"singapore, singapore": "Singapore, Singapore",
	"singapore":            "Singapore, Singapore",
	"sg":                   "Singapore, Singapore",
	"toronto, canada":      "Toronto, Canada",
	"toronto":              "Toronto, Canada",
	"paris, france":        "Paris, France",
	"paris":                "Paris, France",
}

// stageAliases maps query tokens to canonical funding stages.
var stageAliases = map[string]core.Stage{
	"pre-seed": core.StagePreSeed,
	"preseed":  core.StagePreSeed,
	"pre seed": core.StagePreSeed,
	"seed":     core.StageSeed,
	"series a": core.StageSeriesA,
	"series-a": core.StageSeriesA,
	"growth":   core.StageGrowth,
}

type aliasEntry struct {
	token    string
	pattern  *regexp.Regexp
	location string     // set for location aliases
	stage    core.Stage // set for stage aliases
}

// aliasTable holds all aliases sorted longest token first (ties broken
// lexicographically). The order is load-bearing: some aliases are
// substrings of others ("seed" within "pre-seed", "a" variants within
// "series a"), and the longest alias must win.
var aliasTable []aliasEntry

func init() {
	for token, canonical := range locationAliases {
		aliasTable = append(aliasTable, aliasEntry{token: token, location: canonical})
	}
	for token, stage := range stageAliases {
		aliasTable = append(aliasTable, aliasEntry{token: token, stage: stage})
	}
	sort.Slice(aliasTable, func(i, j int) bool {
		if len(aliasTable[i].token) != len(aliasTable[j].token) {
			return len(aliasTable[i].token) > len(aliasTable[j].token)
		}
		return aliasTable[i].token < aliasTable[j].token
	})
	for i := range aliasTable {
		aliasTable[i].pattern = wordPattern(aliasTable[i].token)
	}
}

// wordPattern compiles a case-insensitive whole-word pattern for a token,
// so "a" never matches inside "area" and "ny" never inside "company".
func wordPattern(token string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(token) + `\b`)
}

// ExtractFilters scans a query for location and funding-stage aliases and
// returns the residual query with the matched tokens stripped, plus the
// extracted filter. At most one location and one stage are extracted; the
// longest matching alias wins. Pure function, no error cases: absence of
// a match simply leaves the corresponding filter field unset.
func ExtractFilters(q string) (string, core.Filter) {
	var filter core.Filter
	cleaned := q

	for _, entry := range aliasTable {
		if entry.location != "" {
			if filter.Location != "" {
				continue
			}
			if entry.pattern.MatchString(cleaned) {
				filter.Location = entry.location
				cleaned = entry.pattern.ReplaceAllString(cleaned, " ")
			}
			continue
		}
		if filter.Stage != "" {
			continue
		}
		if entry.pattern.MatchString(cleaned) {
			filter.Stage = entry.stage
			cleaned = entry.pattern.ReplaceAllString(cleaned, " ")
		}
	}

	return collapseSpaces(cleaned), filter
}

// collapseSpaces squeezes runs of whitespace left behind by stripping and
// trims stray separators at the edges.
func collapseSpaces(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.Trim(s, " ,;")
	return s
}
