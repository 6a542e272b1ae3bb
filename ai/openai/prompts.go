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


package openai

import "fmt"

// rankSystemPrompt instructs the model to act as a matchmaking analyst.
// The candidate list it receives has already been filtered upstream, so
// the model must never second-guess location or stage constraints and
// must never invent candidates outside the supplied list.
const rankSystemPrompt = `You are an expert startup co-founder matchmaker. You are given a search query and a list of candidate founder profiles. The candidates have already been filtered for any location or funding-stage requirements in the query, so treat the list as final and do not exclude candidates for those reasons.

Select up to 5 candidates that best match the query, ordered from best to worst. Use ONLY the "id" values that appear in the candidate list. Never invent ids.

Respond with ONLY a JSON array, no prose and no markdown. Each element must be an object with exactly two keys:
  "id": the candidate's id, copied verbatim
  "match_explanation": one or two sentences explaining why this candidate fits the query

If no candidate is a reasonable match, respond with an empty JSON array: []`

// buildRankPrompt assembles the human turn for a ranking request.
func buildRankPrompt(query string, contextJSON string) string {
	return fmt.Sprintf("Search query: %s\n\nCandidate profiles:\n%s", query, contextJSON)
}
