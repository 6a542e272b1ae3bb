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


// Package search implements the matchmaking pipeline.
//
// The Searcher type runs a multi-stage algorithm for each query:
//   - Hard filter extraction from the natural-language query
//   - Vector retrieval over the indexed founder documents
//   - Bounded context assembly for the generator
//   - Generative re-ranking with explanations
//   - Defensive compilation of the final match list
//
// The generator is treated as untrusted: its output is re-validated
// against the stored profiles and the extracted filters before anything
// is returned to the caller.
package search
