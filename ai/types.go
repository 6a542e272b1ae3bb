package ai

// RankedMatch is one entry of the generator's output: an identifier from
// the supplied candidate context plus a short explanation of the match.
// It is untrusted until the identifier resolves in the record store.
type RankedMatch struct {
	Id          string `json:"id"`
	Explanation string `json:"match_explanation"`
}

// PlaceholderExplanation is used when the generator omits an explanation
// or when the pipeline degrades to similarity-ranked results after the
// generator becomes unavailable.
const PlaceholderExplanation = "Matched on overall profile similarity."
