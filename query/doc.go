// Package query turns free-text search queries into structured filters.
//
// A fixed vocabulary of location and funding-stage aliases is scanned
// case-insensitively with whole-word boundaries. Matched tokens are
// stripped from the query so that filter keywords do not dilute the
// semantic similarity search run on the residual text.
package query
