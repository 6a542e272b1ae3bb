package badger

import (
	"fmt"

	"github.com/veridian-labs/cofoundry/core"
)

// Key prefixes for different data types
const (
	profileRecordPrefix  = "profrec"
	documentRecordPrefix = "docrec"
	indexMetaFingerprint = "idxmeta:fingerprint"
)

// makeProfileKey generates a key for a profile record by ID.
func makeProfileKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s", profileRecordPrefix, id))
}

// makeDocumentKey generates a key for an indexed document by ID.
// Document keys sort lexicographically by id, which fixes the tie-break
// order of equal-score search hits.
func makeDocumentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s", documentRecordPrefix, id))
}
