package bounds

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// fingerprintPrefix namespaces cache keys so a shared backend (e.g. one
// Redis database) can hold pagination entries next to other data.
const fingerprintPrefix = "pagination"

// Key is the set of pagination parameters that participate in a
// fingerprint. The fields are serialized in a fixed order, so the
// resulting key never depends on caller-side map ordering.
type Key struct {
	// Page is the requested page number (0 in return-all mode).
	Page int

	// PageSize is the requested page size (0 in return-all mode).
	PageSize int

	// All discriminates return-all mode from normal pagination, so a
	// return-all result can never shadow a page-1 result of the same
	// collection.
	All bool
}

// String returns the canonical serialization of the key.
func (k Key) String() string {
	return fmt.Sprintf("page=%d:size=%d:all=%t", k.Page, k.PageSize, k.All)
}

// Fingerprint computes a deterministic cache key for the given collection
// and pagination parameters.
//
// Format: "pagination:<xxh64(data)>:<xxh64(key)>" with both hashes in hex.
// Structurally equal data and equal keys always map to the same
// fingerprint; encoding/json sorts map keys, which keeps the data hash
// independent of insertion order. Fingerprint never fails: values that
// cannot be marshalled (a caller precondition violation) fall back to
// hashing their fmt representation.
func Fingerprint(data any, key Key) string {
	serialized, err := json.Marshal(data)
	if err != nil {
		serialized = []byte(fmt.Sprintf("%+v", data))
	}
	dataHash := xxhash.Sum64(serialized)
	keyHash := xxhash.Sum64String(key.String())
	return fmt.Sprintf("%s:%016x:%016x", fingerprintPrefix, dataHash, keyHash)
}
