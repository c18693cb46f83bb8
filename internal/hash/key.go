package hash

import "github.com/cespare/xxhash/v2"

// Key computes the xxHash64 of a template string, used to key the
// template-parse cache.
func Key(template string) uint64 {
	return xxhash.Sum64String(template)
}
