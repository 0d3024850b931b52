package alertdb

import (
	"sync"

	"github.com/linkedin/goavro/v2"
)

// schemaCache maps schema identifiers to compiled Avro codecs.
//
// Entries are immutable once inserted and live for the lifetime of the
// client; there is no eviction. Concurrent first-time lookups for the same
// uncached identifier may each fetch the schema, in which case the last
// write wins. The parses are semantically equivalent, so the duplicate
// fetch is harmless and cheaper than single-flight coordination relative
// to alert traffic.
type schemaCache struct {
	mu     sync.RWMutex
	codecs map[uint32]*goavro.Codec
}

func newSchemaCache() *schemaCache {
	return &schemaCache{
		codecs: make(map[uint32]*goavro.Codec),
	}
}

func (sc *schemaCache) get(schemaID uint32) (*goavro.Codec, bool) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	codec, ok := sc.codecs[schemaID]
	return codec, ok
}

func (sc *schemaCache) put(schemaID uint32, codec *goavro.Codec) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.codecs[schemaID] = codec
}

func (sc *schemaCache) size() int {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return len(sc.codecs)
}
