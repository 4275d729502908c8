package redis

import "fmt"

// Redis key patterns for the document store
// Following the pattern: entity:collection or entity:collection:id

// DocKey is the hash holding a single document's fields
func DocKey(collection, id string) string {
	return fmt.Sprintf("doc:%s:%s", collection, id)
}

// CollectionIndexKey is the sorted set of document ids, scored by insertion sequence
func CollectionIndexKey(collection string) string {
	return fmt.Sprintf("docs:%s", collection)
}

// CollectionSeqKey is the INCR counter backing insertion order scores
func CollectionSeqKey(collection string) string {
	return fmt.Sprintf("seq:%s", collection)
}

// SingletonDocID is the fixed document id used by singleton collections
const SingletonDocID = "singleton"

// Rate limit keys
func RateLimitKey(identifier, keyPrefix string) string {
	return fmt.Sprintf("rate_limit:%s:%s", keyPrefix, identifier)
}
