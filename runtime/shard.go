package runtime

import "hash/fnv"

// shardCount fans the registry and typing maps out over independent
// locks so unrelated identities and conversations never serialize on
// each other.
const shardCount = 32

func shardIndex(key string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return h.Sum32() % shardCount
}
