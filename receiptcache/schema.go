package receiptcache

// chainproofPrefix is used to prefix all data stored by this
// cache, avoiding collisions with other consumers of a shared
// key-val store.
var chainproofPrefix = []byte("cp:")

// receiptPrefix is used to prefix all receipt entries in the
// key-val store.
var receiptPrefix = prefix("receipt:")

// receiptKey generates a unique key for a cached receipt.
//
// receiptKey = cp:receipt:<id>
func receiptKey(id string) []byte {
	key := make([]byte, 0, len(receiptPrefix)+len(id))
	key = append(key, receiptPrefix...)
	key = append(key, id...)
	return key
}

func prefix(s string) []byte {
	return append(chainproofPrefix, s...)
}
