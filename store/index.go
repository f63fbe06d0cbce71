package store

import "bitbucket.org/pawhaus/backoffice_backend/utils"

// Index is a secondary grouping of entity ids by a mutable field value
// (status, category, counterparty id). It is derived state: the primary
// store stays authoritative for existence, the index only answers
// "which ids currently have this value".
type Index struct {
	buckets map[string][]string
}

func NewIndex() *Index {
	return &Index{buckets: map[string][]string{}}
}

func (ix *Index) Add(key, id string) {
	ix.buckets[key] = append(ix.buckets[key], id)
}

// Move relocates id when its indexed field changed. Removal from the
// old bucket happens before the append so a same-key move cannot leave
// a duplicate.
func (ix *Index) Move(oldKey, newKey, id string) {
	if oldKey == newKey {
		return
	}
	ix.Remove(oldKey, id)
	ix.Add(newKey, id)
}

func (ix *Index) Remove(key, id string) {
	bucket := utils.RemoveString(ix.buckets[key], id)
	if len(bucket) == 0 {
		delete(ix.buckets, key)
		return
	}
	ix.buckets[key] = bucket
}

// Bucket returns the ids currently indexed under key.
func (ix *Index) Bucket(key string) []string {
	return ix.buckets[key]
}

func (ix *Index) Keys() []string {
	keys := make([]string, 0, len(ix.buckets))
	for k := range ix.buckets {
		keys = append(keys, k)
	}
	return keys
}

// Rebuild discards the buckets and refills them from the primary map.
// iter must call the yield function once per (key, id) pair.
func (ix *Index) Rebuild(iter func(yield func(key, id string))) {
	ix.buckets = map[string][]string{}
	iter(func(key, id string) {
		ix.Add(key, id)
	})
}
