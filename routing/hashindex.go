package routing

import "github.com/cespare/xxhash/v2"

// hashIndex is the exact-path index (hash_path in spec.md §4.3). It is
// a hand-rolled open-addressing table keyed by xxhash.Sum64String of
// the literal path instead of Go's built-in map, so that the
// "sub-microsecond" hot path described in spec.md §2 does the hashing
// with a single well-pipelined xxhash pass rather than runtime's
// generic, randomized string hash. See SPEC_FULL.md's DOMAIN STACK
// section.
type hashIndex struct {
	buckets []hashSlot
	count   int
}

type hashSlot struct {
	used bool
	dead bool
	key  string
	list *candidateList
}

const hashIndexInitialSize = 16

func newHashIndex() *hashIndex {
	return &hashIndex{buckets: make([]hashSlot, hashIndexInitialSize)}
}

func (h *hashIndex) slotFor(key string) int {
	n := len(h.buckets)
	i := int(xxhash.Sum64String(key) % uint64(n))
	firstTombstone := -1
	for probed := 0; probed < n; probed++ {
		s := &h.buckets[i]
		if !s.used {
			if s.dead {
				if firstTombstone < 0 {
					firstTombstone = i
				}
			} else {
				if firstTombstone >= 0 {
					return firstTombstone
				}
				return i
			}
		} else if s.key == key {
			return i
		}
		i = (i + 1) % n
	}
	if firstTombstone >= 0 {
		return firstTombstone
	}
	return -1
}

func (h *hashIndex) maybeGrow() {
	if h.count*2 < len(h.buckets) {
		return
	}
	old := h.buckets
	h.buckets = make([]hashSlot, len(old)*2)
	h.count = 0
	for _, s := range old {
		if s.used {
			h.rawInsert(s.key, s.list)
		}
	}
}

func (h *hashIndex) rawInsert(key string, list *candidateList) {
	i := h.slotFor(key)
	h.buckets[i] = hashSlot{used: true, key: key, list: list}
	h.count++
}

// Get returns the candidate list registered for the exact path key, if any.
func (h *hashIndex) Get(key string) (*candidateList, bool) {
	if len(h.buckets) == 0 {
		return nil, false
	}
	i := h.slotFor(key)
	if i < 0 || !h.buckets[i].used || h.buckets[i].key != key {
		return nil, false
	}
	return h.buckets[i].list, true
}

// GetOrCreate returns the existing candidate list for key, or creates
// and registers an empty one.
func (h *hashIndex) GetOrCreate(key string) *candidateList {
	if list, ok := h.Get(key); ok {
		return list
	}
	h.maybeGrow()
	list := &candidateList{}
	h.rawInsert(key, list)
	return list
}

// Delete removes the entry for key entirely (used once its candidate
// list becomes empty).
func (h *hashIndex) Delete(key string) {
	if len(h.buckets) == 0 {
		return
	}
	i := h.slotFor(key)
	if i < 0 || !h.buckets[i].used || h.buckets[i].key != key {
		return
	}
	h.buckets[i] = hashSlot{dead: true}
	h.count--
}
