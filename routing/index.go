package routing

import "sort"

// candidateList is the sorted set of processed records sharing one
// path key, kept ordered by higherPriority (spec.md §4.3: descending
// priority, ties broken by descending original-path length).
type candidateList struct {
	records []*record
}

func (c *candidateList) insert(r *record) {
	c.records = append(c.records, r)
	sort.SliceStable(c.records, func(i, j int) bool {
		return higherPriority(c.records[i], c.records[j])
	})
}

// remove deletes the entry with the given id, reporting whether one
// was found.
func (c *candidateList) remove(id string) bool {
	for i, r := range c.records {
		if r.id == id {
			c.records = append(c.records[:i], c.records[i+1:]...)
			return true
		}
	}
	return false
}

func (c *candidateList) empty() bool { return len(c.records) == 0 }

// routeIndex is the pair of indices described in spec.md §4.3: an
// exact-path hash table, and a radix tree keyed by path_key whose
// payload is a small sequential integer indexing into match_data.
type routeIndex struct {
	hashPath         *hashIndex
	prefixTree       *tree
	matchData        map[int]*candidateList
	nextDataKey      int
	disablePathCache bool
}

func newRouteIndex(disablePathCache bool) *routeIndex {
	return &routeIndex{
		hashPath:         newHashIndex(),
		prefixTree:       newTree(),
		matchData:        make(map[int]*candidateList),
		disablePathCache: disablePathCache,
	}
}

// insert places r into the hash index (path_op == Equal, unless
// Options.DisablePathCache forces everything through the tree) or the
// radix-tree-backed store (path_op == PrefixMatch), allocating a new
// match_data slot the first time a path_key is seen. nextDataKey is
// never reused, so the key handed to prefixTree.Insert here has never
// been seen by the tree before; combined with the Find immediately
// above always reporting its absence truthfully (both read the same
// tree under the router's single exclusive write lock), Insert cannot
// fail here.
func (ix *routeIndex) insert(r *record) {
	if r.pathOp == Equal && !ix.disablePathCache {
		ix.hashPath.GetOrCreate(r.pathOriginal).insert(r)
		return
	}

	if dataKey, ok := ix.prefixTree.Find([]byte(r.pathKey)); ok {
		ix.matchData[dataKey].insert(r)
		return
	}

	ix.nextDataKey++
	dataKey := ix.nextDataKey
	list := &candidateList{}
	list.insert(r)
	ix.matchData[dataKey] = list
	ix.prefixTree.Insert([]byte(r.pathKey), dataKey)
}

// remove locates the candidate list for r's path_key/path_original,
// removes the entry with r.id, and releases the key entirely (from
// the hash index, or from both the tree and match_data) once the list
// empties. It reports whether an entry was actually removed.
func (ix *routeIndex) remove(r *record) bool {
	if r.pathOp == Equal && !ix.disablePathCache {
		list, ok := ix.hashPath.Get(r.pathOriginal)
		if !ok {
			return false
		}
		removed := list.remove(r.id)
		if removed && list.empty() {
			ix.hashPath.Delete(r.pathOriginal)
		}
		return removed
	}

	dataKey, ok := ix.prefixTree.Find([]byte(r.pathKey))
	if !ok {
		return false
	}
	list, ok := ix.matchData[dataKey]
	if !ok {
		return false
	}
	removed := list.remove(r.id)
	if removed && list.empty() {
		delete(ix.matchData, dataKey)
		ix.prefixTree.Remove([]byte(r.pathKey))
	}
	return removed
}
