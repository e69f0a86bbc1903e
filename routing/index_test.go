package routing

import "testing"

func mustRecord(t *testing.T, route *Route, path string) *record {
	t.Helper()
	rec, err := processRoute(route, path, false)
	if err != nil {
		t.Fatalf("processRoute: %v", err)
	}
	return rec
}

func TestRouteIndexInsertEqualGoesToHash(t *testing.T) {
	ix := newRouteIndex(false)
	route := &Route{ID: "a", Paths: []string{"/api/users"}}
	ix.insert(mustRecord(t, route, "/api/users"))

	if _, ok := ix.hashPath.Get("/api/users"); !ok {
		t.Fatalf("expected an Equal route to land in the hash index")
	}
	if ix.prefixTree.Size() != 0 {
		t.Fatalf("expected the radix tree to stay empty")
	}
}

func TestRouteIndexInsertPrefixSharesDataKey(t *testing.T) {
	ix := newRouteIndex(false)
	a := &Route{ID: "a", Paths: []string{"/api/:id"}, Priority: 1}
	b := &Route{ID: "b", Paths: []string{"/api/:id"}, Priority: 5}

	ix.insert(mustRecord(t, a, "/api/:id"))
	ix.insert(mustRecord(t, b, "/api/:id"))

	dataKey, ok := ix.prefixTree.Find([]byte("/api/"))
	if !ok {
		t.Fatalf("expected path_key registered in the tree")
	}
	list := ix.matchData[dataKey]
	if len(list.records) != 2 {
		t.Fatalf("expected both routes sharing the path_key in one candidate list, got %d", len(list.records))
	}
	if list.records[0].id != "b" {
		t.Fatalf("expected higher-priority route first, got %q", list.records[0].id)
	}
}

func TestRouteIndexRemoveReleasesEmptyKey(t *testing.T) {
	ix := newRouteIndex(false)
	route := &Route{ID: "a", Paths: []string{"/api/:id"}}
	rec := mustRecord(t, route, "/api/:id")
	ix.insert(rec)

	if !ix.remove(rec) {
		t.Fatalf("expected removal to succeed")
	}
	if _, ok := ix.prefixTree.Find([]byte("/api/")); ok {
		t.Fatalf("expected the path_key to be released from the tree once its list emptied")
	}
	if len(ix.matchData) != 0 {
		t.Fatalf("expected match_data entry released, got %d entries", len(ix.matchData))
	}
}

func TestRouteIndexRemoveMissingReportsFalse(t *testing.T) {
	ix := newRouteIndex(false)
	route := &Route{ID: "a", Paths: []string{"/api/:id"}}
	rec := mustRecord(t, route, "/api/:id")
	if ix.remove(rec) {
		t.Fatalf("removing an entry that was never inserted must report false")
	}
}

// nextDataKey only ever increases, so a key handed to prefixTree.Insert
// right after Find reported it absent has never been seen by the tree
// before; two overlapping path_keys must never collide on one dataKey.
func TestRouteIndexInsertNeverReusesDataKeyAcrossDistinctPathKeys(t *testing.T) {
	ix := newRouteIndex(false)
	ix.insert(mustRecord(t, &Route{ID: "a", Paths: []string{"/api/:id"}}, "/api/:id"))
	ix.insert(mustRecord(t, &Route{ID: "b", Paths: []string{"/admin/:id"}}, "/admin/:id"))

	apiKey, ok := ix.prefixTree.Find([]byte("/api/"))
	if !ok {
		t.Fatalf("expected /api/ registered")
	}
	adminKey, ok := ix.prefixTree.Find([]byte("/admin/"))
	if !ok {
		t.Fatalf("expected /admin/ registered")
	}
	if apiKey == adminKey {
		t.Fatalf("distinct path_keys must not share a match_data slot")
	}
}

func TestRouteIndexDisablePathCacheForcesTree(t *testing.T) {
	ix := newRouteIndex(true)
	route := &Route{ID: "a", Paths: []string{"/api/users"}}
	ix.insert(mustRecord(t, route, "/api/users"))

	if _, ok := ix.hashPath.Get("/api/users"); ok {
		t.Fatalf("with disablePathCache, an Equal route must not land in the hash index")
	}
	if _, ok := ix.prefixTree.Find([]byte("/api/users")); !ok {
		t.Fatalf("expected the route in the radix tree instead")
	}
}
