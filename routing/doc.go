/*
Package routing implements the matching core of an HTTP request
router: given a set of route descriptors and an incoming request
descriptor (path, method, host, remote address, variables), it selects
the single best-matching route and returns the values extracted from
any named path segments.

The package performs no I/O. It does not parse HTTP requests, does not
terminate TLS, and does not dispatch to upstreams; callers translate
their own request representation into a MatchOptions value and their
route configuration into Route values, and do all of that around this
package, not inside it.

Internally the router keeps two indices over route paths: an
exact-path hash table for literal paths, and a compressed prefix tree
for paths that contain parameters or a trailing wildcard. Every
indexed path key owns a candidate list, sorted by descending priority
with ties broken by the length of the original path pattern. A request
is matched by probing the hash table first and, on a miss or full
rejection, walking the prefix tree upward from the deepest matching
prefix.

Readers (MatchRoute) may run on any number of goroutines concurrently
without blocking each other. Writers (AddRoute, UpdateRoute,
DeleteRoute) take an exclusive lock; update is not atomic across the
delete+add pair, so a narrow window exists in which neither the old
nor the new route is installed.
*/
package routing
