package routing

import "github.com/sirupsen/logrus"

// log is the package-level logger, following the same convention the
// teacher uses across its dataclients and eskipfile packages: a
// logrus logger embedders can swap out wholesale, rather than a
// logger threaded through every call.
var log = logrus.StandardLogger()

// SetLogger redirects the package's lifecycle logging (route added,
// route removed, mutation errors) to a caller-supplied logrus logger.
// It never affects MatchRoute, which performs no logging on its hot
// path (spec.md §5).
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}
