package aliases

import (
	"github.com/buildbarn/bb-pathlib/pkg/eviction"
	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"
	"github.com/prometheus/client_golang/prometheus"
)

// This file contains aliases for interfaces that are declared in
// other modules, or that are generic. mockgen's reflect mode can only
// emit mocks for named, non-generic interfaces.

// PrometheusGatherer is an alias of prometheus.Gatherer.
type PrometheusGatherer = prometheus.Gatherer

// KeySet is a cache replacement set of path keys, as used by
// path.NewRetainingCanonicalizer().
type KeySet = eviction.Set[path.Key]
