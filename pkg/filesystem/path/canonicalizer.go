package path

import (
	"runtime"
	"sync"
	"weak"

	"github.com/buildbarn/bb-pathlib/pkg/eviction"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	canonicalizerPrometheusMetrics sync.Once

	canonicalizerLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "pathlib",
			Name:      "canonicalizer_lookups_total",
			Help:      "Number of times a path was canonicalized, and whether an equal path was already present",
		},
		[]string{"name", "outcome"})
)

// Canonicalizer keeps track of a single shared instance of every
// distinct path that is in use. This allows callers to compare paths
// by pointer, and to discard duplicate copies of equal paths.
//
// The Canonicalizer only holds weak references to paths. Entries are
// removed once the canonical instance of a path is no longer
// referenced elsewhere, unless the Canonicalizer was created through
// NewRetainingCanonicalizer().
type Canonicalizer struct {
	lock    sync.Mutex
	entries map[Key]weak.Pointer[Value]

	// Strong references to recently used canonical instances.
	retained     map[Key]*Value
	retentionSet eviction.Set[Key]
	maxRetained  int

	lookupsHit  prometheus.Counter
	lookupsMiss prometheus.Counter
}

// NewCanonicalizer creates a Canonicalizer. The name is used to
// label the metrics it exports.
func NewCanonicalizer(name string) *Canonicalizer {
	canonicalizerPrometheusMetrics.Do(func() {
		prometheus.MustRegister(canonicalizerLookups)
	})

	return &Canonicalizer{
		entries:  map[Key]weak.Pointer[Value]{},
		retained: map[Key]*Value{},

		lookupsHit:  canonicalizerLookups.WithLabelValues(name, "Hit"),
		lookupsMiss: canonicalizerLookups.WithLabelValues(name, "Miss"),
	}
}

// NewRetainingCanonicalizer creates a Canonicalizer that keeps up to
// maxRetained canonical instances alive, even if they are no longer
// referenced elsewhere. This prevents paths that are used repeatedly,
// but not continuously, from being recreated. The retention set
// decides which instance is released first.
func NewRetainingCanonicalizer(name string, retentionSet eviction.Set[Key], maxRetained int) *Canonicalizer {
	c := NewCanonicalizer(name)
	c.retentionSet = retentionSet
	c.maxRetained = maxRetained
	return c
}

// Canonicalize returns the canonical instance of a path. If no path
// equal to v is present, v becomes the canonical instance. The
// canonical instance retains the literal components and join policy
// it was created with.
func (c *Canonicalizer) Canonicalize(v *Value) *Value {
	c.lock.Lock()
	defer c.lock.Unlock()

	if wp, ok := c.entries[v.key]; ok {
		if existing := wp.Value(); existing != nil {
			c.lookupsHit.Inc()
			c.retain(existing)
			return existing
		}
	}
	c.entries[v.key] = weak.Make(v)
	runtime.AddCleanup(v, c.evict, v.key)
	c.lookupsMiss.Inc()
	c.retain(v)
	return v
}

func (c *Canonicalizer) retain(v *Value) {
	if c.maxRetained <= 0 {
		return
	}
	if _, ok := c.retained[v.key]; ok {
		c.retentionSet.Touch(v.key)
		return
	}
	for len(c.retained) >= c.maxRetained {
		key := c.retentionSet.Peek()
		c.retentionSet.Remove()
		delete(c.retained, key)
	}
	c.retentionSet.Insert(v.key)
	c.retained[v.key] = v
}

// evict removes the entry for a path whose canonical instance has
// been garbage collected. The entry may have been replaced by a new
// instance in the meantime, in which case it is retained.
func (c *Canonicalizer) evict(key Key) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if wp, ok := c.entries[key]; ok && wp.Value() == nil {
		delete(c.entries, key)
	}
}

// Retained returns the number of canonical instances that are kept
// alive by the Canonicalizer.
func (c *Canonicalizer) Retained() int {
	c.lock.Lock()
	defer c.lock.Unlock()

	return len(c.retained)
}

// Len returns the number of paths tracked by the Canonicalizer,
// including ones that have been garbage collected, but whose entries
// have not been removed yet.
func (c *Canonicalizer) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()

	return len(c.entries)
}
