package eviction

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Names of the cache replacement policies accepted by
// NewSetFromConfiguration().
const (
	FirstInFirstOut   = "FIRST_IN_FIRST_OUT"
	LeastRecentlyUsed = "LEAST_RECENTLY_USED"
	RandomReplacement = "RANDOM_REPLACEMENT"
)

// NewSetFromConfiguration creates a new cache replacement set using an
// algorithm specified by name.
func NewSetFromConfiguration[T comparable](cacheReplacementPolicy string) (Set[T], error) {
	switch cacheReplacementPolicy {
	case FirstInFirstOut:
		return NewFIFOSet[T](), nil
	case LeastRecentlyUsed:
		return NewLRUSet[T](), nil
	case RandomReplacement:
		return NewRRSet[T](), nil
	default:
		return nil, status.Errorf(codes.InvalidArgument, "Unknown cache replacement policy %#v", cacheReplacementPolicy)
	}
}
