package normalizer

import (
	"github.com/buildbarn/bb-pathlib/pkg/eviction"
	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"
	"github.com/buildbarn/bb-pathlib/pkg/jmespath"
	"github.com/buildbarn/bb-pathlib/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Configuration of a batch of paths that needs to be normalized.
// It is typically obtained by evaluating a Jsonnet file.
type Configuration struct {
	// Platform whose path grammar is used, either "posix" or
	// "windows".
	Platform string `json:"platform"`

	// Policy used when joining paths to Base, either "strict"
	// (default) or "relaxed".
	JoinPolicy string `json:"joinPolicy,omitempty"`

	// Optional path that is prepended to every path.
	Base string `json:"base,omitempty"`

	// Paths that need to be normalized.
	Paths []string `json:"paths"`

	// Maximum number of paths that are parsed in parallel. Defaults
	// to 1.
	Concurrency int `json:"concurrency,omitempty"`

	// Optional settings for keeping canonical paths alive after
	// they are no longer referenced.
	Retention *RetentionConfiguration `json:"retention,omitempty"`

	// Optional JMESPath expression that is applied to the results
	// before they are reported.
	Query *jmespath.Configuration `json:"query,omitempty"`
}

// RetentionConfiguration controls how many canonical paths are kept
// alive by the Canonicalizer, and which are released first.
type RetentionConfiguration struct {
	// Cache replacement policy, such as "LEAST_RECENTLY_USED".
	CacheReplacementPolicy string `json:"cacheReplacementPolicy"`

	// Maximum number of canonical paths to retain.
	MaximumPaths int `json:"maximumPaths"`
}

// NewCanonicalizerFromConfiguration creates a Canonicalizer that
// optionally retains canonical paths, based on the settings provided
// in a configuration.
func NewCanonicalizerFromConfiguration(name string, configuration *RetentionConfiguration) (*path.Canonicalizer, error) {
	if configuration == nil {
		return path.NewCanonicalizer(name), nil
	}
	if configuration.MaximumPaths <= 0 {
		return nil, status.Errorf(codes.InvalidArgument, "Maximum number of retained paths must be positive, not %d", configuration.MaximumPaths)
	}
	retentionSet, err := eviction.NewSetFromConfiguration[path.Key](configuration.CacheReplacementPolicy)
	if err != nil {
		return nil, util.StatusWrap(err, "Invalid retention")
	}
	return path.NewRetainingCanonicalizer(
		name,
		eviction.NewMetricsSet(retentionSet, name),
		configuration.MaximumPaths,
	), nil
}

// NewNormalizerFromConfiguration creates a Normalizer based on the
// settings provided in a configuration.
func NewNormalizerFromConfiguration(configuration *Configuration, canonicalizer *path.Canonicalizer, errorLogger util.ErrorLogger) (*Normalizer, error) {
	platform, err := path.ParsePlatform(configuration.Platform)
	if err != nil {
		return nil, util.StatusWrap(err, "Invalid platform")
	}
	flavor := platform.Flavor()

	joinPolicy := path.JoinStrict
	if configuration.JoinPolicy != "" {
		joinPolicy, err = path.ParseJoinPolicy(configuration.JoinPolicy)
		if err != nil {
			return nil, util.StatusWrap(err, "Invalid join policy")
		}
	}

	var base *path.Value
	if configuration.Base != "" {
		base, err = path.Parse(flavor, configuration.Base)
		if err != nil {
			return nil, util.StatusWrap(err, "Invalid base path")
		}
		base = base.WithJoinPolicy(joinPolicy)
	}

	concurrency := configuration.Concurrency
	if concurrency == 0 {
		concurrency = 1
	} else if concurrency < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "Concurrency must be positive, not %d", concurrency)
	}

	return NewNormalizer(flavor, joinPolicy, base, concurrency, canonicalizer, errorLogger), nil
}
