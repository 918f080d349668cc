package normalizer

import (
	"context"

	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"
	"github.com/buildbarn/bb-pathlib/pkg/util"

	"golang.org/x/sync/errgroup"

	"google.golang.org/grpc/status"
)

// Result of normalizing one or more equal paths.
type Result struct {
	// The normalized string representation of the path.
	Normalized string `json:"normalized"`
	// The literal string representations of all paths in the input
	// that are equal to this path, in the order in which they were
	// provided.
	Literals []string `json:"literals"`

	// The canonical instance of the path.
	Path *path.Value `json:"-"`
}

// Normalizer of batches of pathname strings. Paths are parsed in
// parallel, and equal paths are collapsed into a single result.
// Paths that fail to parse are reported through an ErrorLogger and
// are omitted from the results.
type Normalizer struct {
	flavor        *path.Flavor
	joinPolicy    path.JoinPolicy
	base          *path.Value
	concurrency   int
	canonicalizer *path.Canonicalizer
	errorLogger   util.ErrorLogger
}

// NewNormalizer creates a Normalizer. If base is non-nil, every path
// is joined to it, using the join policy of base.
func NewNormalizer(flavor *path.Flavor, joinPolicy path.JoinPolicy, base *path.Value, concurrency int, canonicalizer *path.Canonicalizer, errorLogger util.ErrorLogger) *Normalizer {
	return &Normalizer{
		flavor:        flavor,
		joinPolicy:    joinPolicy,
		base:          base,
		concurrency:   concurrency,
		canonicalizer: canonicalizer,
		errorLogger:   errorLogger,
	}
}

func (n *Normalizer) parse(raw string) (*path.Value, error) {
	if n.base != nil {
		return n.base.JoinStrings(raw)
	}
	v, err := path.Parse(n.flavor, raw)
	if err != nil {
		return nil, err
	}
	return v.WithJoinPolicy(n.joinPolicy), nil
}

// Normalize a list of pathname strings. Results are returned in the
// order in which the first path equal to them was provided.
func (n *Normalizer) Normalize(ctx context.Context, paths []string) ([]Result, error) {
	canonical := make([]*path.Value, len(paths))
	literals := make([]string, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(n.concurrency)
	for i, raw := range paths {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			v, err := n.parse(raw)
			if err != nil {
				n.errorLogger.Log(util.StatusWrapf(err, "Invalid path at index %d", i))
				return nil
			}
			literals[i] = v.LiteralString()
			canonical[i] = n.canonicalizer.Canonicalize(v)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, util.StatusWrap(status.FromContextError(err).Err(), "Failed to normalize paths")
	}

	// Canonical instances are shared, meaning equal paths can be
	// grouped by pointer.
	var results []Result
	indices := map[*path.Value]int{}
	for i, v := range canonical {
		if v == nil {
			continue
		}
		index, ok := indices[v]
		if !ok {
			index = len(results)
			indices[v] = index
			results = append(results, Result{
				Normalized: v.NormalizedString(),
				Path:       v,
			})
		}
		results[index].Literals = append(results[index].Literals, literals[i])
	}
	return results, nil
}
