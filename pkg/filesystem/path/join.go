package path

import (
	"github.com/buildbarn/bb-pathlib/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// JoinPolicy determines how fragments carrying a drive or root are
// handled when they are joined to an existing path.
type JoinPolicy int

const (
	// JoinStrict rejects fragments carrying a drive or root, unless
	// they are the very first fragment of a path. This prevents
	// joining "/etc" to "/home/user" from silently discarding
	// "/home/user".
	JoinStrict JoinPolicy = iota
	// JoinRelaxed lets fragments carrying a drive or root replace
	// everything that precedes them. A fragment only carrying a
	// root retains the drive of the path. A fragment only carrying
	// a drive is appended if it refers to the same drive.
	JoinRelaxed
)

var joinPolicyNames = map[JoinPolicy]string{
	JoinStrict:  "strict",
	JoinRelaxed: "relaxed",
}

// ParseJoinPolicy converts the textual name of a join policy, as used
// in configuration files, to a JoinPolicy.
func ParseJoinPolicy(name string) (JoinPolicy, error) {
	for policy, policyName := range joinPolicyNames {
		if name == policyName {
			return policy, nil
		}
	}
	return 0, status.Errorf(codes.InvalidArgument, "Unknown join policy %#v", name)
}

func (p JoinPolicy) String() string {
	return joinPolicyNames[p]
}

// joiner concatenates the components of fragments, while applying
// the join policy to their anchors.
type joiner struct {
	flavor  *Flavor
	policy  JoinPolicy
	anchor  Anchor
	literal []string
}

func (j *joiner) add(fragment Fragment, mayBeAnchored bool) error {
	anchor, components, err := fragment.getAnchorAndComponents(j.flavor)
	if err != nil {
		return err
	}
	switch {
	case anchor.IsZero():
		// Relative fragment.
	case mayBeAnchored:
		j.anchor = anchor
		j.literal = j.literal[:0]
	case j.policy == JoinStrict:
		return newInvalidArgumentError(ErrorReasonAnchoredFragmentRejected, "Cannot join path anchored at %#v", anchor.String())
	case anchor.Drive == "":
		// Root without a drive. Retain the drive.
		j.anchor.Root = anchor.Root
		j.literal = j.literal[:0]
	case anchor.Root == "" && j.flavor.equal(anchor.Drive, j.anchor.Drive):
		// Relative to the current directory of the same drive.
	default:
		j.anchor = anchor
		j.literal = j.literal[:0]
	}
	j.literal = append(j.literal, components...)
	return nil
}

func (j *joiner) getValue() *Value {
	return newValue(j.flavor, j.anchor, j.literal, simplify(j.flavor, j.anchor, j.literal), j.policy)
}

func newJoined(flavor *Flavor, policy JoinPolicy, fragments []Fragment) (*Value, error) {
	j := joiner{
		flavor: flavor,
		policy: policy,
	}
	for i, fragment := range fragments {
		if err := j.add(fragment, i == 0); err != nil {
			return nil, util.StatusWrapf(err, "Fragment %d", i)
		}
	}
	return j.getValue(), nil
}

// Join one or more fragments to the path. Fragments carrying a drive
// or root are handled according to the join policy of the path.
func (v *Value) Join(fragments ...Fragment) (*Value, error) {
	j := joiner{
		flavor:  v.flavor,
		policy:  v.joinPolicy,
		anchor:  v.anchor,
		literal: append([]string(nil), v.literal...),
	}
	for i, fragment := range fragments {
		if err := j.add(fragment, false); err != nil {
			return nil, util.StatusWrapf(err, "Fragment %d", i)
		}
	}
	return j.getValue(), nil
}

// JoinStrings is identical to Join, except that it only accepts
// pathname strings.
func (v *Value) JoinStrings(raw ...string) (*Value, error) {
	fragments := make([]Fragment, 0, len(raw))
	for _, r := range raw {
		fragments = append(fragments, Raw(r))
	}
	return v.Join(fragments...)
}

// WithJoinPolicy returns a copy of the path that uses a different join
// policy. Paths derived from the resulting path inherit the policy.
// The join policy is not part of the identity of a path.
func (v *Value) WithJoinPolicy(policy JoinPolicy) *Value {
	if v.joinPolicy == policy {
		return v
	}
	newV := *v
	newV.joinPolicy = policy
	return &newV
}
