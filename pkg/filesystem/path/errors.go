package path

import (
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain is the domain of the errdetails.ErrorInfo that is
// attached to every error returned by this package.
const ErrorDomain = "pathlib.buildbarn.github.com"

// ErrorReason identifies the kind of failure of an operation on paths.
// It is stored in the errdetails.ErrorInfo attached to the gRPC status
// returned by this package, and can be obtained using GetErrorReason().
type ErrorReason string

const (
	// ErrorReasonMalformedAnchor indicates that the drive or root of
	// a pathname string does not adhere to the flavor's grammar.
	ErrorReasonMalformedAnchor ErrorReason = "MALFORMED_ANCHOR"
	// ErrorReasonAnchoredFragmentRejected indicates that a strict
	// join received a fragment that carries a drive or root.
	ErrorReasonAnchoredFragmentRejected ErrorReason = "ANCHORED_FRAGMENT_REJECTED"
	// ErrorReasonInvalidComponent indicates that a pathname
	// component is empty, contains a separator, carries an anchor or
	// contains characters the flavor does not permit.
	ErrorReasonInvalidComponent ErrorReason = "INVALID_COMPONENT"
	// ErrorReasonNoNameComponent indicates that the name of a path
	// was to be replaced, while the path has no name.
	ErrorReasonNoNameComponent ErrorReason = "NO_NAME_COMPONENT"
	// ErrorReasonFlavorMismatch indicates that paths of different
	// flavors were combined.
	ErrorReasonFlavorMismatch ErrorReason = "FLAVOR_MISMATCH"
	// ErrorReasonNotRelative indicates that a path cannot be
	// expressed relative to another path.
	ErrorReasonNotRelative ErrorReason = "NOT_RELATIVE"
	// ErrorReasonInvalidPattern indicates that a glob pattern could
	// not be compiled.
	ErrorReasonInvalidPattern ErrorReason = "INVALID_PATTERN"
)

func newError(code codes.Code, reason ErrorReason, format string, args ...interface{}) error {
	s, err := status.New(code, fmt.Sprintf(format, args...)).WithDetails(&errdetails.ErrorInfo{
		Reason: string(reason),
		Domain: ErrorDomain,
	})
	if err != nil {
		panic(err)
	}
	return s.Err()
}

func newInvalidArgumentError(reason ErrorReason, format string, args ...interface{}) error {
	return newError(codes.InvalidArgument, reason, format, args...)
}

// GetErrorReason returns the reason attached to an error returned by
// this package. The empty string is returned if the error was not
// generated by this package.
func GetErrorReason(err error) ErrorReason {
	for _, detail := range status.Convert(err).Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok && info.Domain == ErrorDomain {
			return ErrorReason(info.Reason)
		}
	}
	return ""
}
