package testutil

import (
	"testing"

	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewPathError creates an error that is identical to the ones returned
// by package path, so that they can be compared using
// RequireEqualStatus() and EqStatus().
func NewPathError(code codes.Code, reason path.ErrorReason, message string) error {
	s, err := status.New(code, message).WithDetails(&errdetails.ErrorInfo{
		Reason: string(reason),
		Domain: path.ErrorDomain,
	})
	if err != nil {
		panic(err)
	}
	return s.Err()
}

// RequirePathEqual asserts that a path has the expected normalized
// string representation under the given flavor.
func RequirePathEqual(t *testing.T, flavor *path.Flavor, want string, got *path.Value) {
	t.Helper()
	wantValue, err := path.Parse(flavor, want)
	if err != nil {
		t.Fatalf("Invalid path %#v: %s", want, err)
	}
	if !wantValue.Equal(got) {
		t.Fatalf("Paths not equal:\nWant: %s\nGot:  %s", wantValue.NormalizedString(), got.NormalizedString())
	}
}
