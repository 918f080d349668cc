package util

import (
	"io"
	"os"
	"strings"

	"github.com/google/go-jsonnet"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"sigs.k8s.io/yaml"
)

// EvaluateJsonnet evaluates a Jsonnet snippet, returning its output as
// JSON. All of the environment variables of the current process are
// available through std.extVar().
func EvaluateJsonnet(filename, snippet string) ([]byte, error) {
	vm := jsonnet.MakeVM()
	for _, env := range os.Environ() {
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			return nil, status.Errorf(codes.InvalidArgument, "Invalid environment variable: %#v", env)
		}
		vm.ExtVar(parts[0], parts[1])
	}

	jsonnetOutput, err := vm.EvaluateSnippet(filename, snippet)
	if err != nil {
		return nil, StatusWrapfWithCode(err, codes.InvalidArgument, "Failed to evaluate configuration")
	}
	return []byte(jsonnetOutput), nil
}

// UnmarshalConfigurationFromFile reads a Jsonnet file, evaluates it and
// unmarshals the output into a struct. Fields are matched against
// their "json" struct tags. Fields in the output that have no
// counterpart in the struct cause unmarshaling to fail.
func UnmarshalConfigurationFromFile(path string, configuration any) error {
	// Read configuration file from disk or from stdin.
	var jsonnetInput []byte
	var err error
	if path == "-" {
		jsonnetInput, err = io.ReadAll(os.Stdin)
	} else {
		jsonnetInput, err = os.ReadFile(path)
	}
	if err != nil {
		return StatusWrapf(err, "Failed to read file contents")
	}

	jsonOutput, err := EvaluateJsonnet(path, string(jsonnetInput))
	if err != nil {
		return err
	}
	if err := yaml.UnmarshalStrict(jsonOutput, configuration); err != nil {
		return StatusWrapWithCode(err, codes.InvalidArgument, "Failed to unmarshal configuration")
	}
	return nil
}
