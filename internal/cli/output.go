package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"
)

// Names of the output formats accepted by the --output flag.
const (
	outputYAML = "yaml"
	outputJSON = "json"
)

func writeOutput(w io.Writer, format string, v any) error {
	var data []byte
	var err error
	switch format {
	case outputYAML:
		data, err = yaml.Marshal(v)
	case outputJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrInvalidArgument, format)
	}
	if err != nil {
		return fmt.Errorf("failed marshaling output: %w", err)
	}
	_, err = w.Write(data)
	return err
}
