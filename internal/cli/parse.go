package cli

import (
	"errors"
	"fmt"

	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"
	"github.com/buildbarn/bb-pathlib/pkg/jmespath"
	"github.com/spf13/cobra"
)

const parseExample = `  # Show how a Windows path is decomposed
  bb_pathlib --platform windows parse 'C:\Users\..\Program Files\app.tar.gz'

  # Print several POSIX paths as JSON
  bb_pathlib --platform posix parse --output json /usr/lib/../bin a//b/.

  # Only print the suffixes of a path
  bb_pathlib --platform posix parse --query '[0].suffixes' archive.tar.gz
`

// ErrInvalidArgument is returned when a command is invoked with
// arguments it cannot process.
var ErrInvalidArgument = errors.New("invalid argument")

// parsedPath is the decomposition of a path printed by the parse
// command.
type parsedPath struct {
	Literal    string   `json:"literal"`
	Normalized string   `json:"normalized"`
	Drive      string   `json:"drive"`
	Root       string   `json:"root"`
	Components []string `json:"components"`
	Name       string   `json:"name"`
	Stem       string   `json:"stem"`
	Suffixes   []string `json:"suffixes"`
	Parents    []string `json:"parents"`
	Absolute   bool     `json:"absolute"`
	Reserved   bool     `json:"reserved"`
	Hash       string   `json:"hash"`
}

func newParsedPath(v *path.Value) parsedPath {
	p := parsedPath{
		Literal:    v.LiteralString(),
		Normalized: v.NormalizedString(),
		Drive:      v.Drive(),
		Root:       v.Root(),
		Components: v.Components(),
		Name:       v.Name(),
		Stem:       v.Stem(),
		Suffixes:   v.Suffixes(),
		Absolute:   v.IsAbsolute(),
		Reserved:   v.IsReserved(),
		Hash:       fmt.Sprintf("%016x", v.Hash()),
	}
	for parent := range v.Parents() {
		p.Parents = append(p.Parents, parent.NormalizedString())
	}
	return p
}

func newParseCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "parse PATH...",
		Short:   "Decompose paths into their parts",
		Example: parseExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			flags := cc.Flags()
			output, err := flags.GetString("output")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}
			queryExpression, err := flags.GetString("query")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}
			var query *jmespath.Expression
			if queryExpression != "" {
				if query, err = jmespath.NewExpressionFromConfiguration(&jmespath.Configuration{
					Expression: queryExpression,
				}); err != nil {
					return err
				}
			}

			parsed := make([]parsedPath, 0, len(args))
			for _, raw := range args {
				v, err := path.Parse(opts.flavor(), raw)
				if err != nil {
					return fmt.Errorf("failed parsing %q: %w", raw, err)
				}
				parsed = append(parsed, newParsedPath(v))
			}
			if query == nil {
				return writeOutput(cc.OutOrStdout(), output, parsed)
			}
			report, err := query.Search(parsed)
			if err != nil {
				return err
			}
			return writeOutput(cc.OutOrStdout(), output, report)
		},
	}
	cmd.Flags().StringP("output", "o", outputYAML, "Output format (yaml, json)")
	cmd.Flags().StringP("query", "q", "", "JMESPath expression to apply to the output")
	return cmd
}
