package cli

import (
	"fmt"

	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"
	"github.com/spf13/cobra"
)

func newMatchCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match PATTERN PATH...",
		Short: "Print the paths that match a glob pattern",
		Long: `Print the paths that match a glob pattern.

Relative patterns are matched against the end of a path, unless --full
is provided. Case sensitivity follows the platform, unless
--case_sensitive is provided explicitly.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cc *cobra.Command, args []string) error {
			flags := cc.Flags()
			full, err := flags.GetBool("full")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}
			flavor := opts.flavor()
			caseSensitive := flavor.IsCaseSensitive()
			if flags.Changed("case_sensitive") {
				if caseSensitive, err = flags.GetBool("case_sensitive"); err != nil {
					return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
				}
			}

			pattern, err := path.CompilePattern(flavor, args[0], caseSensitive)
			if err != nil {
				return fmt.Errorf("failed compiling pattern: %w", err)
			}
			for _, raw := range args[1:] {
				v, err := path.Parse(flavor, raw)
				if err != nil {
					return fmt.Errorf("failed parsing %q: %w", raw, err)
				}
				var matched bool
				if full {
					matched = pattern.FullMatch(v)
				} else {
					matched = pattern.Match(v)
				}
				if matched {
					if _, err := fmt.Fprintln(cc.OutOrStdout(), raw); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("full", false, "Match the pattern against the entire path")
	cmd.Flags().Bool("case_sensitive", false, "Compare names case sensitively")
	return cmd
}
