package cli

import (
	"fmt"

	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"
	"github.com/spf13/cobra"
)

func newJoinCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join PATH FRAGMENT...",
		Short: "Join fragments to a path",
		Long: `Join fragments to a path and print the normalized result.

By default, fragments carrying a drive or root are rejected. With
--relaxed, they replace everything that precedes them instead.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cc *cobra.Command, args []string) error {
			flags := cc.Flags()
			relaxed, err := flags.GetBool("relaxed")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}
			literal, err := flags.GetBool("literal")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			base, err := path.Parse(opts.flavor(), args[0])
			if err != nil {
				return fmt.Errorf("failed parsing %q: %w", args[0], err)
			}
			if relaxed {
				base = base.WithJoinPolicy(path.JoinRelaxed)
			}
			joined, err := base.JoinStrings(args[1:]...)
			if err != nil {
				return fmt.Errorf("failed joining paths: %w", err)
			}

			if literal {
				_, err = fmt.Fprintln(cc.OutOrStdout(), joined.LiteralString())
			} else {
				_, err = fmt.Fprintln(cc.OutOrStdout(), joined.NormalizedString())
			}
			return err
		},
	}
	cmd.Flags().Bool("relaxed", false, "Let anchored fragments replace the preceding path")
	cmd.Flags().Bool("literal", false, "Print the path as written, without resolving \".\" and \"..\"")
	return cmd
}
