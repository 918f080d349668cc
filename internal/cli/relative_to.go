package cli

import (
	"fmt"

	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"
	"github.com/spf13/cobra"
)

func newRelativeToCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relative-to PATH OTHER",
		Short: "Express a path relative to another path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cc *cobra.Command, args []string) error {
			walkUp, err := cc.Flags().GetBool("walk_up")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			flavor := opts.flavor()
			v, err := path.Parse(flavor, args[0])
			if err != nil {
				return fmt.Errorf("failed parsing %q: %w", args[0], err)
			}
			other, err := path.Parse(flavor, args[1])
			if err != nil {
				return fmt.Errorf("failed parsing %q: %w", args[1], err)
			}
			relative, err := v.RelativeTo(other, walkUp)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cc.OutOrStdout(), relative.NormalizedString())
			return err
		},
	}
	cmd.Flags().Bool("walk_up", false, "Emit \"..\" components if PATH is not beneath OTHER")
	return cmd
}
