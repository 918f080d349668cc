package cli

import (
	"fmt"
	"log/slog"

	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"
	"github.com/buildbarn/bb-pathlib/pkg/log"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

// globalOptions holds the values of the persistent flags of the root
// command, which are shared by all subcommands.
type globalOptions struct {
	platform path.Platform
}

func (o *globalOptions) flavor() *path.Flavor {
	return o.platform.Flavor()
}

// NewRootCmd returns the root command, with all subcommands attached.
func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	opts := &globalOptions{platform: path.LocalPlatform}

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log_format", "text", "Set the log format (text, logfmt, json)")
	cmd.PersistentFlags().Var(&opts.platform, "platform", "Path grammar to use (posix, windows)")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		flags := cc.Flags()

		var merr error

		logLevel, err := flags.GetString("log_level")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		logFormat, err := flags.GetString("log_format")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("invalid argument: %w", merr)
		}

		h, err := log.CreateHandler(cc.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return fmt.Errorf("failed creating log handler: %w", err)
		}
		slog.SetDefault(slog.New(h))

		return nil
	}

	cmd.AddCommand(newParseCmd(opts))
	cmd.AddCommand(newJoinCmd(opts))
	cmd.AddCommand(newRelativeToCmd(opts))
	cmd.AddCommand(newMatchCmd(opts))
	cmd.AddCommand(newBatchCmd())

	return cmd
}
