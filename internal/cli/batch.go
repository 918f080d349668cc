package cli

import (
	"fmt"
	"regexp"

	"github.com/buildbarn/bb-pathlib/pkg/jmespath"
	"github.com/buildbarn/bb-pathlib/pkg/normalizer"
	bb_prometheus "github.com/buildbarn/bb-pathlib/pkg/prometheus"
	"github.com/buildbarn/bb-pathlib/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

const batchExample = `  # Normalize the paths listed in a configuration file
  bb_pathlib batch paths.jsonnet

  # Read the configuration from stdin and print canonicalizer metrics
  bb_pathlib batch --print_metrics - < paths.jsonnet
`

// Name of the Canonicalizer and retention set, as used in metric
// labels.
const canonicalizerName = "batch"

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch CONFIG.jsonnet",
		Short: "Normalize and de-duplicate a list of paths",
		Long: `Normalize and de-duplicate the list of paths stored in a Jsonnet
configuration file. Paths that are equal after normalization are
reported once, together with all of their literal spellings. Paths that
cannot be parsed are logged and skipped.

The platform is taken from the configuration file, not from
--platform.`,
		Example: batchExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			flags := cc.Flags()
			output, err := flags.GetString("output")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}
			printMetrics, err := flags.GetBool("print_metrics")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}
			metricsFilter, err := flags.GetString("metrics_filter")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}
			metricsPattern, err := regexp.Compile(metricsFilter)
			if err != nil {
				return fmt.Errorf("%w: invalid metrics filter: %w", ErrInvalidArgument, err)
			}

			var configuration normalizer.Configuration
			if err := util.UnmarshalConfigurationFromFile(args[0], &configuration); err != nil {
				return util.StatusWrapf(err, "Failed to read configuration from %#v", args[0])
			}
			var query *jmespath.Expression
			if configuration.Query != nil {
				if query, err = jmespath.NewExpressionFromConfiguration(configuration.Query); err != nil {
					return util.StatusWrap(err, "Invalid query")
				}
			}
			canonicalizer, err := normalizer.NewCanonicalizerFromConfiguration(canonicalizerName, configuration.Retention)
			if err != nil {
				return util.StatusWrap(err, "Failed to create canonicalizer")
			}
			n, err := normalizer.NewNormalizerFromConfiguration(&configuration, canonicalizer, util.DefaultErrorLogger)
			if err != nil {
				return util.StatusWrap(err, "Failed to create normalizer")
			}
			results, err := n.Normalize(cc.Context(), configuration.Paths)
			if err != nil {
				return err
			}
			if results == nil {
				results = []normalizer.Result{}
			}
			var report any = results
			if query != nil {
				if report, err = query.Search(results); err != nil {
					return util.StatusWrap(err, "Failed to apply query")
				}
			}
			if err := writeOutput(cc.OutOrStdout(), output, report); err != nil {
				return err
			}

			if printMetrics {
				return bb_prometheus.WriteText(
					cc.OutOrStdout(),
					bb_prometheus.NewFilteringGatherer(
						prometheus.DefaultGatherer,
						bb_prometheus.MatchName(metricsPattern),
						bb_prometheus.MatchLabel("name", canonicalizerName)))
			}
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", outputYAML, "Output format (yaml, json)")
	cmd.Flags().Bool("print_metrics", false, "Print Prometheus metrics after normalizing")
	cmd.Flags().String("metrics_filter", "^buildbarn_", "Regular expression of the names of the metrics to print")
	return cmd
}
