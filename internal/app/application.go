package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/denizgursoy/cacik-rp/internal/generator"
	"github.com/denizgursoy/cacik-rp/internal/logging"
	"github.com/denizgursoy/cacik-rp/pkg/cacik"
	"github.com/denizgursoy/cacik-rp/pkg/cucumberjson"
	"github.com/denizgursoy/cacik-rp/pkg/executor"
	"github.com/denizgursoy/cacik-rp/pkg/formatter"
	"github.com/denizgursoy/cacik-rp/pkg/reporter"
	"github.com/denizgursoy/cacik-rp/pkg/runner"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X ...app.Version=...".
var Version = "dev"

// Application wires the CLI commands to the reporting pipeline.
type Application struct {
	listeners ListenerFactory
	generator SuiteGenerator

	configPath string
	overrides  cacik.Config
}

func New(listeners ListenerFactory, suiteGenerator SuiteGenerator) *Application {
	return &Application{
		listeners: listeners,
		generator: suiteGenerator,
	}
}

// NewDefault reports to the backend selected by the configuration and
// generates suites from the godog initializers of a package.
func NewDefault() *Application {
	return New(reportPortalListeners{}, scanningGenerator{})
}

// Command builds the root command with its subcommands.
func (a *Application) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "cacik-rp",
		Short: "Report Cucumber runs to ReportPortal",
		Long: `cacik-rp turns the Cucumber lifecycle of a run into a ReportPortal launch.
It imports cucumber JSON reports, dry-runs feature files and generates godog
suites that report while they run.`,
		Version:      Version,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file (default "+cacik.DefaultConfigFile+" when present)")
	flags.StringVar(&a.overrides.Endpoint, "endpoint", "", "ReportPortal base URL")
	flags.StringVar(&a.overrides.Project, "project", "", "ReportPortal project")
	flags.StringVar(&a.overrides.APIKey, "api-key", "", "ReportPortal API key")
	flags.StringVar(&a.overrides.Launch, "launch", "", "launch name")
	flags.StringVar(&a.overrides.Description, "description", "", "launch description")
	flags.StringSliceVar(&a.overrides.Tags, "launch-tags", nil, "launch attributes, comma separated")
	flags.StringVar(&a.overrides.Mode, "mode", "", "launch mode: DEFAULT or DEBUG")
	flags.StringVar(&a.overrides.Flavor, "flavor", "", "hierarchy layout: scenario or step")
	flags.StringVar(&a.overrides.Backend, "backend", "", "report backend: http or console")
	flags.DurationVar(&a.overrides.Timeout, "timeout", 0, "timeout of every backend call")
	flags.BoolVar(&a.overrides.NoColor, "no-color", false, "disable colored console output")
	flags.StringVar(&a.overrides.LogLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&a.overrides.LogFormat, "log-format", "", "log format: text or json")

	root.AddCommand(a.importCommand(), a.dryRunCommand(), a.initCommand())

	return root
}

func (a *Application) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <report.json>...",
		Short: "Send cucumber JSON reports to ReportPortal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var features []cucumberjson.Feature
			for _, path := range args {
				parsed, err := cucumberjson.ParseFile(path)
				if err != nil {
					return err
				}
				features = append(features, parsed...)
			}

			listener, logger, err := a.listener(cmd)
			if err != nil {
				return err
			}

			logger.Info("importing reports", "files", len(args), "features", len(features))
			cucumberjson.NewReplayer(listener, cucumberjson.WithLogger(logger)).Replay(features)
			return nil
		},
	}
}

func (a *Application) dryRunCommand() *cobra.Command {
	var tags string

	cmd := &cobra.Command{
		Use:   "dry-run [dirs...]",
		Short: "Report every scenario of the feature files as skipped",
		RunE: func(cmd *cobra.Command, args []string) error {
			listener, logger, err := a.listener(cmd)
			if err != nil {
				return err
			}

			f := formatter.New(listener, formatter.WithLogger(logger))
			exec := executor.NewStepExecutor(f).WithDryRun(true)

			return runner.NewCucumberRunner(exec).
				WithFeaturesDirectories(args...).
				WithTags(tags).
				Run()
		},
	}
	cmd.Flags().StringVar(&tags, "tags", "", `tag expression, e.g. "@smoke and not @slow"`)

	return cmd
}

func (a *Application) initCommand() *cobra.Command {
	opts := generator.Options{}

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a godog suite reporting to ReportPortal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Dir = args[0]
			}

			target, err := a.generator.Generate(cmd.Context(), opts)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "generated %s\n", target)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&opts.Features, "features", nil, "feature paths relative to dir (default features)")
	cmd.Flags().StringVar(&opts.Tags, "tags", "", "tag expression the suite runs")

	return cmd
}

// listener resolves the configuration, sets up logging and builds the
// listener the command reports to.
func (a *Application) listener(cmd *cobra.Command) (reporter.Listener, cacik.Logger, error) {
	resolved, err := cacik.ResolveConfig(a.configPath)
	if err != nil {
		return nil, nil, err
	}
	cfg := cacik.MergeConfigs(resolved, &a.overrides)

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(level, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}
	cfg.Logger = logger

	listener, err := a.listeners.NewListener(cfg, cmd.OutOrStdout())
	if err != nil {
		return nil, nil, err
	}
	return listener, logger, nil
}

type reportPortalListeners struct{}

func (reportPortalListeners) NewListener(cfg *cacik.Config, out io.Writer) (reporter.Listener, error) {
	return reporter.NewFromConfig(cfg, out)
}

type scanningGenerator struct{}

func (scanningGenerator) Generate(ctx context.Context, opts generator.Options) (string, error) {
	fileName := opts.FileName
	if fileName == "" {
		fileName = generator.DefaultFileName
	}
	slog.Debug("scanning for godog initializers", "dir", opts.Dir)
	return generator.Generate(ctx, generator.NewGoSourceScanner(fileName), opts)
}
