package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/renato0307/kdash/internal/app"
	"github.com/renato0307/kdash/internal/k8s"
	"github.com/renato0307/kdash/internal/k8s/dummy"
	"github.com/renato0307/kdash/internal/logging"
	"github.com/renato0307/kdash/internal/ui"
)

// options holds the flags shared by every command
type options struct {
	kubeconfig string
	context    string
	namespace  string
	theme      string
	dummy      bool
	fixtures   string
	refresh    time.Duration

	logFile   string
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "kdash",
		Short:        "kdash is a terminal dashboard for Kubernetes services and workloads",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			silenceKlog()
			return opts.initLogging(cmd.Name() == "serve", cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logging.Shutdown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.kubeconfig, "kubeconfig", "", "Path to kubeconfig file (default: $KUBECONFIG or $HOME/.kube/config)")
	flags.StringVar(&opts.context, "context", "", "Kubernetes context to use (default: current context)")
	flags.StringVarP(&opts.namespace, "namespace", "n", "", "Namespace to show (default: all namespaces)")
	flags.BoolVar(&opts.dummy, "dummy", false, "Use dummy data instead of connecting to a cluster")
	flags.StringVar(&opts.fixtures, "fixtures", "", "Serve resources from a multi-document YAML file of lists")
	flags.DurationVar(&opts.refresh, "refresh", app.DefaultRefreshInterval, "Refresh interval")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file (rotated)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")
	cmd.MarkFlagsMutuallyExclusive("dummy", "fixtures")

	cmd.Flags().StringVar(&opts.theme, "theme", ui.DefaultTheme, fmt.Sprintf("Theme to use %v", ui.AvailableThemes()))

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newContextsCmd(opts))

	return cmd
}

// silenceKlog keeps client-go warnings (RBAC errors, throttling) off the
// terminal. Flags go on a private set so they never show up in --help.
func silenceKlog() {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	_ = fs.Set("logtostderr", "false")
	_ = fs.Set("stderrthreshold", "FATAL")
	_ = fs.Set("v", "0")
	klog.SetOutput(io.Discard)
}

// initLogging configures the global logger. Without --log-file the TUI logs
// nowhere and the server logs to stderr.
func (o *options) initLogging(toStderr bool, stderr io.Writer) error {
	cfg := logging.Config{
		FilePath:   o.logFile,
		Level:      logging.ParseLevel(o.logLevel),
		Format:     logging.ParseFormat(o.logFormat),
		MaxSizeMB:  10,
		MaxBackups: 3,
	}
	if toStderr {
		cfg.Output = stderr
	}
	return logging.Init(cfg)
}

// newFetcher picks the data source from the flags and returns it with the
// name shown as the cluster context
func (o *options) newFetcher() (k8s.Fetcher, string, error) {
	switch {
	case o.dummy:
		return dummy.NewFetcher(), "dummy", nil
	case o.fixtures != "":
		f, err := k8s.NewFixtureFetcher(o.fixtures)
		if err != nil {
			return nil, "", err
		}
		return f, "fixtures", nil
	default:
		f, err := k8s.NewClusterFetcher(o.kubeconfig, o.context)
		if err != nil {
			return nil, "", err
		}
		logging.Debug("using kubeconfig", "path", f.GetKubeconfig(), "context", f.GetContext())
		return f, f.GetContext(), nil
	}
}

func runDashboard(opts *options) error {
	defer klog.Flush()

	fetcher, contextName, err := opts.newFetcher()
	if err != nil {
		return err
	}

	model := app.NewModel(app.Config{
		Fetcher:         fetcher,
		Context:         contextName,
		Namespace:       opts.namespace,
		Theme:           ui.GetTheme(opts.theme),
		RefreshInterval: opts.refresh,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
