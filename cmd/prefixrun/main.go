package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vertti/prefixrun/pkg/layout"
	"github.com/vertti/prefixrun/pkg/logging"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	configFile  string
	prefixFlag  string
	homeFlag    string
	binFlag     string
	preloadFlag string
	verbose     bool
)

// Resolved by the root command before any subcommand runs.
var (
	activeLayout layout.Layout
	logger       *log.Logger
)

var rootCmd = &cobra.Command{
	Use:               "prefixrun",
	Short:             "Prepare and launch commands inside an Android user-space prefix",
	Long:              "prefixrun builds the argument vector and environment used to launch programs inside a sandboxed prefix, and can launch them.",
	Version:           Version,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "path to "+layout.FileName+" (default: search up from current directory)")
	pf.StringVar(&prefixFlag, "prefix", "", "prefix root; derives home, bin and preload unless given")
	pf.StringVar(&homeFlag, "home", "", "HOME for launched processes")
	pf.StringVar(&binFlag, "bin", "", "directory holding in-prefix interpreters")
	pf.StringVar(&preloadFlag, "preload", "", "library set as LD_PRELOAD")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg := logging.DefaultConfig()
	cfg.Output = cmd.ErrOrStderr()
	if verbose {
		cfg.Level = logging.LevelDebug
	}
	logger = logging.New(cfg)

	l, err := resolveLayout(cmd)
	if err != nil {
		return err
	}
	activeLayout = l
	logger.Debug("using layout", "prefix", l.Prefix, "home", l.Home, "bin", l.Bin, "preload", l.Preload)
	return nil
}

// resolveLayout applies defaults, then the config file, then flags.
func resolveLayout(cmd *cobra.Command) (layout.Layout, error) {
	l := layout.Default()

	wd, err := os.Getwd()
	if err != nil {
		return l, fmt.Errorf("failed to get working directory: %w", err)
	}

	path, err := layout.FindFile(wd, configFile)
	switch {
	case err == nil:
		if l, err = layout.Load(path, l); err != nil {
			return l, err
		}
		logger.Debug("loaded config file", "path", path)
	case errors.Is(err, layout.ErrNoConfigFile):
	default:
		return l, err
	}

	flags := cmd.Flags()
	if flags.Changed("prefix") {
		l = layout.Derive(prefixFlag)
	}
	if flags.Changed("home") {
		l.Home = homeFlag
	}
	if flags.Changed("bin") {
		l.Bin = binFlag
	}
	if flags.Changed("preload") {
		l.Preload = preloadFlag
	}

	if err := l.Validate(); err != nil {
		return l, fmt.Errorf("invalid layout: %w", err)
	}
	return l, nil
}

// exitCodeError carries a child's exit status out of a command.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	var exitErr *exitCodeError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		os.Exit(exitErr.code)
	default:
		os.Exit(1)
	}
}
