// Command goKeyStuffer types text and keys into the focused window using
// the active keyboard layout.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/guregu/null.v3"

	"github.com/goKeyStuffer/config"
	"github.com/goKeyStuffer/input"
	"github.com/goKeyStuffer/keymaps"
	"github.com/goKeyStuffer/layout"
)

const defaultConfigFile = "goKeyStuffer.json"

// globalState is what commands may touch of the outside world. Tests swap
// the platform hooks for fakes.
type globalState struct {
	ctx     context.Context
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	environ []string
	logger  *logrus.Logger

	hostLayout      func() (layout.Translator, layout.LayoutSource, error)
	hostLayouts     func() ([]layout.LayoutID, error)
	registerMessage func(name string) (input.WindowMessage, error)
	openInjector    func(ctx context.Context, conf config.Config, desc *keymaps.Description, logger logrus.FieldLogger) (input.Injector, func() error, error)
}

func newGlobalState(ctx context.Context) *globalState {
	logger := &logrus.Logger{
		Out: os.Stderr,
		Formatter: &logrus.TextFormatter{
			DisableColors: !isatty.IsTerminal(os.Stderr.Fd()),
		},
		Hooks: make(logrus.LevelHooks),
		Level: logrus.InfoLevel,
	}
	return &globalState{
		ctx:             ctx,
		stdin:           os.Stdin,
		stdout:          os.Stdout,
		stderr:          os.Stderr,
		environ:         os.Environ(),
		logger:          logger,
		hostLayout:      hostLayout,
		hostLayouts:     hostLayouts,
		registerMessage: registerMessage,
		openInjector:    openInjector,
	}
}

type rootCommand struct {
	gs         *globalState
	cmd        *cobra.Command
	configPath string
	conf       config.Config
	logFile    io.Closer
}

func newRootCommand(gs *globalState) *rootCommand {
	c := &rootCommand{gs: gs}
	c.cmd = &cobra.Command{
		Use:               "goKeyStuffer",
		Short:             "type text through the active keyboard layout",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
	}
	c.cmd.SetIn(gs.stdin)
	c.cmd.SetOut(gs.stdout)
	c.cmd.SetErr(gs.stderr)
	c.cmd.PersistentFlags().AddFlagSet(c.persistentFlagSet())
	c.cmd.AddCommand(
		getTypeCmd(c),
		getKeyCmd(c),
		getDumpCmd(c),
		getLayoutsCmd(c),
	)
	return c
}

func (c *rootCommand) persistentFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.StringVarP(&c.configPath, "config", "c", defaultConfigFile, "JSON config file")
	flags.String("layout", "", "built-in layout to use instead of the active one")
	flags.String("layout-file", "", "YAML layout description to use instead of the active layout")
	flags.Bool("probe-all-states", false, "also probe the Alt and Shift+Alt states")
	flags.StringP("log-level", "l", "info", "log level: trace, debug, info, warn, error")
	flags.String("log-file", "", "also append logs to this file")
	flags.String("uinput-path", "/dev/uinput", "uinput control device (linux)")
	flags.String("device-name", "goKeyStuffer", "name of the virtual keyboard (linux)")
	flags.Bool("dry-run", false, "print the events instead of injecting them")
	flags.String("message", "", "window message name to tag injected events with")
	flags.Int64("chunk", 0, "events per injection call, 0 for all at once")
	return flags
}

// flagConfig returns the values of the flags the user set.
func flagConfig(flags *pflag.FlagSet) (config.Config, error) {
	var (
		conf config.Config
		errs []error
	)
	str := func(name string) null.String {
		v, err := flags.GetString(name)
		errs = append(errs, err)
		return null.NewString(v, flags.Changed(name))
	}
	boolean := func(name string) null.Bool {
		v, err := flags.GetBool(name)
		errs = append(errs, err)
		return null.NewBool(v, flags.Changed(name))
	}

	conf.Layout = str("layout")
	conf.LayoutFile = str("layout-file")
	conf.ProbeAllStates = boolean("probe-all-states")
	conf.LogLevel = str("log-level")
	conf.LogFile = str("log-file")
	conf.UinputPath = str("uinput-path")
	conf.DeviceName = str("device-name")
	conf.DryRun = boolean("dry-run")
	conf.Message = str("message")

	chunk, err := flags.GetInt64("chunk")
	errs = append(errs, err)
	conf.ChunkSize = null.NewInt(chunk, flags.Changed("chunk"))

	return conf, errors.Join(errs...)
}

func (c *rootCommand) persistentPreRunE(cmd *cobra.Command, _ []string) error {
	flagConf, err := flagConfig(cmd.Flags())
	if err != nil {
		return err
	}
	data, err := config.ReadFile(c.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	c.conf, err = config.Consolidate(data, config.EnvMap(c.gs.environ), flagConf)
	if err != nil {
		return err
	}
	return c.setupLogging()
}

// setupLogging applies the configured level and, when a log file is set,
// appends to it next to the console output.
func (c *rootCommand) setupLogging() error {
	level, err := logrus.ParseLevel(c.conf.LogLevel.String)
	if err != nil {
		return err
	}
	c.gs.logger.SetLevel(level)

	path := c.conf.LogFile.String
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) //nolint:gosec
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	c.logFile = logFile
	c.gs.logger.SetOutput(io.MultiWriter(c.gs.stderr, logFile))
	return nil
}

func (c *rootCommand) close() {
	if c.logFile != nil {
		_ = c.logFile.Close()
		c.logFile = nil
	}
}

// execute runs the command line and returns the process exit code.
func execute(gs *globalState, args []string) int {
	c := newRootCommand(gs)
	defer c.close()

	c.cmd.SetArgs(args)
	if err := c.cmd.ExecuteContext(gs.ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			gs.logger.Warn("Interrupted")
			return 130
		}
		gs.logger.WithError(err).Error("goKeyStuffer failed")
		return 1
	}
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(newGlobalState(ctx), os.Args[1:])
	stop()
	os.Exit(code)
}
