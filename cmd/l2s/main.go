package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"l2s/common"
	"l2s/config"
	"l2s/convert"
	"l2s/misc"
	"l2s/state"
)

// initializeAppContext loads configuration, opens debug report and sets up
// logging once global flags are known.
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	env := state.EnvFromContext(ctx)
	env.Trace = cmd.Bool("trace")

	if cmd.NArg() == 0 {
		// help or version only
		return ctx, nil
	}

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, common.WrapError(common.ErrorKindConfigurationError, err, "unable to prepare configuration")
	}
	if cmd.Bool("debug") {
		if env.Rpt, err = env.Cfg.Reporting.Prepare(); err != nil {
			return ctx, fmt.Errorf("unable to prepare debug reporter: %w", err)
		}
		// keep user configuration as it was merged with defaults
		if len(configFile) > 0 {
			if data, err := config.Dump(env.Cfg); err == nil {
				env.Rpt.StoreData(fmt.Sprintf("config/%s", filepath.Base(configFile)), data)
			}
		}
	}
	if env.Log, err = env.Cfg.Logging.Prepare(env.Rpt); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", misc.GetVersion()), zap.String("runtime", runtime.Version()), zap.String("hash", misc.GetGitHash()))

	if env.Rpt != nil {
		env.Log.Info("Creating debug report", zap.String("location", env.Rpt.Name()))
	}
	if len(configFile) == 0 {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}

	env.RestoreStdLog()

	// logs are flushed and may go into the report, from here on problems are
	// only returned
	if env.Rpt != nil {
		if er := env.Rpt.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close debug report: %w", er))
		}
	}
	// crash output file is left only when something was written to it
	if env.Cfg != nil && len(env.Cfg.Logging.FileLogger.Destination) > 0 {
		debug.SetCrashOutput(nil, debug.CrashOptions{})
		fname := filepath.Join(filepath.Dir(env.Cfg.Logging.FileLogger.Destination), misc.GetAppName()+"-panic.log")
		if fi, er := os.Stat(fname); er == nil && fi.Size() == 0 {
			if er := os.Remove(fname); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to remove empty panic log file '%s': %w", fname, er))
			}
		}
	}
	return
}

// Set once exitErrHandler printed the error, main should not repeat it.
var errWasHandled bool

// exitErrHandler runs before After, while logging is still available.
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Program ended with error", zap.Error(err))
	}
	fmt.Fprintln(os.Stderr, describe(err, env.Trace))
	errWasHandled = true
}

// describe formats error as "Kind: message", with trace every wrapped cause
// is listed as well.
func describe(err error, trace bool) string {
	msg := common.Describe(err)
	if !trace {
		return msg
	}
	var sb strings.Builder
	sb.WriteString(msg)
	for e := errors.Unwrap(err); e != nil; e = errors.Unwrap(e) {
		fmt.Fprintf(&sb, "\n  caused by %T: %v", e, e)
	}
	for _, e := range multierr.Errors(err) {
		if e != err {
			fmt.Fprintf(&sb, "\n  %s", common.Describe(e))
		}
	}
	return sb.String()
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	// printed by exitErrHandler or main
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	if log := state.EnvFromContext(ctx).Log; log != nil {
		log.Warn("Unknown command, nothing to do", zap.String("command", name))
	}
}

func main() {

	// allow graceful shutdown on interrupt, external node processes are
	// killed with the context
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	syntaxes := strings.Join(common.TargetSyntaxNames(), ", ")

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "converts Less stylesheets to Sass (SCSS or indented syntax)",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "changes program behavior to help troubleshooting, produces report archive"},
			&cli.BoolFlag{Name: "trace", Usage: "on failure print complete chain of errors"},
		},
		Commands: []*cli.Command{
			{
				Name:         "convert",
				Usage:        "Converts Less stylesheet(s) to Sass",
				OnUsageError: usageErrorHandler,
				Action:       convert.Run,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "to", Usage: "target `SYNTAX` (supported: " + syntaxes + "), default from configuration"},
					&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "continue even if destination exists, overwrite files"},
					&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "report only warnings and errors"},
					&cli.StringFlag{Name: "input-encoding",
						Usage: "`ENCODING` of Less sources and of non UTF-8 file names in archives (see IANA.org for character set names)"},
				},
				ArgsUsage: "[SOURCE] [DESTINATION]",
				CustomHelpTemplate: fmt.Sprintf(`%s
SOURCE:
    Less stylesheet(s) to process, following formats are supported:
        path to a file: "[path_to_file]file.less"
        path to a directory: "[path_to_directory]directory" - recursively process all .less files under directory
        path to archive with path inside archive: "[path_to_archive]archive.zip[path_in_archive]" - process all .less files under archive path
        absent or "-": read stylesheet from STDIN, options must come before "-"

	Imports are resolved relative to the stylesheet location on disk,
	stylesheets read from archives or STDIN can only import files found
	on configured include paths.

DESTINATION:
    for a single stylesheet a file name or existing directory, if absent - STDOUT
    for directories and archives a directory where source structure is recreated,
    if absent - next to the source
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "compare",
				Usage:        "Checks that lessc and sass produce equivalent CSS for stylesheet and its conversion",
				OnUsageError: usageErrorHandler,
				Action:       convert.Compare,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "to", Usage: "target `SYNTAX` (supported: " + syntaxes + "), default from configuration"},
					&cli.StringFlag{Name: "input-encoding", Usage: "`ENCODING` of Less source"},
				},
				ArgsUsage: "SOURCE",
				CustomHelpTemplate: fmt.Sprintf(`%s
SOURCE:
    path to Less stylesheet

Requires lessc and sass executables (see "compiler" configuration section).
Differences are printed one rule per line, "-" marks rules produced only by
lessc, "+" rules produced only by sass.
`, cli.CommandHelpTemplate),
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values which is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`, cli.CommandHelpTemplate),
			},
		},
	}

	var err error
	// exit code is set by os.Exit in the only deferred function of main
	defer func() {
		stop()
		if err != nil {
			// flag parsing errors happen before logging exists
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %s\n", common.Describe(err))
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, convert.StdinArgs(os.Args))
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err   error
		data  []byte
		state string
	)

	out := cmd.Root().Writer
	if len(fname) > 0 {
		f, err := os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer f.Close()
		out = f
	}

	if cmd.Bool("default") {
		state = "default"
		data, err = config.Prepare()
	} else {
		state = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Info("Writing configuration", zap.String("state", state), zap.String("file", fname))

	_, err = out.Write(data)
	if err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
