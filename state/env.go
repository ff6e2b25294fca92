// Package state defines shared program state.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/encoding"

	"l2s/common"
	"l2s/config"
	"l2s/utils/proc"
)

type envKey struct{}

// LocalEnv is per-run state shared by commands: configuration, optional
// debug report, root logger and conversion options from the command line.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report // nil unless --debug
	Log *zap.Logger

	// external programs: node with Less parser, lessc and sass
	Runner proc.Runner

	// convert and compare options
	Syntax    common.TargetSyntax
	Overwrite bool
	Quiet     bool
	Trace     bool
	// decoder for Less sources, nil when sources are UTF-8
	CodePage encoding.Encoding

	start         time.Time
	restoreStdLog func()
}

// EnvFromContext panics when ctx was not prepared by ContextWithEnv.
func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	panic("local environment is missing from context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// Logger returns component logger, with --quiet only warnings and errors
// pass.
func (e *LocalEnv) Logger(name string) *zap.Logger {
	log := e.Log.Named(name)
	if e.Quiet {
		log = log.WithOptions(zap.IncreaseLevel(zapcore.WarnLevel))
	}
	return log
}

// RedirectStdLog sends output of standard "log" package to zap until
// RestoreStdLog.
func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
