package convert

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"l2s/common"
	"l2s/config"
	"l2s/css"
	"l2s/sass"
	"l2s/state"
)

// Compare is the "compare" command. It compiles Less source with lessc,
// converts it, compiles the result with sass and reports differences
// between produced CSS.
func Compare(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("compare")

	if err := applyFlags(cmd, env, log); err != nil {
		return err
	}

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return common.NewError(common.ErrorKindConfigurationError, "source stylesheet is required")
	}
	path, err := filepath.Abs(src)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	source, err := io.ReadAll(selectReader(f, env.CodePage))
	if err != nil {
		return fmt.Errorf("unable to read source: %w", err)
	}

	diff, err := compareSource(ctx, env, source, path, log)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	if len(diff) == 0 {
		fmt.Fprintf(out, "%s: compiled CSS is equivalent\n", src)
		return nil
	}
	for _, d := range diff {
		fmt.Fprintln(out, d)
	}
	return fmt.Errorf("%s: compiled CSS differs in %d rules", src, len(diff))
}

// compareSource returns differences between lessc output for the source and
// sass output for its conversion.
func compareSource(ctx context.Context, env *state.LocalEnv, source []byte, path string, log *zap.Logger) ([]string, error) {
	start := time.Now()

	lessCSS, err := compileLess(ctx, env, source, path, log)
	if err != nil {
		return nil, err
	}
	env.Rpt.StoreData(config.EntryName(path, ".lessc.css"), lessCSS)

	converted, err := NewConverter(env.Cfg, env.Runner, env.Rpt, log).Convert(ctx, source, path, env.Syntax)
	if err != nil {
		return nil, err
	}

	loadPaths := append([]string{filepath.Dir(path)}, env.Cfg.Parser.IncludePaths...)
	sassCSS, err := sass.NewCompiler(env.Cfg.Compiler.Sass, env.Runner, log).Compile(ctx, converted, env.Syntax, loadPaths...)
	if err != nil {
		return nil, err
	}
	env.Rpt.StoreData(config.EntryName(path, ".sass.css"), []byte(sassCSS))

	parser := css.NewParser(log)
	want, got := parser.Parse(lessCSS, "lessc"), parser.Parse([]byte(sassCSS), "sass")
	for _, w := range append(want.Warnings, got.Warnings...) {
		log.Warn("Compiled CSS is malformed", zap.String("problem", w))
	}

	diff := css.Diff(want, got)
	log.Info("Comparison completed", zap.String("file", path), zap.Int("differences", len(diff)), zap.Duration("elapsed", time.Since(start)))
	return diff, nil
}

func compileLess(ctx context.Context, env *state.LocalEnv, source []byte, path string, log *zap.Logger) ([]byte, error) {
	args := []string{"--no-color"}
	if env.Cfg.Parser.StrictMath {
		args = append(args, "--strict-math=on")
	}
	paths := append([]string{filepath.Dir(path)}, env.Cfg.Parser.IncludePaths...)
	args = append(args, "--include-path="+strings.Join(paths, string(filepath.ListSeparator)), "-")

	var extra []string
	if env.Cfg.Parser.NodePath != "" {
		extra = append(extra, "NODE_PATH="+env.Cfg.Parser.NodePath)
	}

	log.Debug("Compiling", zap.String("exe", env.Cfg.Compiler.Lessc), zap.Strings("args", args), zap.Int("size", len(source)))
	out, err := env.Runner.Run(ctx, env.Cfg.Compiler.Lessc, args, extra, bytes.NewReader(source))
	if err != nil {
		return nil, common.WrapError(common.ErrorKindUnknownError, err, "lessc compilation failed")
	}
	return out, nil
}
