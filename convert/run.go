package convert

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"l2s/archive"
	"l2s/common"
	"l2s/config"
	"l2s/state"
)

// Run is the "convert" command.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	if err := applyFlags(cmd, env, log); err != nil {
		return err
	}
	env.Overwrite = cmd.Bool("overwrite")

	src, dst := cmd.Args().Get(0), cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	log = env.Logger("convert")
	conv := NewConverter(env.Cfg, env.Runner, env.Rpt, log)

	if len(src) == 0 || src == "-" {
		return processStream(ctx, conv, cmd.Root().Reader, cmd.Root().Writer, dst, log)
	}

	if src, err = filepath.Abs(src); err != nil {
		return err
	}
	if len(dst) > 0 {
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("syntax", env.Syntax))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, conv, src, dst, cmd.Root().Writer, log)
}

// StdinArgs protects lone "-" (stdin source) on the command line. Flag
// parsing stops at "-" and drops everything after it, so "--" is inserted in
// front unless flag parsing was already terminated. Flags must precede it.
func StdinArgs(args []string) []string {
	for i, a := range args {
		switch a {
		case "--":
			return args
		case "-":
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
	}
	return args
}

// applyFlags sets conversion options shared by commands: target syntax and
// source encoding.
func applyFlags(cmd *cli.Command, env *state.LocalEnv, log *zap.Logger) (err error) {
	env.Syntax = env.Cfg.Conversion.TargetSyntax
	if to := cmd.String("to"); len(to) > 0 {
		if env.Syntax, err = common.ParseTargetSyntax(to); err != nil {
			return common.WrapError(common.ErrorKindConfigurationError, err, "unsupported target syntax %q", to)
		}
	}
	env.Quiet = cmd.Bool("quiet")

	cp := cmd.String("input-encoding")
	if len(cp) == 0 {
		cp = env.Cfg.Conversion.InputEncoding
	}
	if len(cp) > 0 {
		if env.CodePage, err = ianaindex.IANA.Encoding(cp); err != nil || env.CodePage == nil {
			return common.WrapError(common.ErrorKindConfigurationError, err, "unsupported input encoding %q", cp)
		}
		n, _ := ianaindex.IANA.Name(env.CodePage)
		log.Debug("Decoding sources", zap.String("charset", n))
	}
	return nil
}

// process determines the input type (directory, archive with optional path
// inside, or single file) and converts accordingly.
func process(ctx context.Context, conv *Converter, src, dst string, stdout io.Writer, log *zap.Logger) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exist - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if len(dst) == 0 {
				dst = head
			}
			return processDir(ctx, conv, head, dst, log)
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		isArchive, err := isArchiveFile(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			inner := filepath.ToSlash(strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator)))
			if len(dst) == 0 {
				dst = filepath.Dir(head)
			}
			return processArchive(ctx, conv, head, inner, dst, log)
		}

		if len(tail) != 0 {
			return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}
		if !isLessFile(head) {
			log.Warn("Source does not have .less extension, converting anyway", zap.String("file", head))
		}
		f, err := os.Open(head)
		if err != nil {
			return err
		}
		defer f.Close()

		if len(dst) == 0 {
			return convertOne(ctx, conv, f, head, "", stdout, log)
		}
		return convertOne(ctx, conv, f, head, buildOutputPath(filepath.Base(head), dst, false, state.EnvFromContext(ctx).Syntax), nil, log)
	}
	return fmt.Errorf("input source was not found (%s)", src)
}

// processStream converts stdin.
func processStream(ctx context.Context, conv *Converter, r io.Reader, stdout io.Writer, dst string, log *zap.Logger) error {
	out := ""
	if len(dst) > 0 {
		var err error
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
		out = buildOutputPath("stdin"+lessExt, dst, false, state.EnvFromContext(ctx).Syntax)
	}
	return convertOne(ctx, conv, r, "", out, stdout, log)
}

// processDir converts every stylesheet under the directory keeping relative
// structure. Failures are collected, conversion continues with the next
// file.
func processDir(ctx context.Context, conv *Converter, dir, dst string, log *zap.Logger) error {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.Type().IsRegular() && isLessFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(files) == 0 {
		log.Warn("Nothing to process", zap.String("dir", dir))
		return nil
	}
	sort.Sort(natural.StringSlice(files))

	syntax := state.EnvFromContext(ctx).Syntax
	var errs error
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if err := convertFile(ctx, conv, path, buildOutputPath(rel, dst, true, syntax), log); err != nil {
			log.Error("Unable to convert file", zap.String("file", path), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", rel, err))
		}
	}
	return summarize(errs, len(files))
}

func convertFile(ctx context.Context, conv *Converter, path, out string, log *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return convertOne(ctx, conv, f, path, out, nil, log)
}

// processArchive converts stylesheets inside archive under "pathIn".
// Imports are resolved against the file system, not the archive.
func processArchive(ctx context.Context, conv *Converter, path, pathIn, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	var (
		errs  error
		count int
	)
	err := archive.Walk(path, pathIn, lessExt, func(arc string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		count++

		name := f.Name
		if env.CodePage != nil && f.NonUTF8 {
			if n, err := env.CodePage.NewDecoder().String(name); err == nil {
				name = n
			} else {
				log.Warn("Unable to convert archive name from specified encoding", zap.String("path", name), zap.Error(err))
			}
		}

		r, err := f.Open()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", name, err))
			return nil
		}
		defer r.Close()

		out := buildOutputPath(filepath.FromSlash(name), dst, true, env.Syntax)
		if err := convertOne(ctx, conv, r, name, out, nil, log); err != nil {
			log.Error("Unable to convert file in archive", zap.String("archive", arc), zap.String("file", name), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", name, err))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("unable to process archive: %w", err)
	}
	if count == 0 {
		log.Warn("Nothing to process", zap.String("archive", path), zap.String("path", pathIn))
		return nil
	}
	return summarize(errs, count)
}

// summarize keeps kind of the single failure so exit message stays precise.
func summarize(errs error, total int) error {
	all := multierr.Errors(errs)
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	}
	return fmt.Errorf("%d of %d stylesheets failed to convert: %w", len(all), total, errs)
}

// convertOne converts single source. Empty "out" means stdout. "name" is
// used for import resolution and reporting, it is empty for stdin.
func convertOne(ctx context.Context, conv *Converter, r io.Reader, name, out string, stdout io.Writer, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	log.Info("Conversion starting", zap.String("from", name))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Conversion ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", out), zap.ByteString("stack", debug.Stack()))
			rerr = common.NewError(common.ErrorKindUnknownError, "conversion panic: %v", r)
		} else if rerr == nil {
			log.Info("Conversion completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", out))
		}
	}(time.Now())

	source, err := io.ReadAll(selectReader(r, env.CodePage))
	if err != nil {
		return fmt.Errorf("unable to read source: %w", err)
	}
	if len(name) > 0 {
		env.Rpt.StoreData(config.EntryName(name, lessExt), source)
	}

	result, err := conv.Convert(ctx, source, name, env.Syntax)
	if err != nil {
		return err
	}
	env.Rpt.StoreData(config.EntryName(name, env.Syntax.Ext()), []byte(result))

	if len(out) == 0 {
		_, err = io.WriteString(stdout, result)
		return err
	}
	return writeResult(out, result, env.Overwrite, log)
}

func writeResult(out, result string, overwrite bool, log *zap.Logger) error {
	if _, err := os.Stat(out); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", out)
		}
		log.Warn("Overwriting existing file", zap.String("file", out))
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return os.WriteFile(out, []byte(result), 0644)
}
