package sass

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"l2s/common"
	"l2s/utils/proc"
)

// Compiler runs external sass executable to produce CSS.
type Compiler struct {
	exe    string
	runner proc.Runner
	log    *zap.Logger
}

func NewCompiler(exe string, runner proc.Runner, log *zap.Logger) *Compiler {
	return &Compiler{exe: exe, runner: runner, log: log.Named("sass")}
}

// Compile feeds source to the compiler on stdin. Load paths are used to
// resolve @import.
func (c *Compiler) Compile(ctx context.Context, source string, syntax common.TargetSyntax, loadPaths ...string) (string, error) {
	args := []string{"--stdin", "--no-source-map", "--style=expanded"}
	if syntax == common.TargetSyntaxSass {
		args = append(args, "--indented")
	}
	for _, p := range loadPaths {
		args = append(args, "--load-path="+p)
	}

	c.log.Debug("Compiling", zap.String("exe", c.exe), zap.Strings("args", args), zap.Int("size", len(source)))
	out, err := c.runner.Run(ctx, c.exe, args, nil, strings.NewReader(source))
	if err != nil {
		return "", common.WrapError(common.ErrorKindUnknownError, err, "sass compilation failed")
	}
	return string(out), nil
}
