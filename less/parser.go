package less

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"path/filepath"

	"go.uber.org/zap"

	"l2s/common"
	"l2s/config"
	"l2s/utils/proc"
)

//go:embed js/parse.js
var parseScript string

// Parser runs Less parser under node and returns its JSON output. One
// process per source.
type Parser struct {
	cfg    *config.ParserConfig
	runner proc.Runner
	log    *zap.Logger
}

func NewParser(cfg *config.ParserConfig, runner proc.Runner, log *zap.Logger) *Parser {
	return &Parser{cfg: cfg, runner: runner, log: log.Named("parser")}
}

type parseOptions struct {
	Paths      []string `json:"paths"`
	StrictMath bool     `json:"strictMath"`
}

// Parse feeds source to the parser. Errors reported by the parser itself
// are not detected here, they come back as JSON error object and are
// converted by Builder.
func (p *Parser) Parse(ctx context.Context, source []byte, filename string) ([]byte, error) {
	if filename == "" {
		filename = "input.less"
	}
	opts := parseOptions{StrictMath: p.cfg.StrictMath}
	if dir := filepath.Dir(filename); dir != "." {
		opts.Paths = append(opts.Paths, dir)
	}
	opts.Paths = append(opts.Paths, p.cfg.IncludePaths...)
	encoded, err := json.Marshal(opts)
	if err != nil {
		return nil, common.WrapError(common.ErrorKindUnknownError, err, "unable to prepare parser options")
	}

	var env []string
	if p.cfg.NodePath != "" {
		env = append(env, "NODE_PATH="+p.cfg.NodePath)
	}

	p.log.Debug("Running parser", zap.String("node", p.cfg.Node), zap.String("file", filename), zap.Strings("paths", opts.Paths))
	out, err := p.runner.Run(ctx, p.cfg.Node, []string{"-e", parseScript, "--", filename, string(encoded)}, env, bytes.NewReader(source))
	if err != nil {
		return nil, common.WrapError(common.ErrorKindUnknownError, err, "unable to run Less parser (%s)", p.cfg.Node)
	}
	out = bytes.TrimSpace(out)
	if len(out) == 0 {
		return nil, common.NewError(common.ErrorKindUnknownError, "Less parser produced no output for %s", filename)
	}
	return out, nil
}
