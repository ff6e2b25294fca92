package convert

import (
	"context"
	"time"

	"go.uber.org/zap"

	"l2s/common"
	"l2s/config"
	"l2s/less"
	"l2s/sass"
	"l2s/utils/proc"
)

// Converter is the conversion entry point: Less source in, Sass text out.
// Target syntax only matters for the final rendering.
type Converter struct {
	cfg    *config.Config
	parser *less.Parser
	rpt    *config.Report
	log    *zap.Logger
}

// NewConverter creates converter. Report may be nil.
func NewConverter(cfg *config.Config, runner proc.Runner, rpt *config.Report, log *zap.Logger) *Converter {
	return &Converter{
		cfg:    cfg,
		parser: less.NewParser(&cfg.Parser, runner, log),
		rpt:    rpt,
		log:    log,
	}
}

// Convert parses source with external parser (single call) and converts
// resulting tree. Filename is used for error messages, relative imports and
// report entry names.
func (c *Converter) Convert(ctx context.Context, source []byte, filename string, syntax common.TargetSyntax) (string, error) {
	start := time.Now()

	data, err := c.parser.Parse(ctx, source, filename)
	if err != nil {
		return "", err
	}
	c.rpt.StoreData(config.EntryName(filename, ".json"), data)

	tree, err := less.NewBuilder(c.log).Build(data)
	if err != nil {
		return "", err
	}

	out, err := c.convertTree(tree, filename, syntax)
	if err != nil {
		return "", err
	}
	c.log.Debug("Converted", zap.String("file", filename), zap.Stringer("syntax", syntax), zap.Duration("elapsed", time.Since(start)))
	return out, nil
}

// ConvertTree converts already built tree. The tree is transformed in place.
func (c *Converter) ConvertTree(tree *less.Node, syntax common.TargetSyntax) (string, error) {
	return c.convertTree(tree, "", syntax)
}

func (c *Converter) convertTree(tree *less.Node, filename string, syntax common.TargetSyntax) (string, error) {
	if err := less.NewTransformer(c.log).Transform(tree); err != nil {
		return "", err
	}
	if c.rpt != nil {
		c.rpt.StoreData(config.EntryName(filename, ".less.txt"), []byte(tree.String()))
	}

	res, err := NewEmitter(&c.cfg.Conversion, c.log).Emit(tree)
	if err != nil {
		return "", err
	}
	if c.rpt != nil {
		c.rpt.StoreData(config.EntryName(filename, ".sass.txt"), []byte(sass.Dump(res.Root)))
	}
	c.log.Debug("Emitted", zap.Int("lines", res.Lines))

	return sass.RenderString(res.Root, syntax, c.cfg.Conversion.Indent), nil
}
