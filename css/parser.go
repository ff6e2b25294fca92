package css

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses CSS stylesheets into structured rules.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet. Comments are dropped, recoverable
// syntax errors are kept as warnings.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	for {
		gt, _, name := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if p.done(parser, sheet) {
				return sheet
			}

		case css.AtRuleGrammar:
			sheet.Items = append(sheet.Items, &Item{
				AtRule:  string(name),
				Prelude: normalizeTokens(parser.Values()),
			})

		case css.BeginAtRuleGrammar:
			sheet.Items = append(sheet.Items, p.parseAtRule(parser, sheet, string(name)))

		case css.BeginRulesetGrammar:
			it := &Item{Selectors: splitSelectors(parser.Values())}
			p.parseDeclarations(parser, sheet, it)
			sheet.Items = append(sheet.Items, it)
		}
	}
}

func (p *Parser) parseAtRule(parser *css.Parser, sheet *Stylesheet, name string) *Item {
	it := &Item{AtRule: name, Prelude: normalizeTokens(parser.Values())}
	p.log.Debug("Parsing at-rule", zap.String("rule", name), zap.String("prelude", it.Prelude))

	var body []string
	for {
		gt, tt, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if p.done(parser, sheet) {
				it.Body = strings.Join(strings.Fields(strings.Join(body, "")), " ")
				return it
			}

		case css.EndAtRuleGrammar:
			it.Body = strings.Join(strings.Fields(strings.Join(body, "")), " ")
			return it

		case css.TokenGrammar:
			body = append(body, normalizeToken(css.Token{TokenType: tt, Data: data}))

		case css.DeclarationGrammar:
			it.Declarations = append(it.Declarations, Declaration{Property: string(data), Value: normalizeTokens(parser.Values())})

		case css.CustomPropertyGrammar:
			it.Declarations = append(it.Declarations, customProperty(data, parser.Values()))

		case css.AtRuleGrammar:
			it.Items = append(it.Items, &Item{AtRule: string(data), Prelude: normalizeTokens(parser.Values())})

		case css.BeginAtRuleGrammar:
			it.Items = append(it.Items, p.parseAtRule(parser, sheet, string(data)))

		case css.BeginRulesetGrammar:
			rule := &Item{Selectors: splitSelectors(parser.Values())}
			p.parseDeclarations(parser, sheet, rule)
			it.Items = append(it.Items, rule)
		}
	}
}

// parseDeclarations parses property declarations until EndRulesetGrammar.
func (p *Parser) parseDeclarations(parser *css.Parser, sheet *Stylesheet, it *Item) {
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.EndRulesetGrammar:
			return

		case css.ErrorGrammar:
			if p.done(parser, sheet) {
				return
			}

		case css.DeclarationGrammar:
			if values := parser.Values(); len(values) > 0 {
				it.Declarations = append(it.Declarations, Declaration{Property: string(data), Value: normalizeTokens(values)})
			}

		case css.CustomPropertyGrammar:
			it.Declarations = append(it.Declarations, customProperty(data, parser.Values()))

		case css.BeginAtRuleGrammar:
			it.Items = append(it.Items, p.parseAtRule(parser, sheet, string(data)))
		}
	}
}

// done reports end of input. Syntax errors are recorded and parsing
// continues.
func (p *Parser) done(parser *css.Parser, sheet *Stylesheet) bool {
	err := parser.Err()
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	if !parser.HasParseError() {
		p.log.Debug("CSS read error", zap.Error(err))
		sheet.Warnings = append(sheet.Warnings, err.Error())
		return true
	}
	p.log.Debug("CSS parse error", zap.Error(err))
	sheet.Warnings = append(sheet.Warnings, err.Error())
	return false
}

func customProperty(name []byte, values []css.Token) Declaration {
	var sb strings.Builder
	for _, v := range values {
		sb.Write(v.Data)
	}
	return Declaration{Property: string(name), Value: strings.TrimSpace(sb.String())}
}

// splitSelectors separates selector list on top level commas.
func splitSelectors(values []css.Token) []string {
	var (
		selectors []string
		sb        strings.Builder
		level     int
	)
	flush := func() {
		if s := strings.TrimSpace(sb.String()); s != "" {
			selectors = append(selectors, s)
		}
		sb.Reset()
	}
	for _, v := range values {
		switch v.TokenType {
		case css.CommaToken:
			if level == 0 {
				flush()
				continue
			}
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			level++
		case css.RightParenthesisToken, css.RightBracketToken:
			level--
		}
		sb.WriteString(normalizeToken(v))
	}
	flush()
	return selectors
}

func normalizeTokens(tokens []css.Token) string {
	var sb strings.Builder
	for i, t := range tokens {
		if t.TokenType == css.DelimToken && string(t.Data) == "!" && i > 0 && tokens[i-1].TokenType != css.WhitespaceToken {
			sb.WriteByte(' ')
		}
		sb.WriteString(normalizeToken(t))
	}
	return strings.TrimSpace(sb.String())
}

// normalizeToken hides differences compilers are free to make: number
// formatting, precision, hex color case and string quotes.
func normalizeToken(t css.Token) string {
	switch t.TokenType {
	case css.WhitespaceToken:
		return " "
	case css.NumberToken, css.PercentageToken, css.DimensionToken:
		if num, _ := parse.Dimension(t.Data); num > 0 {
			return formatNumber(string(t.Data[:num])) + strings.ToLower(string(t.Data[num:]))
		}
	case css.HashToken:
		return strings.ToLower(string(t.Data))
	case css.StringToken:
		return requote(string(t.Data))
	}
	return string(t.Data)
}

// formatNumber rounds to precision both compilers honor.
func formatNumber(s string) string {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	v = math.Round(v*1e6) / 1e6
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func requote(s string) string {
	if len(s) < 2 || s[0] != '\'' {
		return s
	}
	inner := strings.ReplaceAll(s[1:len(s)-1], `\'`, `'`)
	return `"` + strings.ReplaceAll(inner, `"`, `\"`) + `"`
}
