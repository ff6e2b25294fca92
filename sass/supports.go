package sass

import (
	"errors"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"l2s/common"
)

// SupportsCondition is parsed @supports condition.
type SupportsCondition interface {
	Text() string
}

// SupportsNegation is "not <condition>".
type SupportsNegation struct {
	Condition SupportsCondition
}

func (n *SupportsNegation) Text() string {
	return "not " + supportsOperand(n.Condition)
}

// SupportsOperation joins two conditions with "and" or "or".
type SupportsOperation struct {
	Op          string
	Left, Right SupportsCondition
}

func (o *SupportsOperation) Text() string {
	left, right := supportsOperand(o.Left), supportsOperand(o.Right)
	// chains of the same operator need no parenthesis
	if l, ok := o.Left.(*SupportsOperation); ok && l.Op == o.Op {
		left = l.Text()
	}
	return left + " " + o.Op + " " + right
}

// SupportsDeclaration is "(name: value)" test.
type SupportsDeclaration struct {
	Name  string
	Value string
}

func (d *SupportsDeclaration) Text() string {
	return "(" + d.Name + ": " + d.Value + ")"
}

// SupportsAnything keeps condition it does not understand verbatim:
// functions like selector(...) and general enclosed forms.
type SupportsAnything struct {
	Contents string
}

func (a *SupportsAnything) Text() string {
	return a.Contents
}

func supportsOperand(c SupportsCondition) string {
	switch c.(type) {
	case *SupportsOperation, *SupportsNegation:
		return "(" + c.Text() + ")"
	}
	return c.Text()
}

type supportsToken struct {
	tt   css.TokenType
	data string
}

type supportsParser struct {
	toks []supportsToken
	pos  int
}

// ParseSupportsCondition parses condition part of @supports rule.
func ParseSupportsCondition(text string) (SupportsCondition, error) {
	p := &supportsParser{}
	l := css.NewLexer(parse.NewInputString(text))
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, common.WrapError(common.ErrorKindFeatureConversionError, err, "unable to tokenize @supports condition %q", text)
			}
			break
		}
		if tt == css.CommentToken {
			continue
		}
		// lexer reuses its buffer
		p.toks = append(p.toks, supportsToken{tt: tt, data: string(data)})
	}

	cond, err := p.condition()
	if err == nil {
		p.skipWhitespace()
		if p.pos < len(p.toks) {
			err = errors.New("unexpected " + p.toks[p.pos].data)
		}
	}
	if err != nil {
		return nil, common.WrapError(common.ErrorKindFeatureConversionError, err, "unable to parse @supports condition %q", text)
	}
	return cond, nil
}

func (p *supportsParser) skipWhitespace() {
	for p.pos < len(p.toks) && p.toks[p.pos].tt == css.WhitespaceToken {
		p.pos++
	}
}

func (p *supportsParser) peek() supportsToken {
	if p.pos >= len(p.toks) {
		return supportsToken{tt: css.ErrorToken}
	}
	return p.toks[p.pos]
}

func (p *supportsParser) keyword() string {
	t := p.peek()
	if t.tt != css.IdentToken {
		return ""
	}
	return strings.ToLower(t.data)
}

func (p *supportsParser) condition() (SupportsCondition, error) {
	p.skipWhitespace()
	if p.keyword() == "not" {
		p.pos++
		c, err := p.inParens()
		if err != nil {
			return nil, err
		}
		return &SupportsNegation{Condition: c}, nil
	}

	left, err := p.inParens()
	if err != nil {
		return nil, err
	}
	for {
		p.skipWhitespace()
		op := p.keyword()
		if op != "and" && op != "or" {
			return left, nil
		}
		p.pos++
		right, err := p.inParens()
		if err != nil {
			return nil, err
		}
		left = &SupportsOperation{Op: op, Left: left, Right: right}
	}
}

func (p *supportsParser) inParens() (SupportsCondition, error) {
	p.skipWhitespace()
	t := p.peek()
	switch t.tt {
	case css.FunctionToken:
		p.pos++
		raw, err := p.balanced()
		if err != nil {
			return nil, err
		}
		return &SupportsAnything{Contents: t.data + raw + ")"}, nil
	case css.LeftParenthesisToken:
		p.pos++
	default:
		return nil, errors.New("expected \"(\" got " + strings.TrimSpace(t.data))
	}

	start := p.pos
	p.skipWhitespace()
	if name := p.peek(); name.tt == css.IdentToken || name.tt == css.CustomPropertyNameToken {
		p.pos++
		p.skipWhitespace()
		if p.peek().tt == css.ColonToken {
			p.pos++
			value, err := p.balanced()
			if err != nil {
				return nil, err
			}
			return &SupportsDeclaration{Name: name.data, Value: strings.TrimSpace(value)}, nil
		}
	}

	p.pos = start
	p.skipWhitespace()
	if t := p.peek(); t.tt == css.LeftParenthesisToken || t.tt == css.FunctionToken || p.keyword() == "not" {
		c, err := p.condition()
		if err != nil {
			return nil, err
		}
		p.skipWhitespace()
		if p.peek().tt != css.RightParenthesisToken {
			return nil, errors.New("unbalanced parenthesis")
		}
		p.pos++
		return c, nil
	}

	raw, err := p.balanced()
	if err != nil {
		return nil, err
	}
	return &SupportsAnything{Contents: "(" + strings.TrimSpace(raw) + ")"}, nil
}

// balanced collects raw text up to the closing parenthesis and consumes it.
func (p *supportsParser) balanced() (string, error) {
	var (
		b     strings.Builder
		depth int
	)
	for ; p.pos < len(p.toks); p.pos++ {
		t := p.toks[p.pos]
		switch t.tt {
		case css.LeftParenthesisToken, css.FunctionToken:
			depth++
		case css.RightParenthesisToken:
			if depth == 0 {
				p.pos++
				return b.String(), nil
			}
			depth--
		}
		b.WriteString(t.data)
	}
	return "", errors.New("unbalanced parenthesis")
}
