// Package formula parses and evaluates charge-rate expressions.
//
// A formula is configuration data, not code: it is parsed once at load time
// into a small AST and evaluated per tick against a stat lookup. Unknown
// identifiers and unsupported operators are rejected by Parse, so a formula
// that loaded successfully can never fail at evaluation time.
package formula

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// StatNames is the fixed vocabulary of identifiers a formula may reference.
// Each maps to a read-only stat on a combatant.
var StatNames = map[string]bool{
	"hp":    true, // current hit points
	"maxhp": true, // maximum hit points
	"sp":    true, // current skill points
	"maxsp": true, // maximum skill points
	"str":   true, // strength
	"dex":   true, // dexterity
	"agi":   true, // agility
	"int":   true, // intelligence
	"atk":   true, // physical attack
	"pdef":  true, // physical defense
	"mdef":  true, // magical defense
	"eva":   true, // evasion
}

// Lookup resolves a stat name to its current value for one combatant.
type Lookup func(stat string) float64

// Expr is a parsed charge-rate expression.
type Expr interface {
	// Eval computes the expression over the given stat snapshot.
	// Eval is total: division by zero yields 0.
	Eval(stats Lookup) float64
}

// Literal is a numeric constant.
type Literal float64

// Eval returns the constant value.
func (l Literal) Eval(Lookup) float64 { return float64(l) }

// StatRef reads one stat from the lookup.
type StatRef string

// Eval resolves the referenced stat.
func (s StatRef) Eval(stats Lookup) float64 { return stats(string(s)) }

// BinaryOp applies an arithmetic operator to two sub-expressions.
type BinaryOp struct {
	Op   string // one of "+", "-", "*", "/", "**"
	L, R Expr
}

// Eval applies the operator.
func (b BinaryOp) Eval(stats Lookup) float64 {
	l := b.L.Eval(stats)
	r := b.R.Eval(stats)
	switch b.Op {
	case "+":
		return l + r
	case "-":
		return l - r
	case "*":
		return l * r
	case "/":
		if r == 0 {
			return 0
		}
		return l / r
	case "**":
		return math.Pow(l, r)
	}
	return 0
}

// Parse compiles a charge-rate expression. It returns an error for empty
// input, unknown identifiers, unsupported operators, and malformed syntax.
func Parse(src string) (Expr, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.done() {
		return nil, fmt.Errorf("formula %q: unexpected %q", src, p.peek().text)
	}
	return expr, nil
}

// =============================================================================
// Lexer
// =============================================================================

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokOp
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind tokenKind
	text string
}

func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '(':
			toks = append(toks, token{tokLParen, "("})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")"})
			i++
		case c == '*':
			if i+1 < len(src) && src[i+1] == '*' {
				toks = append(toks, token{tokOp, "**"})
				i += 2
			} else {
				toks = append(toks, token{tokOp, "*"})
				i++
			}
		case c == '+' || c == '-' || c == '/':
			toks = append(toks, token{tokOp, string(c)})
			i++
		case c >= '0' && c <= '9' || c == '.':
			j := i
			for j < len(src) && (src[j] >= '0' && src[j] <= '9' || src[j] == '.') {
				j++
			}
			toks = append(toks, token{tokNumber, src[i:j]})
			i = j
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_':
			j := i
			for j < len(src) && (src[j] >= 'a' && src[j] <= 'z' || src[j] >= 'A' && src[j] <= 'Z' ||
				src[j] >= '0' && src[j] <= '9' || src[j] == '_') {
				j++
			}
			toks = append(toks, token{tokIdent, src[i:j]})
			i = j
		default:
			return nil, fmt.Errorf("formula %q: unsupported character %q", src, string(c))
		}
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("empty formula")
	}
	toks = append(toks, token{tokEOF, ""})
	return toks, nil
}

// =============================================================================
// Parser
// =============================================================================
//
// Grammar (precedence low to high):
//
//	expr   := term   (("+" | "-") term)*
//	term   := power  (("*" | "/") power)*
//	power  := unary  ("**" power)?          right-associative
//	unary  := "-" unary | primary
//	primary := number | ident | "(" expr ")"

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) done() bool { return p.peek().kind == tokEOF }

func (p *parser) parseExpr() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOp && (p.peek().text == "+" || p.peek().text == "-") {
		op := p.next().text
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = BinaryOp{Op: op, L: left, R: right}
	}
	return left, nil
}

func (p *parser) parseTerm() (Expr, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOp && (p.peek().text == "*" || p.peek().text == "/") {
		op := p.next().text
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left = BinaryOp{Op: op, L: left, R: right}
	}
	return left, nil
}

func (p *parser) parsePower() (Expr, error) {
	base, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokOp && p.peek().text == "**" {
		p.next()
		exp, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		return BinaryOp{Op: "**", L: base, R: exp}, nil
	}
	return base, nil
}

func (p *parser) parseUnary() (Expr, error) {
	if p.peek().kind == tokOp && p.peek().text == "-" {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return BinaryOp{Op: "-", L: Literal(0), R: operand}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		v, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", t.text, err)
		}
		return Literal(v), nil
	case tokIdent:
		name := strings.ToLower(t.text)
		if !StatNames[name] {
			return nil, fmt.Errorf("unknown stat %q", t.text)
		}
		return StatRef(name), nil
	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.next().kind != tokRParen {
			return nil, fmt.Errorf("missing closing parenthesis")
		}
		return inner, nil
	case tokEOF:
		return nil, fmt.Errorf("unexpected end of formula")
	default:
		return nil, fmt.Errorf("unexpected %q", t.text)
	}
}
