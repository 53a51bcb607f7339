package logquery

import "strings"

// Parser builds a predicate tree from a filter expression string.
type parser struct {
	input   string
	lexer   *lexer
	current token
}

// Parse compiles a filter expression. An empty or blank expression returns a
// nil tree, which matches every record. Malformed input returns *SyntaxError.
//
// Operator precedence is `not` > `and` > `or`, with explicit parentheses
// allowed. Field names and keywords are case-insensitive; values keep their
// case unless compared with `~`, which is always case-sensitive.
func Parse(input string) (Node, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}

	p := &parser{input: input, lexer: newLexer(input)}
	if err := p.advance(); err != nil {
		return nil, err
	}

	node, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	if p.current.Type != tokenEOF {
		return nil, newSyntaxError(input, p.current.Pos, "unexpected %q after expression", p.current.Value)
	}

	return node, nil
}

func (p *parser) advance() error {
	tok, err := p.lexer.next()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

// parseOr handles OR expressions (lowest precedence).
func (p *parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.current.Type == tokenOr {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{Op: "OR", Left: left, Right: right}
	}

	return left, nil
}

// parseAnd binds tighter than OR.
func (p *parser) parseAnd() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.current.Type == tokenAnd {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{Op: "AND", Left: left, Right: right}
	}

	return left, nil
}

// parseUnary handles NOT (right-associative) and primaries.
func (p *parser) parseUnary() (Node, error) {
	if p.current.Type == tokenNot {
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return NotExpr{Expr: expr}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Node, error) {
	switch p.current.Type {
	case tokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.current.Type != tokenRParen {
			return nil, newSyntaxError(p.input, p.current.Pos, "expected ')'")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return expr, nil

	case tokenIdent:
		return p.parseComparison()

	case tokenEOF:
		return nil, newSyntaxError(p.input, p.current.Pos, "unexpected end of expression")

	default:
		return nil, newSyntaxError(p.input, p.current.Pos, "unexpected %q", p.current.Value)
	}
}

// parseComparison parses FIELD OP VALUE.
func (p *parser) parseComparison() (Node, error) {
	field := strings.ToLower(p.current.Value)
	fieldPos := p.current.Pos
	if _, ok := Fields[field]; !ok {
		return nil, newSyntaxError(p.input, fieldPos, "unknown field %q", p.current.Value)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var op Op
	switch p.current.Type {
	case tokenEq:
		op = OpEqual
	case tokenNeq:
		op = OpNotEqual
	case tokenTilde:
		op = OpContains
	default:
		return nil, newSyntaxError(p.input, p.current.Pos, "expected operator (=, != or ~) after field %q", field)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	switch p.current.Type {
	case tokenString, tokenIdent:
		value := p.current.Value
		if err := p.advance(); err != nil {
			return nil, err
		}
		return Comparison{Field: field, Op: op, Value: value}, nil
	default:
		return nil, newSyntaxError(p.input, p.current.Pos, "missing value after %q%s", field, op)
	}
}
