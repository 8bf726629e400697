package lang

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// SyntaxError reports where the reader gave up. Offset counts runes from the
// start of the input.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d: %s", e.Offset, e.Msg)
}

// Operators are listed longest first so "<<" wins over "<". A lone "=" is
// punctuation, not an operator.
var termLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Lambda", Pattern: `[λ@]`},
	{Name: "Op", Pattern: `<<|>>|<=|>=|==|!=|[-+*/%&|^<>]`},
	{Name: "Number", Pattern: `[0-9][A-Za-z0-9_.]*`},
	{Name: "Upper", Pattern: `[A-Z][A-Za-z0-9_.]*`},
	{Name: "Ident", Pattern: `[a-z_.][A-Za-z0-9_.]*`},
	{Name: "Punct", Pattern: `[(){}=;]`},
})

type termNode struct {
	Pos lexer.Position

	Lam    *lamNode   `  @@`
	Let    *letNode   `| @@`
	Dup    *dupNode   `| @@`
	Sup    *supNode   `| @@`
	Group  *groupNode `| "(" @@ ")"`
	Number *string    `| @Number`
	Ctr    *string    `| @Upper`
	Var    *string    `| @Ident`
}

type lamNode struct {
	Name string    `Lambda @Ident`
	Body *termNode `@@`
}

type letNode struct {
	Name string    `"let" @Ident "="`
	Expr *termNode `@@ ";"`
	Body *termNode `@@`
}

type dupNode struct {
	Nam0 string    `"dup" @Ident`
	Nam1 string    `@Ident "="`
	Expr *termNode `@@ ";"`
	Body *termNode `@@`
}

type supNode struct {
	Val0 *termNode `"{" @@`
	Val1 *termNode `@@ "}"`
}

// groupNode is whatever sits between a pair of parentheses.
type groupNode struct {
	Op2 *op2Node `  @@`
	Ctr *ctrNode `| @@`
	App *appNode `| @@`
}

type op2Node struct {
	Oper string    `@Op`
	Val0 *termNode `@@`
	Val1 *termNode `@@`
}

type ctrNode struct {
	Name string      `@Upper`
	Args []*termNode `@@*`
}

type appNode struct {
	Head *termNode   `@@`
	Args []*termNode `@@*`
}

type ruleNode struct {
	Lhs *termNode `@@ "="`
	Rhs *termNode `@@`
}

var (
	parserOptions = []participle.Option{
		participle.Lexer(termLexer),
		participle.Elide("Comment", "Whitespace"),
	}
	termParser = participle.MustBuild[termNode](parserOptions...)
	ruleParser = participle.MustBuild[ruleNode](parserOptions...)
)

// ReadTerm parses a single term. The whole input must be consumed.
func ReadTerm(text string) (Term, error) {
	node, err := termParser.ParseString("", text)
	if err != nil {
		return nil, syntaxError(text, err)
	}
	return node.term(text)
}

// ReadRule parses "lhs = rhs".
func ReadRule(text string) (Rule, error) {
	node, err := ruleParser.ParseString("", text)
	if err != nil {
		return Rule{}, syntaxError(text, err)
	}
	lhs, err := node.Lhs.term(text)
	if err != nil {
		return Rule{}, err
	}
	rhs, err := node.Rhs.term(text)
	if err != nil {
		return Rule{}, err
	}
	return Rule{Lhs: lhs, Rhs: rhs}, nil
}

func syntaxError(text string, err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		return &SyntaxError{Offset: runeOffset(text, perr.Position()), Msg: perr.Message()}
	}
	return &SyntaxError{Msg: err.Error()}
}

// runeOffset converts the lexer's byte offset into a rune count.
func runeOffset(text string, pos lexer.Position) int {
	off := pos.Offset
	if off > len(text) {
		off = len(text)
	}
	if off < 0 {
		off = 0
	}
	return utf8.RuneCountInString(text[:off])
}

func (n *termNode) term(text string) (Term, error) {
	switch {
	case n.Lam != nil:
		body, err := n.Lam.Body.term(text)
		if err != nil {
			return nil, err
		}
		return Lam{Name: n.Lam.Name, Body: body}, nil
	case n.Let != nil:
		expr, body, err := pair(text, n.Let.Expr, n.Let.Body)
		if err != nil {
			return nil, err
		}
		return Let{Name: n.Let.Name, Expr: expr, Body: body}, nil
	case n.Dup != nil:
		expr, body, err := pair(text, n.Dup.Expr, n.Dup.Body)
		if err != nil {
			return nil, err
		}
		return Dup{Nam0: n.Dup.Nam0, Nam1: n.Dup.Nam1, Expr: expr, Body: body}, nil
	case n.Sup != nil:
		val0, val1, err := pair(text, n.Sup.Val0, n.Sup.Val1)
		if err != nil {
			return nil, err
		}
		return Sup{Val0: val0, Val1: val1}, nil
	case n.Group != nil:
		return n.Group.term(text)
	case n.Number != nil:
		value, err := strconv.ParseUint(*n.Number, 10, 64)
		if err != nil {
			return nil, &SyntaxError{Offset: runeOffset(text, n.Pos), Msg: fmt.Sprintf("invalid number %q", *n.Number)}
		}
		return Num{Value: value}, nil
	case n.Ctr != nil:
		return Ctr{Name: *n.Ctr}, nil
	case n.Var != nil:
		return Var{Name: *n.Var}, nil
	default:
		return nil, &SyntaxError{Offset: runeOffset(text, n.Pos), Msg: "empty term"}
	}
}

func (g *groupNode) term(text string) (Term, error) {
	switch {
	case g.Op2 != nil:
		val0, val1, err := pair(text, g.Op2.Val0, g.Op2.Val1)
		if err != nil {
			return nil, err
		}
		return Op2{Oper: g.Op2.Oper, Val0: val0, Val1: val1}, nil
	case g.Ctr != nil:
		args, err := terms(text, g.Ctr.Args)
		if err != nil {
			return nil, err
		}
		return Ctr{Name: g.Ctr.Name, Args: args}, nil
	default:
		head, err := g.App.Head.term(text)
		if err != nil {
			return nil, err
		}
		args, err := terms(text, g.App.Args)
		if err != nil {
			return nil, err
		}
		for _, arg := range args {
			head = App{Func: head, Argm: arg}
		}
		return head, nil
	}
}

func pair(text string, a, b *termNode) (Term, Term, error) {
	first, err := a.term(text)
	if err != nil {
		return nil, nil, err
	}
	second, err := b.term(text)
	if err != nil {
		return nil, nil, err
	}
	return first, second, nil
}

// terms converts a node list, returning nil for an empty one.
func terms(text string, nodes []*termNode) ([]Term, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	out := make([]Term, 0, len(nodes))
	for _, node := range nodes {
		t, err := node.term(text)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
