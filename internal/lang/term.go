// Package lang holds the term and rule values the editor stacks, plus the
// reader that turns text into them.
package lang

import (
	"fmt"
	"strconv"
	"strings"
)

// Term is a node of the application tree. The set of implementations is
// closed to this package.
type Term interface {
	fmt.Stringer
	term()
}

// Var references a bound name.
type Var struct {
	Name string
}

// Lam binds Name inside Body.
type Lam struct {
	Name string
	Body Term
}

// App applies Func to Argm.
type App struct {
	Func Term
	Argm Term
}

// Ctr is a constructor with zero or more fields.
type Ctr struct {
	Name string
	Args []Term
}

// Num is an unsigned numeric literal.
type Num struct {
	Value uint64
}

// Op2 is a binary numeric operation.
type Op2 struct {
	Oper string
	Val0 Term
	Val1 Term
}

// Let binds Name to Expr inside Body.
type Let struct {
	Name string
	Expr Term
	Body Term
}

// Dup duplicates Expr into Nam0 and Nam1 inside Body.
type Dup struct {
	Nam0 string
	Nam1 string
	Expr Term
	Body Term
}

// Sup is a superposition of two values.
type Sup struct {
	Val0 Term
	Val1 Term
}

func (Var) term() {}
func (Lam) term() {}
func (App) term() {}
func (Ctr) term() {}
func (Num) term() {}
func (Op2) term() {}
func (Let) term() {}
func (Dup) term() {}
func (Sup) term() {}

// Apply builds the application of fn to arg.
func Apply(fn, arg Term) Term {
	return App{Func: fn, Argm: arg}
}

func (v Var) String() string { return v.Name }

func (l Lam) String() string { return "λ" + l.Name + " " + l.Body.String() }

// String prints nested applications flattened, so App(App(f, a), b) reads
// "(f a b)" the same way the reader accepts it.
func (a App) String() string {
	var args []string
	var head Term = a
	for {
		app, ok := head.(App)
		if !ok {
			break
		}
		args = append(args, app.Argm.String())
		head = app.Func
	}
	parts := make([]string, 0, len(args)+1)
	if ctr, ok := head.(Ctr); ok && len(ctr.Args) == 0 {
		// "(Foo a)" would read back as a constructor with one field.
		parts = append(parts, "("+ctr.Name+")")
	} else {
		parts = append(parts, head.String())
	}
	for i := len(args) - 1; i >= 0; i-- {
		parts = append(parts, args[i])
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (c Ctr) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, arg := range c.Args {
		parts = append(parts, arg.String())
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (n Num) String() string { return strconv.FormatUint(n.Value, 10) }

func (o Op2) String() string {
	return fmt.Sprintf("(%s %s %s)", o.Oper, o.Val0, o.Val1)
}

func (l Let) String() string {
	return fmt.Sprintf("let %s = %s; %s", l.Name, l.Expr, l.Body)
}

func (d Dup) String() string {
	return fmt.Sprintf("dup %s %s = %s; %s", d.Nam0, d.Nam1, d.Expr, d.Body)
}

func (s Sup) String() string {
	return fmt.Sprintf("{%s %s}", s.Val0, s.Val1)
}

// Rule rewrites terms matching Lhs into Rhs.
type Rule struct {
	Lhs Term
	Rhs Term
}

func (r Rule) String() string {
	return r.Lhs.String() + " = " + r.Rhs.String()
}
