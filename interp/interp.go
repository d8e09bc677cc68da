package interp

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sergev/lox/lang"
	"github.com/sergev/lox/parser"
)

// Interp executes parsed programs against a single global environment.
// The environment persists across Run calls, so one Interp can serve a
// whole REPL session.
type Interp struct {
	env      *lang.Env
	out      io.Writer
	debugAST bool
}

// New constructs an interpreter writing program output to out.
func New(out io.Writer) *Interp {
	return &Interp{
		env: lang.NewEnv(),
		out: out,
	}
}

// SetDebugAST toggles printing each declaration's tree form before it
// is executed.
func (in *Interp) SetDebugAST(on bool) {
	in.debugAST = on
}

// Env exposes the global environment.
func (in *Interp) Env() *lang.Env {
	return in.env
}

// Run executes the program in declaration order, stopping at the first
// runtime error. Scan and parse errors never reach this layer.
func (in *Interp) Run(prog *parser.Program) error {
	for _, decl := range prog.Decls {
		if in.debugAST {
			fmt.Fprint(in.out, parser.Render(decl))
		}
		if state := in.runDecl(decl); state != nil {
			return state
		}
	}
	return nil
}

// RunString scans, parses, and executes src as one program. startLine
// seeds diagnostic line numbers so a REPL can report session lines.
func (in *Interp) RunString(src string, startLine int) error {
	prog, state := parser.ParseString(src, startLine)
	if state != nil {
		return state
	}
	return in.Run(prog)
}

// RunFile loads and executes a script file, allowing a #! shebang line.
func (in *Interp) RunFile(path string) error {
	src, startLine, err := readScript(path)
	if err != nil {
		return err
	}
	return in.RunString(src, startLine)
}

// readScript reads a script, dropping a leading #! line. The returned
// start line keeps diagnostics aligned with the file on disk.
func readScript(path string) (string, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, err
	}
	src := string(data)
	if !strings.HasPrefix(src, "#!") {
		return src, 0, nil
	}
	if idx := strings.IndexByte(src, '\n'); idx >= 0 {
		return src[idx+1:], 1, nil
	}
	return "", 1, nil
}

func (in *Interp) runDecl(d parser.Decl) *lang.State {
	switch d := d.(type) {
	case *parser.VarDecl:
		val, state := in.evalExpr(d.Init)
		if state != nil {
			return state
		}
		in.env.Define(d.Name, val)
	case *parser.PrintStmt:
		val, state := in.evalExpr(d.Expr)
		if state != nil {
			return state
		}
		fmt.Fprintln(in.out, val)
	case *parser.ExprStmt:
		if _, state := in.evalExpr(d.Expr); state != nil {
			return state
		}
	}
	return nil
}

func (in *Interp) evalExpr(e parser.Expr) (lang.Value, *lang.State) {
	switch e := e.(type) {
	case *parser.NumberExpr:
		return lang.NumberValue(e.Value), nil
	case *parser.StringExpr:
		return lang.StringValue(e.Value), nil
	case *parser.BoolExpr:
		return lang.BoolValue(e.Value), nil
	case *parser.NilExpr:
		return lang.Nil, nil
	case *parser.IdentifierExpr:
		val, ok := in.env.Get(e.Name)
		if !ok {
			return lang.Value{}, lang.RuntimeError(e.Line, "undefined variable: %s", e.Name)
		}
		return val, nil
	case *parser.UnaryExpr:
		return in.evalUnary(e)
	case *parser.BinaryExpr:
		return in.evalBinary(e)
	default:
		return lang.Value{}, lang.RuntimeError(e.Pos(), "unsupported expression")
	}
}

func (in *Interp) evalUnary(e *parser.UnaryExpr) (lang.Value, *lang.State) {
	val, state := in.evalExpr(e.Expr)
	if state != nil {
		return lang.Value{}, state
	}
	switch e.Op {
	case parser.OpNegative:
		if val.Type != lang.TypeNumber {
			return lang.Value{}, lang.RuntimeError(e.Line, "- can only be applied to numbers")
		}
		return lang.NumberValue(-val.Num()), nil
	case parser.OpInverse:
		if val.Type != lang.TypeBool {
			return lang.Value{}, lang.RuntimeError(e.Line, "! can only be applied to booleans")
		}
		return lang.BoolValue(!val.Bool()), nil
	}
	return lang.Value{}, lang.RuntimeError(e.Line, "unsupported unary operator")
}

func (in *Interp) evalBinary(e *parser.BinaryExpr) (lang.Value, *lang.State) {
	left, state := in.evalExpr(e.Left)
	if state != nil {
		return lang.Value{}, state
	}
	right, state := in.evalExpr(e.Right)
	if state != nil {
		return lang.Value{}, state
	}

	switch e.Op {
	case parser.OpEq:
		return lang.BoolValue(left.Equal(right)), nil
	case parser.OpNeq:
		return lang.BoolValue(!left.Equal(right)), nil
	case parser.OpGt, parser.OpGtEq, parser.OpLt, parser.OpLtEq:
		if left.Type != lang.TypeNumber || right.Type != lang.TypeNumber {
			return lang.Value{}, lang.RuntimeError(e.Line, "can only compare numbers")
		}
		return lang.BoolValue(compareNumbers(e.Op, left.Num(), right.Num())), nil
	case parser.OpAdd:
		if left.Type == lang.TypeNumber && right.Type == lang.TypeNumber {
			return lang.NumberValue(left.Num() + right.Num()), nil
		}
		if left.Type == lang.TypeString && right.Type == lang.TypeString {
			return lang.StringValue(left.Str() + right.Str()), nil
		}
		return lang.Value{}, lang.RuntimeError(e.Line, "can only add numbers or strings")
	case parser.OpSub:
		if left.Type != lang.TypeNumber || right.Type != lang.TypeNumber {
			return lang.Value{}, lang.RuntimeError(e.Line, "can only subtract numbers")
		}
		return lang.NumberValue(left.Num() - right.Num()), nil
	case parser.OpDiv:
		if left.Type != lang.TypeNumber || right.Type != lang.TypeNumber {
			return lang.Value{}, lang.RuntimeError(e.Line, "can only divide numbers")
		}
		// Division by zero follows IEEE-754 and produces Inf or NaN.
		return lang.NumberValue(left.Num() / right.Num()), nil
	case parser.OpMult:
		if left.Type != lang.TypeNumber || right.Type != lang.TypeNumber {
			return lang.Value{}, lang.RuntimeError(e.Line, "can only multiply numbers")
		}
		return lang.NumberValue(left.Num() * right.Num()), nil
	}
	return lang.Value{}, lang.RuntimeError(e.Line, "unsupported binary operator")
}

func compareNumbers(op parser.BinOp, a, b float32) bool {
	switch op {
	case parser.OpGt:
		return a > b
	case parser.OpGtEq:
		return a >= b
	case parser.OpLt:
		return a < b
	default:
		return a <= b
	}
}
