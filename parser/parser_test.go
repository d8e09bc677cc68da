package parser

import (
	"testing"
)

func parseClean(t *testing.T, src string) *Program {
	t.Helper()
	prog, state := ParseString(src, 0)
	if state != nil {
		t.Fatalf("unexpected errors: %v", state)
	}
	return prog
}

func soleExpr(t *testing.T, src string) Expr {
	t.Helper()
	prog := parseClean(t, src)
	if len(prog.Decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(prog.Decls))
	}
	stmt, ok := prog.Decls[0].(*ExprStmt)
	if !ok {
		t.Fatalf("expected ExprStmt, got %T", prog.Decls[0])
	}
	return stmt.Expr
}

func wantNumber(t *testing.T, e Expr, value float32) {
	t.Helper()
	num, ok := e.(*NumberExpr)
	if !ok {
		t.Fatalf("expected NumberExpr, got %T", e)
	}
	if num.Value != value {
		t.Fatalf("expected literal %v, got %v", value, num.Value)
	}
}

func wantBinary(t *testing.T, e Expr, op BinOp) *BinaryExpr {
	t.Helper()
	bin, ok := e.(*BinaryExpr)
	if !ok {
		t.Fatalf("expected BinaryExpr, got %T", e)
	}
	if bin.Op != op {
		t.Fatalf("expected operator %v, got %v", op, bin.Op)
	}
	return bin
}

func TestParseVarDecl(t *testing.T) {
	prog := parseClean(t, "var answer = 6 * 7;")
	if len(prog.Decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(prog.Decls))
	}
	decl, ok := prog.Decls[0].(*VarDecl)
	if !ok {
		t.Fatalf("expected VarDecl, got %T", prog.Decls[0])
	}
	if decl.Name != "answer" {
		t.Fatalf("expected name answer, got %s", decl.Name)
	}
	mul := wantBinary(t, decl.Init, OpMult)
	wantNumber(t, mul.Left, 6)
	wantNumber(t, mul.Right, 7)
}

func TestParsePrintStmt(t *testing.T) {
	prog := parseClean(t, "print \"hi\";")
	stmt, ok := prog.Decls[0].(*PrintStmt)
	if !ok {
		t.Fatalf("expected PrintStmt, got %T", prog.Decls[0])
	}
	str, ok := stmt.Expr.(*StringExpr)
	if !ok {
		t.Fatalf("expected StringExpr, got %T", stmt.Expr)
	}
	if str.Value != "hi" {
		t.Fatalf("expected string hi, got %q", str.Value)
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	outer := wantBinary(t, soleExpr(t, "1 - 2 - 3;"), OpSub)
	inner := wantBinary(t, outer.Left, OpSub)
	wantNumber(t, inner.Left, 1)
	wantNumber(t, inner.Right, 2)
	wantNumber(t, outer.Right, 3)
}

func TestParsePrecedence(t *testing.T) {
	outer := wantBinary(t, soleExpr(t, "1 + 2 * 3;"), OpAdd)
	wantNumber(t, outer.Left, 1)
	inner := wantBinary(t, outer.Right, OpMult)
	wantNumber(t, inner.Left, 2)
	wantNumber(t, inner.Right, 3)
}

func TestParseGrouping(t *testing.T) {
	outer := wantBinary(t, soleExpr(t, "(1 + 2) * 3;"), OpMult)
	inner := wantBinary(t, outer.Left, OpAdd)
	wantNumber(t, inner.Left, 1)
	wantNumber(t, inner.Right, 2)
	wantNumber(t, outer.Right, 3)
}

func TestParseComparisonBindsTighterThanEquality(t *testing.T) {
	outer := wantBinary(t, soleExpr(t, "1 < 2 == true;"), OpEq)
	inner := wantBinary(t, outer.Left, OpLt)
	wantNumber(t, inner.Left, 1)
	wantNumber(t, inner.Right, 2)
	if b, ok := outer.Right.(*BoolExpr); !ok || !b.Value {
		t.Fatalf("expected true literal, got %v", outer.Right)
	}
}

func TestParseUnaryChains(t *testing.T) {
	outer, ok := soleExpr(t, "!!false;").(*UnaryExpr)
	if !ok || outer.Op != OpInverse {
		t.Fatalf("expected outer inverse, got %v", outer)
	}
	inner, ok := outer.Expr.(*UnaryExpr)
	if !ok || inner.Op != OpInverse {
		t.Fatalf("expected inner inverse, got %v", outer.Expr)
	}
	if b, ok := inner.Expr.(*BoolExpr); !ok || b.Value {
		t.Fatalf("expected false literal, got %v", inner.Expr)
	}

	neg, ok := soleExpr(t, "-5;").(*UnaryExpr)
	if !ok || neg.Op != OpNegative {
		t.Fatalf("expected negation, got %v", neg)
	}
	wantNumber(t, neg.Expr, 5)
}

func TestParseLiteralExpressions(t *testing.T) {
	if _, ok := soleExpr(t, "nil;").(*NilExpr); !ok {
		t.Errorf("expected NilExpr for nil")
	}
	if b, ok := soleExpr(t, "false;").(*BoolExpr); !ok || b.Value {
		t.Errorf("expected false literal")
	}
	ident, ok := soleExpr(t, "x;").(*IdentifierExpr)
	if !ok || ident.Name != "x" {
		t.Errorf("expected identifier x, got %v", ident)
	}
	wantNumber(t, soleExpr(t, "1.5;"), 1.5)
}

func TestParseMultiErrorAccumulation(t *testing.T) {
	_, state := ParseString("var 1 = 2; print +;", 0)
	if state == nil {
		t.Fatalf("expected parse errors, got none")
	}
	if len(state.Errs()) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(state.Errs()), state)
	}
	want := "[0]: expected identifier, got 1\n[0]: expected expression, got +"
	if state.Error() != want {
		t.Fatalf("expected %q, got %q", want, state.Error())
	}
}

func TestParseRecoveryKeepsLaterDeclarations(t *testing.T) {
	tokens, state := Scan("var = 1; print 2;", 0)
	if state != nil {
		t.Fatalf("unexpected scan errors: %v", state)
	}
	prog, state := Parse(tokens)
	if state == nil || len(state.Errs()) != 1 {
		t.Fatalf("expected 1 parse error, got %v", state)
	}
	if len(prog.Decls) != 1 {
		t.Fatalf("expected recovery to keep 1 declaration, got %d", len(prog.Decls))
	}
	if _, ok := prog.Decls[0].(*PrintStmt); !ok {
		t.Fatalf("expected PrintStmt after recovery, got %T", prog.Decls[0])
	}
}

func TestParseErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"missing semicolon", "1 + 2", "[0]: expected ;, got EOF"},
		{"missing closing paren", "(1 + 2;", "[0]: expected ), got ;"},
		{"missing initializer", "var x;", "[0]: expected =, got ;"},
		{"operator without operand", "1 + ;", "[0]: expected expression, got ;"},
		{"keyword as variable name", "var print = 1;", "[0]: expected identifier, got print"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, state := ParseString(tc.src, 0)
			if state == nil {
				t.Fatalf("expected parse error, got none")
			}
			if state.Error() != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, state.Error())
			}
		})
	}
}

func TestParseNodeLines(t *testing.T) {
	prog := parseClean(t, "var x =\n1;\nprint\nx;\n1 +\n2;")
	if len(prog.Decls) != 3 {
		t.Fatalf("expected 3 declarations, got %d", len(prog.Decls))
	}
	if got := prog.Decls[0].Pos(); got != 0 {
		t.Errorf("expected var declaration on line 0, got %d", got)
	}
	if got := prog.Decls[1].Pos(); got != 2 {
		t.Errorf("expected print statement on line 2, got %d", got)
	}
	stmt := prog.Decls[2].(*ExprStmt)
	if stmt.Pos() != 4 {
		t.Errorf("expected expression statement on line 4, got %d", stmt.Pos())
	}
	if got := stmt.Expr.Pos(); got != 4 {
		t.Errorf("expected sum node on its leftmost line 4, got %d", got)
	}
}

func TestParseEmptyProgram(t *testing.T) {
	prog := parseClean(t, "")
	if len(prog.Decls) != 0 {
		t.Fatalf("expected empty program, got %d declarations", len(prog.Decls))
	}
}
