package parser

import "testing"

func renderSource(t *testing.T, src string) string {
	t.Helper()
	prog := parseClean(t, src)
	if len(prog.Decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(prog.Decls))
	}
	return Render(prog.Decls[0])
}

func TestRenderOperatorNesting(t *testing.T) {
	got := renderSource(t, "1 + 2 * 3;")
	want := `    1
+
        2
    *
        3
`
	if got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenderGroupingIsTransparent(t *testing.T) {
	got := renderSource(t, "(1 + 2) * 3;")
	want := `        1
    +
        2
*
    3
`
	if got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenderVarDecl(t *testing.T) {
	got := renderSource(t, "var x = 1 + 2;")
	want := `var x =
        1
    +
        2
`
	if got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenderPrintStmt(t *testing.T) {
	got := renderSource(t, "print \"hi\";")
	want := `print
    hi
`
	if got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenderUnary(t *testing.T) {
	got := renderSource(t, "!true;")
	want := `!
    true
`
	if got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenderOperatorSymbols(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1 == 2;", "=="},
		{"1 != 2;", "!="},
		{"1 > 2;", ">"},
		{"1 >= 2;", ">="},
		{"1 < 2;", "<"},
		{"1 <= 2;", "<="},
		{"1 + 2;", "+"},
		{"1 - 2;", "-"},
		{"1 / 2;", "/"},
		{"1 * 2;", "*"},
	}

	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			got := renderSource(t, tc.src)
			want := "    1\n" + tc.want + "\n    2\n"
			if got != want {
				t.Fatalf("expected %q, got %q", want, got)
			}
		})
	}
}

func TestRenderExprLiterals(t *testing.T) {
	cases := []struct {
		name string
		expr Expr
		want string
	}{
		{"number", &NumberExpr{Value: 2.5}, "2.5\n"},
		{"whole number", &NumberExpr{Value: 7}, "7\n"},
		{"string", &StringExpr{Value: "hi"}, "hi\n"},
		{"identifier", &IdentifierExpr{Name: "x"}, "x\n"},
		{"false", &BoolExpr{Value: false}, "false\n"},
		{"nil", &NilExpr{}, "nil\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RenderExpr(tc.expr); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
