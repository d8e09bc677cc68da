package parser

import (
	"strconv"
	"strings"
)

const renderIndent = 4

// Render produces the indented debug form of a declaration: one line
// per operator or literal, with operand blocks indented beneath their
// operator. The result ends with a newline.
func Render(d Decl) string {
	var sb strings.Builder
	renderDecl(&sb, d)
	return sb.String()
}

// RenderExpr renders a bare expression tree in the same layout.
func RenderExpr(e Expr) string {
	var sb strings.Builder
	renderExpr(&sb, e, 0)
	return sb.String()
}

func renderDecl(sb *strings.Builder, d Decl) {
	switch n := d.(type) {
	case *VarDecl:
		writeLine(sb, 0, "var "+n.Name+" =")
		renderExpr(sb, n.Init, renderIndent)
	case *PrintStmt:
		writeLine(sb, 0, "print")
		renderExpr(sb, n.Expr, renderIndent)
	case *ExprStmt:
		renderExpr(sb, n.Expr, 0)
	}
}

func renderExpr(sb *strings.Builder, e Expr, indent int) {
	switch n := e.(type) {
	case *BinaryExpr:
		renderExpr(sb, n.Left, indent+renderIndent)
		writeLine(sb, indent, n.Op.String())
		renderExpr(sb, n.Right, indent+renderIndent)
	case *UnaryExpr:
		writeLine(sb, indent, n.Op.String())
		renderExpr(sb, n.Expr, indent+renderIndent)
	case *IdentifierExpr:
		writeLine(sb, indent, n.Name)
	case *NumberExpr:
		writeLine(sb, indent, strconv.FormatFloat(float64(n.Value), 'g', -1, 32))
	case *StringExpr:
		writeLine(sb, indent, n.Value)
	case *BoolExpr:
		if n.Value {
			writeLine(sb, indent, "true")
		} else {
			writeLine(sb, indent, "false")
		}
	case *NilExpr:
		writeLine(sb, indent, "nil")
	}
}

func writeLine(sb *strings.Builder, indent int, text string) {
	sb.WriteString(strings.Repeat(" ", indent))
	sb.WriteString(text)
	sb.WriteByte('\n')
}
