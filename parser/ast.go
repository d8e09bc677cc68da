package parser

// BinOp identifies a binary operator.
type BinOp int

const (
	OpEq BinOp = iota
	OpNeq
	OpGt
	OpGtEq
	OpLt
	OpLtEq
	OpAdd
	OpSub
	OpDiv
	OpMult
)

func (op BinOp) String() string {
	switch op {
	case OpEq:
		return "=="
	case OpNeq:
		return "!="
	case OpGt:
		return ">"
	case OpGtEq:
		return ">="
	case OpLt:
		return "<"
	case OpLtEq:
		return "<="
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpDiv:
		return "/"
	case OpMult:
		return "*"
	default:
		return "unknown"
	}
}

// UnaryOp identifies a prefix operator.
type UnaryOp int

const (
	OpNegative UnaryOp = iota
	OpInverse
)

func (op UnaryOp) String() string {
	switch op {
	case OpNegative:
		return "-"
	case OpInverse:
		return "!"
	default:
		return "unknown"
	}
}

// Node represents any AST node. Pos returns the line of the node's
// leftmost token.
type Node interface {
	Pos() int
}

// Program is the root of a parsed source text. Declarations execute in
// order and are never reordered or mutated after parsing.
type Program struct {
	Decls []Decl
}

// Decl represents a top-level declaration.
type Decl interface {
	Node
	declNode()
}

// Stmt represents a statement.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression.
type Expr interface {
	Node
	exprNode()
}

// IdentifierExpr refers to a variable name.
type IdentifierExpr struct {
	Name string
	Line int
}

func (e *IdentifierExpr) Pos() int { return e.Line }
func (*IdentifierExpr) exprNode()  {}

// NumberExpr is a numeric literal.
type NumberExpr struct {
	Value float32
	Line  int
}

func (e *NumberExpr) Pos() int { return e.Line }
func (*NumberExpr) exprNode()  {}

// StringExpr is a double-quoted string literal.
type StringExpr struct {
	Value string
	Line  int
}

func (e *StringExpr) Pos() int { return e.Line }
func (*StringExpr) exprNode()  {}

// BoolExpr is a boolean literal.
type BoolExpr struct {
	Value bool
	Line  int
}

func (e *BoolExpr) Pos() int { return e.Line }
func (*BoolExpr) exprNode()  {}

// NilExpr is the nil literal.
type NilExpr struct {
	Line int
}

func (e *NilExpr) Pos() int { return e.Line }
func (*NilExpr) exprNode()  {}

// UnaryExpr represents prefix operator application.
type UnaryExpr struct {
	Op   UnaryOp
	Expr Expr
	Line int
}

func (e *UnaryExpr) Pos() int { return e.Line }
func (*UnaryExpr) exprNode()  {}

// BinaryExpr represents infix operator application.
type BinaryExpr struct {
	Op          BinOp
	Left, Right Expr
	Line        int
}

func (e *BinaryExpr) Pos() int { return e.Line }
func (*BinaryExpr) exprNode()  {}

// VarDecl binds a name to the value of its initialiser, overwriting any
// previous binding.
type VarDecl struct {
	Name string
	Init Expr
	Line int
}

func (d *VarDecl) Pos() int { return d.Line }
func (*VarDecl) declNode()  {}
func (*VarDecl) stmtNode()  {}

// PrintStmt evaluates an expression and writes its textual form.
type PrintStmt struct {
	Expr Expr
	Line int
}

func (s *PrintStmt) Pos() int { return s.Line }
func (*PrintStmt) declNode()  {}
func (*PrintStmt) stmtNode()  {}

// ExprStmt evaluates an expression for side-effects and discards the
// result.
type ExprStmt struct {
	Expr Expr
	Line int
}

func (s *ExprStmt) Pos() int { return s.Line }
func (*ExprStmt) declNode()  {}
func (*ExprStmt) stmtNode()  {}
