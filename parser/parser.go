package parser

import (
	"errors"

	"github.com/sergev/lox/lang"
)

// Parse consumes a token sequence and builds a Program. The returned
// state is nil only when zero errors were recorded; a program built
// alongside errors must not be executed.
func Parse(tokens []Token) (*Program, *lang.State) {
	p := &parser{
		tokens: tokens,
		state:  lang.NewState(lang.PhaseParse),
	}
	return p.parseProgram(), p.state.OrNil()
}

// errSync unwinds a failed declaration to the recovery point. The
// diagnostic itself is recorded where the failure was detected.
var errSync = errors.New("sync")

type parser struct {
	tokens []Token
	pos    int
	state  *lang.State
}

func (p *parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: tokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *parser) expect(tt TokenType) (Token, error) {
	if p.peek().Type != tt {
		return Token{}, p.errorf("expected %s, got %s", tt, p.peek())
	}
	return p.advance(), nil
}

func (p *parser) errorf(format string, args ...interface{}) error {
	p.state.Add(p.peek().Line, format, args...)
	return errSync
}

// synchronize discards tokens until a statement boundary: a semicolon
// (consumed) or EOF (left in place).
func (p *parser) synchronize() {
	for {
		switch p.peek().Type {
		case tokenSemicolon:
			p.advance()
			return
		case tokenEOF:
			return
		}
		p.advance()
	}
}

func (p *parser) parseProgram() *Program {
	var decls []Decl
	for p.peek().Type != tokenEOF {
		decl, err := p.parseDeclaration()
		if err != nil {
			p.synchronize()
			continue
		}
		decls = append(decls, decl)
	}
	return &Program{Decls: decls}
}

func (p *parser) parseDeclaration() (Decl, error) {
	switch p.peek().Type {
	case tokenVar:
		return p.parseVarDecl()
	case tokenPrint:
		return p.parsePrintStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *parser) parseVarDecl() (Decl, error) {
	varTok := p.advance()
	nameTok, err := p.parseIdentifierName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenAssign); err != nil {
		return nil, err
	}
	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenSemicolon); err != nil {
		return nil, err
	}
	return &VarDecl{
		Name: nameTok.Lexeme,
		Init: init,
		Line: varTok.Line,
	}, nil
}

// parseIdentifierName accepts only an identifier token. Variable names
// are not expressions, so this check is separate from parsePrimary.
func (p *parser) parseIdentifierName() (Token, error) {
	if p.peek().Type != tokenIdentifier {
		return Token{}, p.errorf("expected identifier, got %s", p.peek())
	}
	return p.advance(), nil
}

func (p *parser) parsePrintStmt() (Decl, error) {
	printTok := p.advance()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenSemicolon); err != nil {
		return nil, err
	}
	return &PrintStmt{
		Expr: expr,
		Line: printTok.Line,
	}, nil
}

func (p *parser) parseExprStmt() (Decl, error) {
	line := p.peek().Line
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenSemicolon); err != nil {
		return nil, err
	}
	return &ExprStmt{
		Expr: expr,
		Line: line,
	}, nil
}

func (p *parser) parseExpression() (Expr, error) {
	return p.parseEquality()
}

func (p *parser) parseEquality() (Expr, error) {
	line := p.peek().Line
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == tokenEqualEqual || p.peek().Type == tokenBangEqual {
		opTok := p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Op:    binOp(opTok.Type),
			Left:  left,
			Right: right,
			Line:  line,
		}
	}
	return left, nil
}

func (p *parser) parseComparison() (Expr, error) {
	line := p.peek().Line
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == tokenGreater || p.peek().Type == tokenGreaterEqual ||
		p.peek().Type == tokenLess || p.peek().Type == tokenLessEqual {
		opTok := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Op:    binOp(opTok.Type),
			Left:  left,
			Right: right,
			Line:  line,
		}
	}
	return left, nil
}

func (p *parser) parseTerm() (Expr, error) {
	line := p.peek().Line
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == tokenPlus || p.peek().Type == tokenMinus {
		opTok := p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Op:    binOp(opTok.Type),
			Left:  left,
			Right: right,
			Line:  line,
		}
	}
	return left, nil
}

func (p *parser) parseFactor() (Expr, error) {
	line := p.peek().Line
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == tokenSlash || p.peek().Type == tokenStar {
		opTok := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Op:    binOp(opTok.Type),
			Left:  left,
			Right: right,
			Line:  line,
		}
	}
	return left, nil
}

func (p *parser) parseUnary() (Expr, error) {
	if p.peek().Type == tokenMinus || p.peek().Type == tokenBang {
		opTok := p.advance()
		expr, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{
			Op:   unaryOp(opTok.Type),
			Expr: expr,
			Line: opTok.Line,
		}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	tok := p.peek()
	switch tok.Type {
	case tokenIdentifier:
		p.advance()
		return &IdentifierExpr{Name: tok.Lexeme, Line: tok.Line}, nil
	case tokenNumber:
		p.advance()
		return &NumberExpr{Value: tok.Num, Line: tok.Line}, nil
	case tokenString:
		p.advance()
		return &StringExpr{Value: tok.Lexeme, Line: tok.Line}, nil
	case tokenTrue:
		p.advance()
		return &BoolExpr{Value: true, Line: tok.Line}, nil
	case tokenFalse:
		p.advance()
		return &BoolExpr{Value: false, Line: tok.Line}, nil
	case tokenNil:
		p.advance()
		return &NilExpr{Line: tok.Line}, nil
	case tokenLParen:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenRParen); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, p.errorf("expected expression, got %s", tok)
	}
}

func binOp(tt TokenType) BinOp {
	switch tt {
	case tokenEqualEqual:
		return OpEq
	case tokenBangEqual:
		return OpNeq
	case tokenGreater:
		return OpGt
	case tokenGreaterEqual:
		return OpGtEq
	case tokenLess:
		return OpLt
	case tokenLessEqual:
		return OpLtEq
	case tokenPlus:
		return OpAdd
	case tokenMinus:
		return OpSub
	case tokenSlash:
		return OpDiv
	default:
		return OpMult
	}
}

func unaryOp(tt TokenType) UnaryOp {
	if tt == tokenBang {
		return OpInverse
	}
	return OpNegative
}
