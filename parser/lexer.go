package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sergev/lox/lang"
)

// Scan converts source text into a token sequence. startLine seeds the
// line counter so a REPL can number diagnostics by session line; file
// input starts at line 0. The returned state is nil when the scan was
// clean.
func Scan(src string, startLine int) ([]Token, *lang.State) {
	lx := newLexer(src, startLine)
	return lx.scan()
}

type lexer struct {
	src    string
	pos    int
	line   int
	tokens []Token
	state  *lang.State
}

func newLexer(src string, startLine int) *lexer {
	return &lexer{
		src:   src,
		line:  startLine,
		state: lang.NewState(lang.PhaseScan),
	}
}

// scan consumes the whole input in a single forward pass. The token
// stream always ends with an EOF token, even when errors were recorded.
func (lx *lexer) scan() ([]Token, *lang.State) {
	for {
		r, ok := lx.read()
		if !ok {
			break
		}
		lx.scanToken(r)
	}
	lx.emit(Token{Type: tokenEOF, Line: lx.line})
	return lx.tokens, lx.state.OrNil()
}

func (lx *lexer) scanToken(r rune) {
	switch r {
	case '(':
		lx.emit(Token{Type: tokenLParen, Line: lx.line})
	case ')':
		lx.emit(Token{Type: tokenRParen, Line: lx.line})
	case '{':
		lx.emit(Token{Type: tokenLBrace, Line: lx.line})
	case '}':
		lx.emit(Token{Type: tokenRBrace, Line: lx.line})
	case ',':
		lx.emit(Token{Type: tokenComma, Line: lx.line})
	case '.':
		lx.emit(Token{Type: tokenDot, Line: lx.line})
	case '-':
		lx.emit(Token{Type: tokenMinus, Line: lx.line})
	case '+':
		lx.emit(Token{Type: tokenPlus, Line: lx.line})
	case ';':
		lx.emit(Token{Type: tokenSemicolon, Line: lx.line})
	case '*':
		lx.emit(Token{Type: tokenStar, Line: lx.line})
	case '!':
		lx.emit(lx.doubleCharToken('=', tokenBangEqual, tokenBang))
	case '=':
		lx.emit(lx.doubleCharToken('=', tokenEqualEqual, tokenAssign))
	case '>':
		lx.emit(lx.doubleCharToken('=', tokenGreaterEqual, tokenGreater))
	case '<':
		lx.emit(lx.doubleCharToken('=', tokenLessEqual, tokenLess))
	case '/':
		if lx.match('/') {
			lx.skipLine()
		} else {
			lx.emit(Token{Type: tokenSlash, Line: lx.line})
		}
	case '"':
		lx.scanString()
	case ' ', '\r', '\t':
	case '\n':
		lx.line++
	default:
		switch {
		case isDigit(r):
			lx.scanNumber(r)
		case isWordChar(r):
			lx.scanWord(r)
		default:
			lx.state.Add(lx.line, "unexpected character: %c", r)
		}
	}
}

// doubleCharToken implements the shared rule for operators that may be
// followed by a second character: consume it and produce ifMatch, or
// produce ifSolo.
func (lx *lexer) doubleCharToken(next rune, ifMatch, ifSolo TokenType) Token {
	if lx.match(next) {
		return Token{Type: ifMatch, Line: lx.line}
	}
	return Token{Type: ifSolo, Line: lx.line}
}

func (lx *lexer) read() (rune, bool) {
	if lx.pos >= len(lx.src) {
		return 0, false
	}
	r, w := utf8.DecodeRuneInString(lx.src[lx.pos:])
	lx.pos += w
	return r, true
}

func (lx *lexer) peek() (rune, bool) {
	if lx.pos >= len(lx.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(lx.src[lx.pos:])
	return r, true
}

func (lx *lexer) match(expected rune) bool {
	r, ok := lx.peek()
	if !ok || r != expected {
		return false
	}
	lx.read()
	return true
}

// skipLine discards a line comment. The newline itself is left for the
// main loop so the line counter stays in one place.
func (lx *lexer) skipLine() {
	for {
		r, ok := lx.peek()
		if !ok || r == '\n' {
			return
		}
		lx.read()
	}
}

func (lx *lexer) scanString() {
	start := lx.line
	var builder strings.Builder
	for {
		r, ok := lx.read()
		if !ok {
			lx.state.Add(start, "unterminated string literal")
			return
		}
		if r == '"' {
			break
		}
		if r == '\n' {
			lx.line++
		}
		builder.WriteRune(r)
	}
	lx.emit(Token{Type: tokenString, Lexeme: builder.String(), Line: start})
}

func (lx *lexer) scanNumber(initial rune) {
	var builder strings.Builder
	builder.WriteRune(initial)
	for {
		r, ok := lx.peek()
		if !ok || (!isDigit(r) && r != '.') {
			break
		}
		lx.read()
		builder.WriteRune(r)
	}
	word := builder.String()
	n, err := strconv.ParseFloat(word, 32)
	if err != nil {
		lx.state.Add(lx.line, "invalid number literal: %s", word)
		return
	}
	lx.emit(Token{Type: tokenNumber, Lexeme: word, Num: float32(n), Line: lx.line})
}

func (lx *lexer) scanWord(initial rune) {
	var builder strings.Builder
	builder.WriteRune(initial)
	for {
		r, ok := lx.peek()
		if !ok || !isWordChar(r) {
			break
		}
		lx.read()
		builder.WriteRune(r)
	}
	word := builder.String()
	if keyword, ok := keywords[word]; ok {
		lx.emit(Token{Type: keyword, Line: lx.line})
		return
	}
	lx.emit(Token{Type: tokenIdentifier, Lexeme: word, Line: lx.line})
}

func (lx *lexer) emit(tok Token) {
	lx.tokens = append(lx.tokens, tok)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isWordChar reports whether r can appear in an identifier or keyword.
// Words are ASCII letters and underscores only; digits are not part of
// identifiers.
func isWordChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}
