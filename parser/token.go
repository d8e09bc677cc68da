package parser

// TokenType enumerates lexical categories recognised by the scanner.
type TokenType int

const (
	tokenEOF TokenType = iota

	tokenIdentifier
	tokenNumber
	tokenString

	// Keywords
	tokenAnd
	tokenClass
	tokenElse
	tokenFalse
	tokenFun
	tokenFor
	tokenIf
	tokenNil
	tokenOr
	tokenPrint
	tokenReturn
	tokenSuper
	tokenThis
	tokenTrue
	tokenVar
	tokenWhile

	// Operators
	tokenAssign       // =
	tokenEqualEqual   // ==
	tokenBang         // !
	tokenBangEqual    // !=
	tokenLess         // <
	tokenLessEqual    // <=
	tokenGreater      // >
	tokenGreaterEqual // >=
	tokenPlus         // +
	tokenMinus        // -
	tokenStar         // *
	tokenSlash        // /

	// Punctuation
	tokenComma     // ,
	tokenDot       // .
	tokenSemicolon // ;
	tokenLParen    // (
	tokenRParen    // )
	tokenLBrace    // {
	tokenRBrace    // }
)

func (tt TokenType) String() string {
	switch tt {
	case tokenEOF:
		return "EOF"
	case tokenIdentifier:
		return "identifier"
	case tokenNumber:
		return "number"
	case tokenString:
		return "string"
	case tokenAnd:
		return "and"
	case tokenClass:
		return "class"
	case tokenElse:
		return "else"
	case tokenFalse:
		return "false"
	case tokenFun:
		return "fun"
	case tokenFor:
		return "for"
	case tokenIf:
		return "if"
	case tokenNil:
		return "nil"
	case tokenOr:
		return "or"
	case tokenPrint:
		return "print"
	case tokenReturn:
		return "return"
	case tokenSuper:
		return "super"
	case tokenThis:
		return "this"
	case tokenTrue:
		return "true"
	case tokenVar:
		return "var"
	case tokenWhile:
		return "while"
	case tokenAssign:
		return "="
	case tokenEqualEqual:
		return "=="
	case tokenBang:
		return "!"
	case tokenBangEqual:
		return "!="
	case tokenLess:
		return "<"
	case tokenLessEqual:
		return "<="
	case tokenGreater:
		return ">"
	case tokenGreaterEqual:
		return ">="
	case tokenPlus:
		return "+"
	case tokenMinus:
		return "-"
	case tokenStar:
		return "*"
	case tokenSlash:
		return "/"
	case tokenComma:
		return ","
	case tokenDot:
		return "."
	case tokenSemicolon:
		return ";"
	case tokenLParen:
		return "("
	case tokenRParen:
		return ")"
	case tokenLBrace:
		return "{"
	case tokenRBrace:
		return "}"
	default:
		return "unknown"
	}
}

// keywords maps reserved words to their token types.
var keywords = map[string]TokenType{
	"and":    tokenAnd,
	"class":  tokenClass,
	"else":   tokenElse,
	"false":  tokenFalse,
	"fun":    tokenFun,
	"for":    tokenFor,
	"if":     tokenIf,
	"nil":    tokenNil,
	"or":     tokenOr,
	"print":  tokenPrint,
	"return": tokenReturn,
	"super":  tokenSuper,
	"this":   tokenThis,
	"true":   tokenTrue,
	"var":    tokenVar,
	"while":  tokenWhile,
}

// Token is a single lexical unit produced by the scanner. Lexeme carries
// the identifier name, the string contents, or a number's raw text;
// tokens with a fixed spelling leave it empty. Num carries the parsed
// value of a number token.
type Token struct {
	Type   TokenType
	Lexeme string
	Num    float32
	Line   int
}

func (t Token) String() string {
	if t.Lexeme != "" {
		return t.Lexeme
	}
	return t.Type.String()
}
