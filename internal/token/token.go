package token

// TokenType is a string alias for token types
// Using string makes debugging easier (we can print "PLUS" instead of a number)
type TokenType string

// Token struct holds the type, literal value and source position
// For example: Token{Type: INT, Literal: "5"} or Token{Type: PLUS, Literal: "+"}
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// Token constants - these are the vocabulary of our language
const (
	// Special
	ILLEGAL TokenType = "ILLEGAL" // Unknown/invalid character
	EOF     TokenType = "EOF"     // End of file, tells parser we're done

	// Identifiers and literals
	IDENT  TokenType = "IDENT"  // Variable names: x, y, foo
	INT    TokenType = "INT"    // Integers: 1, 42, 999
	FLOAT  TokenType = "FLOAT"  // Floating-point: 3.14
	STRING TokenType = "STRING" // Strings: "hello"
	CHAR   TokenType = "CHAR"   // Char literals: 'a'

	// Operators
	ASSIGN   TokenType = "="
	PLUS     TokenType = "+"
	MINUS    TokenType = "-"
	BANG     TokenType = "!"
	ASTERISK TokenType = "*"
	SLASH    TokenType = "/"
	PERCENT  TokenType = "%"
	AMP      TokenType = "&"
	LT       TokenType = "<"
	GT       TokenType = ">"
	EQ       TokenType = "=="
	NOT_EQ   TokenType = "!="
	AND      TokenType = "&&"
	OR       TokenType = "||"
	QUESTION TokenType = "?"
	ARROW    TokenType = "->"
	FATARROW TokenType = "=>"
	DOTDOT   TokenType = ".."

	// Delimiters
	COMMA     TokenType = ","
	SEMICOLON TokenType = ";"
	COLON     TokenType = ":"
	DOT       TokenType = "."
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"
	LBRACKET  TokenType = "["
	RBRACKET  TokenType = "]"

	// Keywords
	FUNCTION TokenType = "FUNCTION"
	LET      TokenType = "LET"
	VAR      TokenType = "VAR"
	STRUCT   TokenType = "STRUCT"
	TRUE     TokenType = "TRUE"
	FALSE    TokenType = "FALSE"
	IF       TokenType = "IF"
	ELIF     TokenType = "ELIF"
	ELSE     TokenType = "ELSE"
	WHILE    TokenType = "WHILE"
	FOR      TokenType = "FOR"
	IN       TokenType = "IN"
	MATCH    TokenType = "MATCH"
	WITH     TokenType = "WITH"
	DEFER    TokenType = "DEFER"
	BREAK    TokenType = "BREAK"
	CONTINUE TokenType = "CONTINUE"
	RETURN   TokenType = "RETURN"
	NONE     TokenType = "NONE"
)

// keywords maps string identifiers to their token type
// This lets us distinguish between "let" (keyword) and "x" (identifier)
var keywords = map[string]TokenType{
	"fn":       FUNCTION,
	"let":      LET,
	"var":      VAR,
	"struct":   STRUCT,
	"true":     TRUE,
	"false":    FALSE,
	"if":       IF,
	"elif":     ELIF,
	"else":     ELSE,
	"while":    WHILE,
	"for":      FOR,
	"in":       IN,
	"match":    MATCH,
	"with":     WITH,
	"defer":    DEFER,
	"break":    BREAK,
	"continue": CONTINUE,
	"return":   RETURN,
	"none":     NONE,
}

// LookupIdent checks if an identifier is a keyword
// If "let" is in keywords map, returns LET token type
// Otherwise returns IDENT (it's a variable name)
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
