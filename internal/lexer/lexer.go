package lexer

import "pyrite/internal/token"

// Lexer holds the state while tokenizing input
// It reads character by character, like a tape reader
type Lexer struct {
	input        string // The source code
	position     int    // Current position in input (points to current char)
	readPosition int    // Current reading position (after current char)
	ch           byte   // Current character under examination
	line         int    // 1-based line of the current character
	column       int    // 1-based column of the current character
}

// New creates a new Lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar() // Initialize with first character
	return l
}

// readChar advances to the next character
// Think of it like moving the tape forward one position
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	// If we've reached the end, set ch to 0 (NUL byte, signifies EOF)
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		// Otherwise read the next character
		l.ch = l.input[l.readPosition]
	}
	// Move position forward
	l.position = l.readPosition
	l.readPosition += 1
	l.column++
}

// peekChar looks at the next character without consuming it
// Used for two-character tokens like == and ->
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// NextToken returns the next token from input
// This is the heart of the lexer - it recognizes patterns
func (l *Lexer) NextToken() token.Token {
	l.skipIgnored() // Whitespace and comments separate tokens, nothing more

	line, column := l.line, l.column

	var tok token.Token

	// Check current character and decide what token to make
	switch l.ch {
	case '=':
		// Could be =, == or =>
		switch l.peekChar() {
		case '=':
			tok = l.twoCharToken(token.EQ)
		case '>':
			tok = l.twoCharToken(token.FATARROW)
		default:
			tok = newToken(token.ASSIGN, l.ch)
		}
	case '+':
		tok = newToken(token.PLUS, l.ch)
	case '-':
		// Could be - or ->
		if l.peekChar() == '>' {
			tok = l.twoCharToken(token.ARROW)
		} else {
			tok = newToken(token.MINUS, l.ch)
		}
	case '!':
		// Could be ! or !=
		if l.peekChar() == '=' {
			tok = l.twoCharToken(token.NOT_EQ)
		} else {
			tok = newToken(token.BANG, l.ch)
		}
	case '/':
		tok = newToken(token.SLASH, l.ch)
	case '*':
		tok = newToken(token.ASTERISK, l.ch)
	case '%':
		tok = newToken(token.PERCENT, l.ch)
	case '&':
		// Could be & (reference) or &&
		if l.peekChar() == '&' {
			tok = l.twoCharToken(token.AND)
		} else {
			tok = newToken(token.AMP, l.ch)
		}
	case '|':
		if l.peekChar() == '|' {
			tok = l.twoCharToken(token.OR)
		} else {
			tok = newToken(token.ILLEGAL, l.ch)
		}
	case '<':
		tok = newToken(token.LT, l.ch)
	case '>':
		tok = newToken(token.GT, l.ch)
	case '?':
		tok = newToken(token.QUESTION, l.ch)
	case ';':
		tok = newToken(token.SEMICOLON, l.ch)
	case ':':
		tok = newToken(token.COLON, l.ch)
	case ',':
		tok = newToken(token.COMMA, l.ch)
	case '.':
		// Could be . (member access) or .. (slice range)
		if l.peekChar() == '.' {
			tok = l.twoCharToken(token.DOTDOT)
		} else {
			tok = newToken(token.DOT, l.ch)
		}
	case '(':
		tok = newToken(token.LPAREN, l.ch)
	case ')':
		tok = newToken(token.RPAREN, l.ch)
	case '{':
		tok = newToken(token.LBRACE, l.ch)
	case '}':
		tok = newToken(token.RBRACE, l.ch)
	case '[':
		tok = newToken(token.LBRACKET, l.ch)
	case ']':
		tok = newToken(token.RBRACKET, l.ch)
	case '"':
		tok.Type = token.STRING
		tok.Literal = l.readString()
		tok.Line, tok.Column = line, column
		return tok // Already advanced past closing quote
	case '\'':
		tok.Type = token.CHAR
		tok.Literal = l.readCharLiteral()
		tok.Line, tok.Column = line, column
		return tok
	case 0:
		// NUL byte means end of input
		tok.Literal = ""
		tok.Type = token.EOF
	default:
		// Not a single-char token, check if letter or digit
		if isLetter(l.ch) {
			// Read the full identifier/keyword
			tok.Literal = l.readIdentifier()
			// Check if it's a keyword (let, fn, match) or user-defined (x, foo)
			tok.Type = token.LookupIdent(tok.Literal)
			tok.Line, tok.Column = line, column
			return tok // Already advanced past identifier
		} else if isDigit(l.ch) {
			tok.Type, tok.Literal = l.readNumber()
			tok.Line, tok.Column = line, column
			return tok // Already advanced past number
		} else {
			// Unknown character
			tok = newToken(token.ILLEGAL, l.ch)
		}
	}

	tok.Line, tok.Column = line, column
	l.readChar() // Advance to next character for next call
	return tok
}

// twoCharToken consumes the current and next character as one token.
// The caller has already peeked; after this the lexer still sits on the
// second character, matching the single-char cases.
func (l *Lexer) twoCharToken(tokenType token.TokenType) token.Token {
	ch := l.ch
	l.readChar()
	return token.Token{Type: tokenType, Literal: string(ch) + string(l.ch)}
}

// newToken is a helper to create single-character tokens
func newToken(tokenType token.TokenType, ch byte) token.Token {
	return token.Token{Type: tokenType, Literal: string(ch)}
}
