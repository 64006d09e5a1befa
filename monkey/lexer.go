package monkey

import (
	"iter"
	"unicode/utf8"
)

// eof marks an exhausted input. No decoded character equals it.
const eof rune = -1

type Lexer struct {
	input string
	pos   int // offset of ch
	next  int // offset after ch
	ch    rune
}

var _ TokenSource = new(Lexer)

func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
	}
	l.readChar()
	return l
}

var singleCharTokens = map[rune]TokenKind{
	'=': TokenAssign,
	'+': TokenPlus,
	'-': TokenMinus,
	'!': TokenBang,
	'*': TokenAsterisk,
	'/': TokenSlash,
	'<': TokenLess,
	'>': TokenGreater,
	',': TokenComma,
	';': TokenSemicolon,
	'(': TokenLParen,
	')': TokenRParen,
	'{': TokenLBrace,
	'}': TokenRBrace,
}

func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	switch {
	case l.ch == eof:
		return NewToken(TokenEOF, "")
	case isLetter(l.ch):
		return NewWordToken(l.readWhile(isLetter))
	case isDigit(l.ch):
		return NewToken(TokenInt, l.readWhile(isDigit))
	}

	if l.peekChar() == '=' {
		switch l.ch {
		case '=':
			return l.readToken(TokenEqual, 2)
		case '!':
			return l.readToken(TokenNotEqual, 2)
		}
	}

	kind, ok := singleCharTokens[l.ch]
	if !ok {
		kind = TokenIllegal
	}
	return l.readToken(kind, 1)
}

// All yields the remaining tokens, ending with exactly one EOF token.
func (l *Lexer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			token := l.NextToken()
			if !yield(token) {
				return
			}
			if token.Kind == TokenEOF {
				return
			}
		}
	}
}

func (l *Lexer) readChar() {
	l.pos = l.next
	if l.pos >= len(l.input) {
		l.ch = eof
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.ch = r
	l.next = l.pos + size
}

func (l *Lexer) peekChar() rune {
	if l.next >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.next:])
	return r
}

func (l *Lexer) readToken(kind TokenKind, chars int) Token {
	start := l.pos
	for range chars {
		l.readChar()
	}
	return NewToken(kind, l.input[start:l.pos])
}

func (l *Lexer) readWhile(pred func(rune) bool) string {
	start := l.pos
	for pred(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r == '_'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
