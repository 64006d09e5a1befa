package monkey

import "fmt"

// Token is compared by value: two tokens are equal when kind and text match.
type Token struct {
	Kind TokenKind
	Text string
}

func NewToken(kind TokenKind, text string) Token {
	return Token{
		Kind: kind,
		Text: text,
	}
}

var keywords = map[string]TokenKind{
	"let":    TokenLet,
	"return": TokenReturn,
	"if":     TokenIf,
	"else":   TokenElse,
	"fn":     TokenFunction,
	"true":   TokenTrue,
	"false":  TokenFalse,
}

// NewWordToken classifies a scanned word as keyword or identifier.
func NewWordToken(text string) Token {
	if kind, ok := keywords[text]; ok {
		return NewToken(kind, text)
	}
	return NewToken(TokenIdent, text)
}

func (t Token) String() string {
	if t.Kind == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Text)
}
