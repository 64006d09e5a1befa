package monkey

import "fmt"

type TokenKind uint8

const (
	TokenIllegal TokenKind = iota
	TokenEOF

	TokenIdent
	TokenInt
	TokenTrue
	TokenFalse

	TokenAssign
	TokenPlus
	TokenMinus
	TokenBang
	TokenAsterisk
	TokenSlash
	TokenLess
	TokenGreater
	TokenEqual
	TokenNotEqual

	TokenComma
	TokenSemicolon
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace

	TokenLet
	TokenReturn
	TokenIf
	TokenElse
	TokenFunction

	numTokenKinds
)

var tokenKindNames = [numTokenKinds]string{
	TokenIllegal:   "Illegal",
	TokenEOF:       "EOF",
	TokenIdent:     "Ident",
	TokenInt:       "Int",
	TokenTrue:      "True",
	TokenFalse:     "False",
	TokenAssign:    "Assign",
	TokenPlus:      "Plus",
	TokenMinus:     "Minus",
	TokenBang:      "Bang",
	TokenAsterisk:  "Asterisk",
	TokenSlash:     "Slash",
	TokenLess:      "Less",
	TokenGreater:   "Greater",
	TokenEqual:     "Equal",
	TokenNotEqual:  "NotEqual",
	TokenComma:     "Comma",
	TokenSemicolon: "Semicolon",
	TokenLParen:    "LParen",
	TokenRParen:    "RParen",
	TokenLBrace:    "LBrace",
	TokenRBrace:    "RBrace",
	TokenLet:       "Let",
	TokenReturn:    "Return",
	TokenIf:        "If",
	TokenElse:      "Else",
	TokenFunction:  "Function",
}

func (k TokenKind) String() string {
	if k < numTokenKinds {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(k))
}
