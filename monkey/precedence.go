package monkey

type Precedence int

const (
	PrecedenceLowest Precedence = iota
	PrecedenceEquals
	PrecedenceLessGreater
	PrecedenceSum
	PrecedenceProduct
	PrecedencePrefix
	PrecedenceCall
)

var infixPrecedences = map[TokenKind]Precedence{
	TokenEqual:    PrecedenceEquals,
	TokenNotEqual: PrecedenceEquals,
	TokenLess:     PrecedenceLessGreater,
	TokenGreater:  PrecedenceLessGreater,
	TokenPlus:     PrecedenceSum,
	TokenMinus:    PrecedenceSum,
	TokenAsterisk: PrecedenceProduct,
	TokenSlash:    PrecedenceProduct,
	TokenLParen:   PrecedenceCall,
}

// PrecedenceOf reports PrecedenceLowest for tokens that are not infix operators.
func PrecedenceOf(kind TokenKind) Precedence {
	return infixPrecedences[kind]
}
