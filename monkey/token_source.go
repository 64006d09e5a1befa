package monkey

type TokenSource interface {
	NextToken() Token
}

// TokenSlice replays prepared tokens, then EOF forever.
type TokenSlice struct {
	tokens []Token
	idx    int
}

var _ TokenSource = new(TokenSlice)

func NewTokenSlice(tokens ...Token) *TokenSlice {
	return &TokenSlice{
		tokens: tokens,
	}
}

func (s *TokenSlice) NextToken() Token {
	if s.idx >= len(s.tokens) {
		return NewToken(TokenEOF, "")
	}
	token := s.tokens[s.idx]
	s.idx++
	return token
}
