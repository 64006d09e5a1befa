package monkey

type Boolean struct {
	Token Token
	Value bool
}

var _ Expression = new(Boolean)

func (*Boolean) expressionNode() {}

func (b *Boolean) TokenLiteral() string {
	return b.Token.Text
}

func (b *Boolean) String() string {
	return b.Token.Text
}
