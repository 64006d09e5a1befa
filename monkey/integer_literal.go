package monkey

type IntegerLiteral struct {
	Token Token
	Value int64
}

var _ Expression = new(IntegerLiteral)

func (*IntegerLiteral) expressionNode() {}

func (i *IntegerLiteral) TokenLiteral() string {
	return i.Token.Text
}

func (i *IntegerLiteral) String() string {
	return i.Token.Text
}
