package monkey

type Identifier struct {
	Token Token
	Value string
}

var _ Expression = new(Identifier)

func (*Identifier) expressionNode() {}

func (i *Identifier) TokenLiteral() string {
	return i.Token.Text
}

func (i *Identifier) String() string {
	return i.Value
}
