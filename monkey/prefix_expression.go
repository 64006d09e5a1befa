package monkey

type PrefixExpression struct {
	Token    Token
	Operator string
	Right    Expression
}

var _ Expression = new(PrefixExpression)

func (*PrefixExpression) expressionNode() {}

func (p *PrefixExpression) TokenLiteral() string {
	return p.Token.Text
}

func (p *PrefixExpression) String() string {
	return "(" + p.Operator + p.Right.String() + ")"
}
