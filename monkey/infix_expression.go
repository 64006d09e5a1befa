package monkey

type InfixExpression struct {
	Token    Token
	Left     Expression
	Operator string
	Right    Expression
}

var _ Expression = new(InfixExpression)

func (*InfixExpression) expressionNode() {}

func (i *InfixExpression) TokenLiteral() string {
	return i.Token.Text
}

func (i *InfixExpression) String() string {
	return "(" + i.Left.String() + " " + i.Operator + " " + i.Right.String() + ")"
}
