package monkey

type ExpressionStatement struct {
	Token      Token
	Expression Expression
}

var _ Statement = new(ExpressionStatement)

func (*ExpressionStatement) statementNode() {}

func (e *ExpressionStatement) TokenLiteral() string {
	return e.Token.Text
}

func (e *ExpressionStatement) String() string {
	return e.Expression.String() + ";"
}
