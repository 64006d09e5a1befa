package monkey

import "strings"

type IfExpression struct {
	Token       Token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement
}

var _ Expression = new(IfExpression)

func (*IfExpression) expressionNode() {}

func (i *IfExpression) TokenLiteral() string {
	return i.Token.Text
}

func (i *IfExpression) String() string {
	var b strings.Builder
	b.WriteString("if ")
	b.WriteString(i.Condition.String())
	b.WriteString(" { ")
	b.WriteString(i.Consequence.String())
	b.WriteString(" }")
	if i.Alternative != nil {
		b.WriteString(" else { ")
		b.WriteString(i.Alternative.String())
		b.WriteString(" }")
	}
	return b.String()
}
