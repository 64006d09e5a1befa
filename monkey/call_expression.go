package monkey

import (
	"strings"

	"github.com/samber/lo"
)

type CallExpression struct {
	Token     Token // the '(' token
	Function  Expression
	Arguments []Expression
}

var _ Expression = new(CallExpression)

func (*CallExpression) expressionNode() {}

func (c *CallExpression) TokenLiteral() string {
	return c.Token.Text
}

func (c *CallExpression) String() string {
	args := lo.Map(c.Arguments, func(arg Expression, _ int) string {
		return arg.String()
	})
	return c.Function.String() + "(" + strings.Join(args, ", ") + ")"
}
