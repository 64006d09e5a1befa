package monkey

import (
	"strings"

	"github.com/samber/lo"
)

type FunctionLiteral struct {
	Token      Token
	Parameters []*Identifier
	Body       *BlockStatement
}

var _ Expression = new(FunctionLiteral)

func (*FunctionLiteral) expressionNode() {}

func (f *FunctionLiteral) TokenLiteral() string {
	return f.Token.Text
}

func (f *FunctionLiteral) String() string {
	params := lo.Map(f.Parameters, func(param *Identifier, _ int) string {
		return param.String()
	})
	return "fn(" + strings.Join(params, ", ") + ") { " + f.Body.String() + " }"
}
