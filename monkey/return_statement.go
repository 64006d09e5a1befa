package monkey

type ReturnStatement struct {
	Token Token
	Value Expression // nil for a bare return
}

var _ Statement = new(ReturnStatement)

func (*ReturnStatement) statementNode() {}

func (r *ReturnStatement) TokenLiteral() string {
	return r.Token.Text
}

func (r *ReturnStatement) String() string {
	if r.Value == nil {
		return "return;"
	}
	return "return " + r.Value.String() + ";"
}
