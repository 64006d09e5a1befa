package monkey

type LetStatement struct {
	Token Token
	Name  *Identifier
	Value Expression
}

var _ Statement = new(LetStatement)

func (*LetStatement) statementNode() {}

func (l *LetStatement) TokenLiteral() string {
	return l.Token.Text
}

func (l *LetStatement) String() string {
	return "let " + l.Name.String() + " = " + l.Value.String() + ";"
}
