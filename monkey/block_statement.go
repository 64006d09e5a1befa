package monkey

type BlockStatement struct {
	Token      Token
	Statements []Statement
}

var _ Statement = new(BlockStatement)

func (*BlockStatement) statementNode() {}

func (b *BlockStatement) TokenLiteral() string {
	return b.Token.Text
}

func (b *BlockStatement) String() string {
	return renderStatements(b.Statements)
}
