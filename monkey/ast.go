package monkey

import "strings"

type Node interface {
	TokenLiteral() string
	// String renders the canonical, fully parenthesized form.
	String() string
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

// Program is the root of every parse.
type Program struct {
	Statements []Statement
}

var _ Node = new(Program)

func (p *Program) TokenLiteral() string {
	if len(p.Statements) == 0 {
		return ""
	}
	return p.Statements[0].TokenLiteral()
}

func (p *Program) String() string {
	return renderStatements(p.Statements)
}

func renderStatements(stmts []Statement) string {
	var b strings.Builder
	for _, stmt := range stmts {
		b.WriteString(stmt.String())
	}
	return b.String()
}
