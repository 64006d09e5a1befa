package monkey

import "errors"

// Parser builds a Program from a token source.
// It keeps two tokens of lookahead and is not safe for concurrent use.
type Parser struct {
	source  TokenSource
	current Token
	peek    Token
	errors  []error
}

func NewParser(source TokenSource) *Parser {
	p := &Parser{
		source: source,
	}
	p.advance()
	p.advance()
	return p
}

// Errors returns the parse errors collected so far, in the order they happened.
func (p *Parser) Errors() []error {
	return p.errors
}

// ParseProgram parses statements until EOF.
// A failed statement is recorded in Errors and parsing resumes at the next token.
func (p *Parser) ParseProgram() *Program {
	program := &Program{
		Statements: []Statement{},
	}
	for p.current.Kind != TokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			p.errors = append(p.errors, err)
		} else {
			program.Statements = append(program.Statements, stmt)
		}
		p.advance()
	}
	return program
}

// Parse parses src and joins all parse errors.
// The program holds every statement that parsed, even when err is not nil.
func Parse(src string) (program *Program, err error) {
	parser := NewParser(NewLexer(src))
	program = parser.ParseProgram()
	return program, errors.Join(parser.Errors()...)
}

func (p *Parser) advance() {
	p.current = p.peek
	p.peek = p.source.NextToken()
}

func (p *Parser) expectPeek(kind TokenKind) bool {
	if p.peek.Kind != kind {
		return false
	}
	p.advance()
	return true
}

func (p *Parser) skipSemicolon() {
	if p.peek.Kind == TokenSemicolon {
		p.advance()
	}
}

func (p *Parser) fail(err error, token Token) error {
	return ParseError{
		Err:   err,
		Token: token,
	}
}

func (p *Parser) parseStatement() (Statement, error) {
	switch p.current.Kind {
	case TokenLet:
		return p.parseLetStatement()
	case TokenReturn:
		return p.parseReturnStatement()
	}
	return p.parseExpressionStatement()
}

func (p *Parser) parseLetStatement() (Statement, error) {
	token := p.current

	if !p.expectPeek(TokenIdent) {
		return nil, p.fail(ErrIdentExpected, p.peek)
	}
	name := &Identifier{
		Token: p.current,
		Value: p.current.Text,
	}

	if !p.expectPeek(TokenAssign) {
		return nil, p.fail(ErrAssignExpected, p.peek)
	}
	p.advance()

	value, err := p.parseExpression(PrecedenceLowest)
	if err != nil {
		return nil, err
	}
	p.skipSemicolon()

	return &LetStatement{
		Token: token,
		Name:  name,
		Value: value,
	}, nil
}

func (p *Parser) parseReturnStatement() (Statement, error) {
	stmt := &ReturnStatement{
		Token: p.current,
	}

	// bare return
	switch p.peek.Kind {
	case TokenSemicolon:
		p.advance()
		return stmt, nil
	case TokenRBrace, TokenEOF:
		return stmt, nil
	}

	p.advance()
	value, err := p.parseExpression(PrecedenceLowest)
	if err != nil {
		return nil, err
	}
	stmt.Value = value
	p.skipSemicolon()

	return stmt, nil
}

func (p *Parser) parseExpressionStatement() (Statement, error) {
	token := p.current
	expr, err := p.parseExpression(PrecedenceLowest)
	if err != nil {
		return nil, err
	}
	p.skipSemicolon()
	return &ExpressionStatement{
		Token:      token,
		Expression: expr,
	}, nil
}

// parseBlockStatement expects the current token to be '{' and stops on the matching '}'.
// Reaching EOF first is reported as failure.
func (p *Parser) parseBlockStatement(failure error) (*BlockStatement, error) {
	block := &BlockStatement{
		Token:      p.current,
		Statements: []Statement{},
	}
	p.advance()

	for p.current.Kind != TokenRBrace {
		if p.current.Kind == TokenEOF {
			return nil, p.fail(failure, p.current)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
		p.advance()
	}

	return block, nil
}
