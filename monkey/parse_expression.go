package monkey

import (
	"fmt"
	"strconv"
)

func (p *Parser) parseExpression(precedence Precedence) (Expression, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for p.peek.Kind != TokenSemicolon {
		next, ok := infixPrecedences[p.peek.Kind]
		if !ok || next <= precedence {
			break
		}
		p.advance()
		left, err = p.parseInfix(left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func (p *Parser) parsePrefix() (Expression, error) {
	switch p.current.Kind {
	case TokenIdent:
		return &Identifier{
			Token: p.current,
			Value: p.current.Text,
		}, nil
	case TokenInt:
		return p.parseIntegerLiteral()
	case TokenTrue, TokenFalse:
		return p.parseBoolean()
	case TokenMinus, TokenBang:
		return p.parsePrefixExpression()
	case TokenLParen:
		return p.parseGroupedExpression()
	case TokenIf:
		return p.parseIfExpression()
	case TokenFunction:
		return p.parseFunctionLiteral()
	}
	return nil, p.fail(ErrTokenUnrecognized, p.current)
}

func (p *Parser) parseInfix(left Expression) (Expression, error) {
	if p.current.Kind == TokenLParen {
		return p.parseCallExpression(left)
	}

	token := p.current
	p.advance()
	// same precedence on the right keeps operators left-associative
	right, err := p.parseExpression(PrecedenceOf(token.Kind))
	if err != nil {
		return nil, err
	}

	return &InfixExpression{
		Token:    token,
		Left:     left,
		Operator: token.Text,
		Right:    right,
	}, nil
}

func (p *Parser) parseIntegerLiteral() (Expression, error) {
	value, err := strconv.ParseInt(p.current.Text, 10, 64)
	if err != nil {
		return nil, p.fail(fmt.Errorf("%w: %w", ErrIntegerParsingFailed, err), p.current)
	}
	return &IntegerLiteral{
		Token: p.current,
		Value: value,
	}, nil
}

func (p *Parser) parseBoolean() (Expression, error) {
	token := p.current
	keyword := "false"
	if token.Kind == TokenTrue {
		keyword = "true"
	}
	if token.Text != keyword {
		return nil, p.fail(ErrBooleanParsingFailed, token)
	}
	return &Boolean{
		Token: token,
		Value: token.Kind == TokenTrue,
	}, nil
}

func (p *Parser) parsePrefixExpression() (Expression, error) {
	token := p.current
	p.advance()
	right, err := p.parseExpression(PrecedencePrefix)
	if err != nil {
		return nil, err
	}
	return &PrefixExpression{
		Token:    token,
		Operator: token.Text,
		Right:    right,
	}, nil
}

func (p *Parser) parseGroupedExpression() (Expression, error) {
	p.advance()
	expr, err := p.parseExpression(PrecedenceLowest)
	if err != nil {
		return nil, err
	}
	if !p.expectPeek(TokenRParen) {
		return nil, p.fail(ErrGroupExpressionParsingFailed, p.peek)
	}
	return expr, nil
}

func (p *Parser) parseIfExpression() (Expression, error) {
	expr := &IfExpression{
		Token: p.current,
	}

	p.advance()
	condition, err := p.parseExpression(PrecedenceLowest)
	if err != nil {
		return nil, err
	}
	expr.Condition = condition

	if !p.expectPeek(TokenLBrace) {
		return nil, p.fail(ErrIncorrectIfStatement, p.peek)
	}
	expr.Consequence, err = p.parseBlockStatement(ErrIncorrectIfStatement)
	if err != nil {
		return nil, err
	}

	if p.peek.Kind == TokenElse {
		p.advance()
		if !p.expectPeek(TokenLBrace) {
			return nil, p.fail(ErrIncorrectIfStatement, p.peek)
		}
		expr.Alternative, err = p.parseBlockStatement(ErrIncorrectIfStatement)
		if err != nil {
			return nil, err
		}
	}

	return expr, nil
}

func (p *Parser) parseFunctionLiteral() (Expression, error) {
	fn := &FunctionLiteral{
		Token: p.current,
	}

	if !p.expectPeek(TokenLParen) {
		return nil, p.fail(ErrIncorrectFunctionDeclaration, p.peek)
	}
	params, err := parseList(p, TokenRParen, func() (*Identifier, error) {
		if p.current.Kind != TokenIdent {
			return nil, p.fail(ErrIncorrectFunctionDeclaration, p.current)
		}
		return &Identifier{
			Token: p.current,
			Value: p.current.Text,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	fn.Parameters = params

	if !p.expectPeek(TokenLBrace) {
		return nil, p.fail(ErrIncorrectFunctionDeclaration, p.peek)
	}
	fn.Body, err = p.parseBlockStatement(ErrIncorrectFunctionDeclaration)
	if err != nil {
		return nil, err
	}

	return fn, nil
}

func (p *Parser) parseCallExpression(function Expression) (Expression, error) {
	token := p.current
	args, err := parseList(p, TokenRParen, func() (Expression, error) {
		return p.parseExpression(PrecedenceLowest)
	})
	if err != nil {
		return nil, err
	}
	return &CallExpression{
		Token:     token,
		Function:  function,
		Arguments: args,
	}, nil
}

// parseList parses comma separated elements after the current opening token,
// leaving the closing token current. Commas are optional and one trailing comma is allowed.
func parseList[T any](p *Parser, closing TokenKind, parseElem func() (T, error)) ([]T, error) {
	var elems []T
	p.advance()
	for p.current.Kind != closing {
		if p.current.Kind == TokenComma {
			p.advance()
			if p.current.Kind == closing {
				break
			}
		}
		elem, err := parseElem()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		p.advance()
	}
	return elems, nil
}
