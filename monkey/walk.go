package monkey

import "fmt"

// Walk visits node and its descendants in source order.
// Returning false from fn skips the children of that node.
func Walk(node Node, fn func(Node) bool) {
	if !fn(node) {
		return
	}

	switch node := node.(type) {

	case *Program:
		for _, stmt := range node.Statements {
			Walk(stmt, fn)
		}

	case *LetStatement:
		Walk(node.Name, fn)
		Walk(node.Value, fn)

	case *ReturnStatement:
		if node.Value != nil {
			Walk(node.Value, fn)
		}

	case *ExpressionStatement:
		Walk(node.Expression, fn)

	case *BlockStatement:
		for _, stmt := range node.Statements {
			Walk(stmt, fn)
		}

	case *Identifier, *IntegerLiteral, *Boolean:

	case *PrefixExpression:
		Walk(node.Right, fn)

	case *InfixExpression:
		Walk(node.Left, fn)
		Walk(node.Right, fn)

	case *IfExpression:
		Walk(node.Condition, fn)
		Walk(node.Consequence, fn)
		if node.Alternative != nil {
			Walk(node.Alternative, fn)
		}

	case *FunctionLiteral:
		for _, param := range node.Parameters {
			Walk(param, fn)
		}
		Walk(node.Body, fn)

	case *CallExpression:
		Walk(node.Function, fn)
		for _, arg := range node.Arguments {
			Walk(arg, fn)
		}

	default:
		panic(fmt.Errorf("unknown node type %T", node))
	}
}
