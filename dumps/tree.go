package dumps

import (
	"fmt"

	"github.com/reusee/monkeyfront/monkey"
	"github.com/samber/lo"
)

// Tree converts node to nested maps and slices.
// Every node map carries its variant name under "kind".
func Tree(node monkey.Node) any {
	switch node := node.(type) {

	case nil:
		return nil

	case *monkey.Program:
		return map[string]any{
			"kind":       "Program",
			"statements": statements(node.Statements),
		}

	case *monkey.LetStatement:
		return map[string]any{
			"kind":  "LetStatement",
			"name":  node.Name.Value,
			"value": Tree(node.Value),
		}

	case *monkey.ReturnStatement:
		ret := map[string]any{
			"kind": "ReturnStatement",
		}
		if node.Value != nil {
			ret["value"] = Tree(node.Value)
		}
		return ret

	case *monkey.ExpressionStatement:
		return map[string]any{
			"kind":       "ExpressionStatement",
			"expression": Tree(node.Expression),
		}

	case *monkey.BlockStatement:
		return map[string]any{
			"kind":       "BlockStatement",
			"statements": statements(node.Statements),
		}

	case *monkey.Identifier:
		return map[string]any{
			"kind":  "Identifier",
			"value": node.Value,
		}

	case *monkey.IntegerLiteral:
		return map[string]any{
			"kind":  "IntegerLiteral",
			"value": node.Value,
		}

	case *monkey.Boolean:
		return map[string]any{
			"kind":  "Boolean",
			"value": node.Value,
		}

	case *monkey.PrefixExpression:
		return map[string]any{
			"kind":     "PrefixExpression",
			"operator": node.Operator,
			"right":    Tree(node.Right),
		}

	case *monkey.InfixExpression:
		return map[string]any{
			"kind":     "InfixExpression",
			"operator": node.Operator,
			"left":     Tree(node.Left),
			"right":    Tree(node.Right),
		}

	case *monkey.IfExpression:
		ret := map[string]any{
			"kind":        "IfExpression",
			"condition":   Tree(node.Condition),
			"consequence": Tree(node.Consequence),
		}
		if node.Alternative != nil {
			ret["alternative"] = Tree(node.Alternative)
		}
		return ret

	case *monkey.FunctionLiteral:
		return map[string]any{
			"kind": "FunctionLiteral",
			"parameters": lo.Map(node.Parameters, func(param *monkey.Identifier, _ int) string {
				return param.Value
			}),
			"body": Tree(node.Body),
		}

	case *monkey.CallExpression:
		return map[string]any{
			"kind":     "CallExpression",
			"function": Tree(node.Function),
			"arguments": lo.Map(node.Arguments, func(arg monkey.Expression, _ int) any {
				return Tree(arg)
			}),
		}

	default:
		panic(fmt.Errorf("unknown node type %T", node))
	}
}

func statements(stmts []monkey.Statement) []any {
	return lo.Map(stmts, func(stmt monkey.Statement, _ int) any {
		return Tree(stmt)
	})
}
