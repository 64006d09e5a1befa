package configs

import (
	"fmt"
	"reflect"

	"github.com/reusee/dscope"
	"github.com/reusee/monkeyfront/monkey"
)

// MonkeyFork forks scope with the Configurable values bound by top-level
// let statements of program. A later binding of the same name wins.
// Names not matching any Configurable type in scope are ignored.
func MonkeyFork(scope dscope.Scope, program *monkey.Program) (ret dscope.Scope, err error) {
	configTypes := make(map[string]reflect.Type)
	for t := range scope.AllTypes() {
		if t.Kind() == reflect.Interface || !t.Implements(configurableType) {
			continue
		}
		name := reflect.Zero(t).Interface().(Configurable).ConfigName()
		configTypes[name] = t
	}

	values := make(map[reflect.Type]reflect.Value)
	var order []reflect.Type
	for _, stmt := range program.Statements {
		let, ok := stmt.(*monkey.LetStatement)
		if !ok || let.Name == nil {
			continue
		}
		t, ok := configTypes[let.Name.Value]
		if !ok {
			continue
		}
		value, err := configValue(t, let.Value)
		if err != nil {
			return scope, fmt.Errorf("%s: %w", let.Name.Value, err)
		}
		if _, ok := values[t]; !ok {
			order = append(order, t)
		}
		values[t] = value
	}

	if len(order) == 0 {
		return scope, nil
	}
	defs := make([]any, 0, len(order))
	for _, t := range order {
		defs = append(defs, values[t].Interface())
	}
	return scope.Fork(defs...), nil
}

func configValue(t reflect.Type, expr monkey.Expression) (ret reflect.Value, err error) {
	ret = reflect.New(t).Elem()

	switch t.Kind() {

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var i int64
		switch expr := expr.(type) {
		case *monkey.IntegerLiteral:
			i = expr.Value
		case *monkey.PrefixExpression:
			lit, ok := expr.Right.(*monkey.IntegerLiteral)
			if !ok || expr.Operator != "-" {
				return ret, fmt.Errorf("%w: %s", ErrUnsupportedConfigValue, expr)
			}
			i = -lit.Value
		default:
			return ret, fmt.Errorf("%w: %v", ErrUnsupportedConfigValue, expr)
		}
		if ret.OverflowInt(i) {
			return ret, fmt.Errorf("%w: %d overflows %v", ErrUnsupportedConfigValue, i, t)
		}
		ret.SetInt(i)

	case reflect.Bool:
		b, ok := expr.(*monkey.Boolean)
		if !ok {
			return ret, fmt.Errorf("%w: %v", ErrUnsupportedConfigValue, expr)
		}
		ret.SetBool(b.Value)

	default:
		return ret, fmt.Errorf("%w: type %v", ErrUnsupportedConfigValue, t)
	}

	return ret, nil
}
