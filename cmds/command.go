package cmds

import (
	"fmt"
	"reflect"
)

type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

var errorType = reflect.TypeFor[error]()

// Func wraps fn as a command. Parameters of fn consume one argument each,
// pointer parameters are optional. fn may return an error.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	fnType := fnValue.Type()
	switch fnType.NumOut() {
	case 0:
	case 1:
		if fnType.Out(0) != errorType {
			panic(fmt.Errorf("must return error, got %v", fnType.Out(0)))
		}
	default:
		panic(fmt.Errorf("must return 0 or 1 value"))
	}

	return &Command{
		Func: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
