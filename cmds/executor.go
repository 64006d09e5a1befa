package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"reflect"
	"slices"
	"strings"
)

type Executor struct {
	commands map[string]*Command
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
	}
	ret.Define("-h", Func(func() {
		ret.PrintUsage(os.Stdout)
		os.Exit(0)
	}).Desc("print this usage").Alias("help", "-help", "--help"))
	return ret
}

func (e *Executor) Define(name string, command *Command) {
	for _, name := range append([]string{name}, command.Aliases...) {
		if _, ok := e.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		e.commands[name] = command
	}
}

func (e *Executor) Execute(args []string) error {
	commands := e.commands
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := commands[name]
		if !ok {
			return fmt.Errorf("unknown command: %s", name)
		}

		if command.Func.IsValid() {
			var err error
			args, err = call(command.Func, args)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}

		if len(command.Subs) > 0 {
			commands = maps.Clone(commands)
			for subname, sub := range command.Subs {
				if _, ok := commands[subname]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, subname)
				}
				commands[subname] = sub
			}
		}
	}
	return nil
}

func (e *Executor) MustExecute(args []string) {
	if err := e.Execute(args); err != nil {
		panic(err)
	}
}

func call(fn reflect.Value, args []string) ([]string, error) {
	fnType := fn.Type()
	callArgs := make([]reflect.Value, 0, fnType.NumIn())
	for i := range fnType.NumIn() {
		value, err := getArg(fnType.In(i), args)
		if err != nil {
			return nil, err
		}
		if len(args) > 0 {
			args = args[1:]
		}
		callArgs = append(callArgs, value)
	}
	rets := fn.Call(callArgs)
	if len(rets) > 0 && !rets[0].IsNil() {
		return nil, rets[0].Interface().(error)
	}
	return args, nil
}

func (e *Executor) PrintUsage(w io.Writer) {
	printCommands(w, e.commands, "")
}

func printCommands(w io.Writer, commands map[string]*Command, indent string) {
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || slices.Contains(command.Aliases, name) {
			continue
		}

		line := indent + name
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)

		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, indent+"  ")
		}
	}
}
