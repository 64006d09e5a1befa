package main

import (
	"github.com/reusee/monkeyfront/cmds"
)

var (
	files       []string
	expressions []string
	tapScript   string

	yamlOutput = cmds.Switch("-yaml")
	tapAfter   = cmds.Switch("-tap")
	watch      = cmds.Switch("-watch")
	forceREPL  = cmds.Switch("-repl")
)

func init() {
	cmds.Define("-file", cmds.Func(func(path string) {
		files = append(files, path)
	}).Desc("parse file, repeatable").Alias("-f"))
	cmds.Define("-e", cmds.Func(func(src string) {
		expressions = append(expressions, src)
	}).Desc("parse source text, repeatable"))
	cmds.Define("-tap-script", cmds.Func(func(path string) {
		tapScript = path
	}).Desc("run starlark script over parsed programs"))
}
