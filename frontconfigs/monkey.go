package frontconfigs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/reusee/dscope"
	"github.com/reusee/monkeyfront/cmds"
	"github.com/reusee/monkeyfront/configs"
	"github.com/reusee/monkeyfront/modes"
	"github.com/reusee/monkeyfront/monkey"
)

var configScripts []string

func init() {
	cmds.Define("-config-script", cmds.Func(func(path string) {
		configScripts = append(configScripts, path)
	}).Desc("run Monkey config script"))
}

// MonkeyFork applies Monkey config scripts to scope.
// Discovered scripts run from the most global (/etc) to the most local
// (working directory), then explicit -config-script ones, later ones win.
// Command line flags are reapplied last.
func MonkeyFork(ctx context.Context, scope dscope.Scope) (dscope.Scope, error) {
	var parse monkey.ParseSource
	var mode modes.Mode
	scope.Call(func(
		p monkey.ParseSource,
		m modes.Mode,
	) {
		parse = p
		mode = m
	})

	var paths []string
	if mode == modes.ModeProduction {
		dirs := searchDirs()
		slices.Reverse(dirs)
		paths = discover(dirs, []string{
			"monkey.mk",
			".monkey.mk",
		})
	}
	paths = append(paths, configScripts...)

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return scope, err
		}
		scope, err = forkScript(ctx, scope, parse, path, string(content))
		if err != nil {
			return scope, err
		}
	}

	if defs := flagDefs(); len(defs) > 0 {
		scope = scope.Fork(defs...)
	}
	return scope, nil
}

func forkScript(ctx context.Context, scope dscope.Scope, parse monkey.ParseSource, name string, src string) (dscope.Scope, error) {
	program, errs := parse(ctx, name, src)
	if len(errs) > 0 {
		return scope, fmt.Errorf("%s: %w", name, errors.Join(errs...))
	}
	scope, err := configs.MonkeyFork(scope, program)
	if err != nil {
		return scope, fmt.Errorf("%s: %w", name, err)
	}
	return scope, nil
}

func flagDefs() (ret []any) {
	if maxReportedErrorsFlag > 0 {
		ret = append(ret, MaxReportedErrors(maxReportedErrorsFlag))
	}
	if printTokensFlag != nil {
		ret = append(ret, PrintTokens(*printTokensFlag))
	}
	if parseConcurrencyFlag > 0 {
		ret = append(ret, ParseConcurrency(parseConcurrencyFlag))
	}
	return
}
