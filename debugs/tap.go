package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/monkeyfront/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

func toGlobals(globals map[string]any) starlark.StringDict {
	ret := make(starlark.StringDict)
	for name, value := range globals {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}

// Tap opens an interactive starlark session on stdin with globals bound.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(fileOptions, thread, toGlobals(globals))
	}
}
