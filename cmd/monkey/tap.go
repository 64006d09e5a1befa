package main

import (
	"context"
	"io"
	"os"

	"github.com/reusee/monkeyfront/debugs"
	"github.com/samber/lo"
)

func tapGlobals(parsed []Parsed) map[string]any {
	programs := make(map[string]any, len(parsed))
	errs := make(map[string]any, len(parsed))
	for _, p := range parsed {
		programs[p.Input.Name] = p.Program
		errs[p.Input.Name] = lo.Map(p.Errors, func(err error, _ int) string {
			return err.Error()
		})
	}
	return map[string]any{
		"programs": programs,
		"errors":   errs,
	}
}

// Inspect runs the starlark script and the interactive tap when requested.
type Inspect func(ctx context.Context, parsed []Parsed, stdout io.Writer) error

func (Module) Inspect(
	tap debugs.Tap,
	eval debugs.Eval,
) Inspect {
	return func(ctx context.Context, parsed []Parsed, stdout io.Writer) error {
		if tapScript != "" {
			script, err := os.ReadFile(tapScript)
			if err != nil {
				return err
			}
			if _, err := eval(ctx, tapScript, string(script), tapGlobals(parsed), stdout); err != nil {
				return err
			}
		}
		if *tapAfter {
			tap(ctx, "parsed", tapGlobals(parsed))
		}
		return nil
	}
}
