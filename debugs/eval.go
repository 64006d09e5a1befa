package debugs

import (
	"context"
	"fmt"
	"io"

	"github.com/reusee/monkeyfront/logs"
	"go.starlark.net/starlark"
)

// Eval runs a starlark script with globals bound, print() writes to output.
type Eval func(ctx context.Context, name string, script string, globals map[string]any, output io.Writer) (starlark.StringDict, error)

func (Module) Eval(
	logger logs.Logger,
) Eval {
	return func(ctx context.Context, name string, script string, globals map[string]any, output io.Writer) (starlark.StringDict, error) {
		thread := &starlark.Thread{
			Name: name,
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(output, msg)
			},
		}
		// cancellation interrupts long-running scripts
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel(context.Cause(ctx).Error())
		})
		defer stop()

		ret, err := starlark.ExecFileOptions(fileOptions, thread, name, script, toGlobals(globals))
		if err != nil {
			logger.WarnContext(ctx, "starlark error",
				"script", name,
				"error", err,
			)
			return nil, err
		}
		return ret, nil
	}
}
