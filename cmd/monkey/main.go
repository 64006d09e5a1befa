package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/reusee/dscope"
	"github.com/reusee/monkeyfront/cmds"
	"github.com/reusee/monkeyfront/frontconfigs"
	"github.com/reusee/monkeyfront/logs"
	"github.com/reusee/monkeyfront/modes"
)

func main() {
	// diagnostics go through Report, logs stay quiet unless asked for
	logs.SetLevel(slog.LevelError)
	cmds.Execute(os.Args[1:])

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope, err := frontconfigs.MonkeyFork(ctx, scope)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var failed bool
	scope.Call(func(
		logger logs.Logger,
		process Process,
		repl REPL,
		watchFiles Watch,
		inspect Inspect,
	) {
		failed, err = run(ctx, process, repl, watchFiles, inspect)
		if err != nil {
			logger.ErrorContext(ctx, "failed", "error", err)
		}
	})

	if err != nil || failed {
		os.Exit(1)
	}
}

func run(
	ctx context.Context,
	process Process,
	repl REPL,
	watchFiles Watch,
	inspect Inspect,
) (failed bool, err error) {

	inputs, err := readInputs(files, expressions)
	if err != nil {
		return false, err
	}

	if len(inputs) == 0 {
		if *forceREPL || isTerminal(os.Stdin) {
			return false, repl(ctx)
		}
		input, err := readStdin(os.Stdin)
		if err != nil {
			return false, err
		}
		inputs = append(inputs, input)
	}

	parsed, failed, err := process(ctx, inputs, os.Stdout, os.Stderr)
	if err != nil {
		return failed, err
	}

	if err := inspect(ctx, parsed, os.Stdout); err != nil {
		return failed, err
	}

	if *watch && len(files) > 0 {
		if err := watchFiles(ctx, files, os.Stdout, os.Stderr); err != nil {
			return failed, err
		}
	}

	if *forceREPL {
		if err := repl(ctx); err != nil {
			return failed, err
		}
	}

	return failed, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
