package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/monkeyfront/logs"
)

// REPL parses each input line until EOF or interrupt.
type REPL func(ctx context.Context) error

func (Module) REPL(
	process Process,
	logger logs.Logger,
) REPL {
	return func(ctx context.Context) error {
		var historyFile string
		if home, err := os.UserHomeDir(); err == nil {
			historyFile = filepath.Join(home, ".monkey_history")
		}
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          ">> ",
			HistoryFile:     historyFile,
			InterruptPrompt: "^C",
		})
		if err != nil {
			return err
		}
		defer rl.Close()
		stop := context.AfterFunc(ctx, func() {
			rl.Close()
		})
		defer stop()

		return replLoop(ctx, rl.Readline, process, rl.Stdout(), rl.Stderr(), logger)
	}
}

func replLoop(
	ctx context.Context,
	readLine func() (string, error),
	process Process,
	stdout io.Writer,
	stderr io.Writer,
	logger logs.Logger,
) error {
	for n := 1; ; n++ {
		line, err := readLine()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if _, _, err := process(ctx, []Input{{
			Name:   "<repl>",
			Source: line,
		}}, stdout, stderr); err != nil {
			return err
		}
		logger.DebugContext(ctx, "repl line", "n", n)
	}
}
