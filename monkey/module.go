package monkey

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/monkeyfront/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// ParseSource parses one named source and returns the program with all collected errors.
type ParseSource func(ctx context.Context, name string, src string) (*Program, []error)

func (Module) ParseSource(
	logger logs.Logger,
) ParseSource {
	return func(ctx context.Context, name string, src string) (*Program, []error) {
		parser := NewParser(NewLexer(src))
		program := parser.ParseProgram()
		errs := parser.Errors()

		for _, err := range errs {
			logger.WarnContext(ctx, "parse error",
				"source", name,
				"error", err,
			)
		}

		nodes := 0
		Walk(program, func(Node) bool {
			nodes++
			return true
		})
		logger.DebugContext(ctx, "parsed",
			"source", name,
			"statements", len(program.Statements),
			"nodes", nodes,
			"errors", len(errs),
		)

		return program, errs
	}
}
