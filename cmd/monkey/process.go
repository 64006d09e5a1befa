package main

import (
	"context"
	"fmt"
	"io"
)

// Process parses inputs, prints programs to stdout and errors to stderr.
// failed reports whether any input had parse errors.
type Process func(ctx context.Context, inputs []Input, stdout io.Writer, stderr io.Writer) (parsed []Parsed, failed bool, err error)

func (Module) Process(
	parseAll ParseAll,
	print Print,
	report Report,
) Process {
	return func(ctx context.Context, inputs []Input, stdout io.Writer, stderr io.Writer) (parsed []Parsed, failed bool, err error) {
		parsed, err = parseAll(ctx, inputs)
		if err != nil {
			return nil, false, err
		}

		for _, p := range parsed {
			if len(p.Errors) > 0 {
				failed = true
				if err := report(stderr, p); err != nil {
					return nil, failed, err
				}
				continue
			}
			if len(parsed) > 1 {
				if _, err := fmt.Fprintf(stdout, "==> %s <==\n", p.Input.Name); err != nil {
					return nil, failed, err
				}
			}
			if err := print(stdout, p); err != nil {
				return nil, failed, err
			}
		}

		return parsed, failed, nil
	}
}
