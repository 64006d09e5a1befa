package main

import (
	"context"
	"sync"

	"github.com/reusee/monkeyfront/frontconfigs"
	"github.com/reusee/monkeyfront/logs"
	"github.com/reusee/monkeyfront/monkey"
	"github.com/reusee/monkeyfront/syncs"
)

type Parsed struct {
	Input   Input
	Program *monkey.Program
	Errors  []error
}

// ParseAll parses inputs concurrently, results are in input order.
type ParseAll func(ctx context.Context, inputs []Input) ([]Parsed, error)

func (Module) ParseAll(
	parse monkey.ParseSource,
	concurrency frontconfigs.ParseConcurrency,
	newSpan logs.NewSpan,
) ParseAll {
	return func(ctx context.Context, inputs []Input) ([]Parsed, error) {
		ret := make([]Parsed, len(inputs))
		sem := syncs.NewSemaphore(int(concurrency))
		wg := new(sync.WaitGroup)

		for i, input := range inputs {
			if err := sem.Acquire(ctx); err != nil {
				wg.Wait()
				return nil, err
			}
			wg.Go(func() {
				defer sem.Release()
				ctx, _ := newSpan(ctx, "parse", "source", input.Name)
				program, errs := parse(ctx, input.Name, input.Source)
				ret[i] = Parsed{
					Input:   input,
					Program: program,
					Errors:  errs,
				}
			})
		}

		wg.Wait()
		return ret, nil
	}
}
