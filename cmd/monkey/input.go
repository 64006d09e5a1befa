package main

import (
	"fmt"
	"io"
	"os"
)

type Input struct {
	Name   string
	Source string
}

func readInputs(paths []string, exprs []string) ([]Input, error) {
	inputs := make([]Input, 0, len(paths)+len(exprs))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, Input{
			Name:   path,
			Source: string(content),
		})
	}
	for i, expr := range exprs {
		inputs = append(inputs, Input{
			Name:   fmt.Sprintf("<e%d>", i+1),
			Source: expr,
		})
	}
	return inputs, nil
}

func readStdin(r io.Reader) (Input, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return Input{}, err
	}
	return Input{
		Name:   "<stdin>",
		Source: string(content),
	}, nil
}
