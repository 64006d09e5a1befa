package main

import (
	"fmt"
	"io"

	"github.com/reusee/monkeyfront/dumps"
	"github.com/reusee/monkeyfront/frontconfigs"
	"github.com/reusee/monkeyfront/monkey"
)

type OutputFormat uint8

const (
	OutputCanonical OutputFormat = iota
	OutputTokens
	OutputYAML
)

func (Module) OutputFormat(
	printTokens frontconfigs.PrintTokens,
) OutputFormat {
	switch {
	case *yamlOutput:
		return OutputYAML
	case printTokens:
		return OutputTokens
	}
	return OutputCanonical
}

type Print func(w io.Writer, parsed Parsed) error

func (Module) Print(
	format OutputFormat,
) Print {
	return func(w io.Writer, parsed Parsed) error {
		switch format {

		case OutputYAML:
			return dumps.YAML(w, parsed.Program)

		case OutputTokens:
			for token := range monkey.NewLexer(parsed.Input.Source).All() {
				if _, err := fmt.Fprintln(w, token); err != nil {
					return err
				}
			}
			return nil

		default:
			_, err := fmt.Fprintln(w, parsed.Program.String())
			return err
		}
	}
}
