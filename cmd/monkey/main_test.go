package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/monkeyfront/frontconfigs"
	"github.com/reusee/monkeyfront/logs"
	"github.com/reusee/monkeyfront/modes"
)

func newScope(t *testing.T, defs ...any) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		append([]any{
			func() logs.Writer {
				return io.Discard
			},
		}, defs...)...,
	)
}

func TestProcess(t *testing.T) {
	newScope(t).Call(func(
		process Process,
	) {
		stdout := new(strings.Builder)
		stderr := new(strings.Builder)
		parsed, failed, err := process(t.Context(), []Input{
			{Name: "a.mk", Source: "let x = 1 + 2 * 3;"},
			{Name: "b.mk", Source: "x; @; y"},
			{Name: "c.mk", Source: "-a * b"},
		}, stdout, stderr)
		if err != nil {
			t.Fatal(err)
		}
		if !failed {
			t.Fatal()
		}
		if len(parsed) != 3 {
			t.Fatalf("got %v", parsed)
		}

		if got := stdout.String(); got != "==> a.mk <==\nlet x = (1 + (2 * 3));\n==> c.mk <==\n((-a) * b);\n" {
			t.Fatalf("got %q", got)
		}
		if got := stderr.String(); !strings.HasPrefix(got, "b.mk: 2 parse errors\n") ||
			strings.Count(got, "  token unrecognized, got ") != 2 {
			t.Fatalf("got %q", got)
		}
	})
}

func TestProcessSingle(t *testing.T) {
	newScope(t).Call(func(
		process Process,
	) {
		stdout := new(strings.Builder)
		_, failed, err := process(t.Context(), []Input{
			{Name: "a.mk", Source: "if (a) { b } else { c }"},
		}, stdout, io.Discard)
		if err != nil {
			t.Fatal(err)
		}
		if failed {
			t.Fatal()
		}
		if got := stdout.String(); got != "if a { b; } else { c; };\n" {
			t.Fatalf("got %q", got)
		}
	})
}

func TestReportCap(t *testing.T) {
	newScope(t, frontconfigs.MaxReportedErrors(1)).Call(func(
		process Process,
	) {
		stderr := new(strings.Builder)
		_, failed, err := process(t.Context(), []Input{
			{Name: "b.mk", Source: "x; @; y; @"},
		}, io.Discard, stderr)
		if err != nil {
			t.Fatal(err)
		}
		if !failed {
			t.Fatal()
		}
		lines := strings.Split(strings.TrimSuffix(stderr.String(), "\n"), "\n")
		if len(lines) != 3 {
			t.Fatalf("got %q", lines)
		}
		if lines[0] != "b.mk: 3 parse errors" {
			t.Fatalf("got %q", lines[0])
		}
		if lines[2] != "  and 2 more" {
			t.Fatalf("got %q", lines[2])
		}
	})
}

func TestOutputFormats(t *testing.T) {
	newScope(t, OutputTokens).Call(func(
		process Process,
	) {
		stdout := new(strings.Builder)
		if _, _, err := process(t.Context(), []Input{
			{Name: "a.mk", Source: "x == 1"},
		}, stdout, io.Discard); err != nil {
			t.Fatal(err)
		}
		if got := stdout.String(); got != "Ident \"x\"\nEqual \"==\"\nInt \"1\"\nEOF\n" {
			t.Fatalf("got %q", got)
		}
	})

	newScope(t, OutputYAML).Call(func(
		process Process,
	) {
		stdout := new(strings.Builder)
		if _, _, err := process(t.Context(), []Input{
			{Name: "a.mk", Source: "x"},
		}, stdout, io.Discard); err != nil {
			t.Fatal(err)
		}
		if got := stdout.String(); !strings.HasPrefix(got, "kind: Program\n") {
			t.Fatalf("got %q", got)
		}
	})

	newScope(t, frontconfigs.PrintTokens(true)).Call(func(
		format OutputFormat,
	) {
		if format != OutputTokens {
			t.Fatalf("got %v", format)
		}
	})
}

func TestParseAllOrder(t *testing.T) {
	newScope(t, frontconfigs.ParseConcurrency(2)).Call(func(
		parseAll ParseAll,
	) {
		var inputs []Input
		for i := range 32 {
			inputs = append(inputs, Input{
				Name:   fmt.Sprintf("%d.mk", i),
				Source: fmt.Sprintf("let x = %d;", i),
			})
		}
		parsed, err := parseAll(t.Context(), inputs)
		if err != nil {
			t.Fatal(err)
		}
		for i, p := range parsed {
			if p.Input.Name != inputs[i].Name {
				t.Fatalf("got %v", p.Input.Name)
			}
			if got := p.Program.String(); got != fmt.Sprintf("let x = %d;", i) {
				t.Fatalf("got %v", got)
			}
		}
	})
}

func TestParseAllCanceled(t *testing.T) {
	newScope(t, frontconfigs.ParseConcurrency(1)).Call(func(
		parseAll ParseAll,
	) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		_, err := parseAll(ctx, []Input{{Name: "a"}, {Name: "b"}})
		if err == nil {
			t.Fatal("should error")
		}
	})
}

func TestReadInputs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.mk")
	if err := os.WriteFile(path, []byte("let a = 1;"), 0644); err != nil {
		t.Fatal(err)
	}
	inputs, err := readInputs([]string{path}, []string{"1", "2"})
	if err != nil {
		t.Fatal(err)
	}
	if len(inputs) != 3 {
		t.Fatalf("got %v", inputs)
	}
	if inputs[0].Name != path || inputs[0].Source != "let a = 1;" {
		t.Fatalf("got %v", inputs[0])
	}
	if inputs[2].Name != "<e2>" || inputs[2].Source != "2" {
		t.Fatalf("got %v", inputs[2])
	}

	if _, err := readInputs([]string{filepath.Join(dir, "nope.mk")}, nil); err == nil {
		t.Fatal("should error")
	}

	input, err := readStdin(strings.NewReader("x"))
	if err != nil {
		t.Fatal(err)
	}
	if input.Name != "<stdin>" || input.Source != "x" {
		t.Fatalf("got %v", input)
	}
}

func TestREPLLoop(t *testing.T) {
	newScope(t).Call(func(
		process Process,
		logger logs.Logger,
	) {
		lines := []string{"let a = 1;", "", "let = 1;", "a + b"}
		readLine := func() (string, error) {
			if len(lines) == 0 {
				return "", io.EOF
			}
			line := lines[0]
			lines = lines[1:]
			return line, nil
		}
		stdout := new(strings.Builder)
		stderr := new(strings.Builder)
		if err := replLoop(t.Context(), readLine, process, stdout, stderr, logger); err != nil {
			t.Fatal(err)
		}
		if got := stdout.String(); got != "let a = 1;\n(a + b);\n" {
			t.Fatalf("got %q", got)
		}
		if got := stderr.String(); !strings.HasPrefix(got, "<repl>: ") {
			t.Fatalf("got %q", got)
		}
	})
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "inspect.star")
	if err := os.WriteFile(script, []byte(`
for name in sorted(programs.keys()):
    print(name, len(programs[name]["statements"]), len(errors[name]))
`), 0644); err != nil {
		t.Fatal(err)
	}
	tapScript = script
	defer func() {
		tapScript = ""
	}()

	newScope(t).Call(func(
		parseAll ParseAll,
		inspect Inspect,
	) {
		parsed, err := parseAll(t.Context(), []Input{
			{Name: "a", Source: "1; 2;"},
			{Name: "b", Source: "let = 1;"},
		})
		if err != nil {
			t.Fatal(err)
		}
		stdout := new(strings.Builder)
		if err := inspect(t.Context(), parsed, stdout); err != nil {
			t.Fatal(err)
		}
		if got := stdout.String(); !strings.HasPrefix(got, "a 2 0\nb ") {
			t.Fatalf("got %q", got)
		}
	})
}

type syncBuffer struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.mk")
	if err := os.WriteFile(path, []byte("1"), 0644); err != nil {
		t.Fatal(err)
	}

	newScope(t).Call(func(
		watchFiles Watch,
	) {
		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()
		stdout := new(syncBuffer)
		done := make(chan error, 1)
		go func() {
			done <- watchFiles(ctx, []string{path}, stdout, io.Discard)
		}()

		deadline := time.Now().Add(10 * time.Second)
		for !strings.Contains(stdout.String(), "(a + b);") {
			if time.Now().After(deadline) {
				t.Fatalf("got %q", stdout.String())
			}
			// rewrite until the watcher is registered and sees it
			if err := os.WriteFile(path, []byte("a + b"), 0644); err != nil {
				t.Fatal(err)
			}
			time.Sleep(50 * time.Millisecond)
		}

		cancel()
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	})
}
