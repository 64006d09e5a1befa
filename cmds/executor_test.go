package cmds

import (
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var n int
	executor.Define("-reset", Func(func() {
		n = 0
	}))
	executor.Define("-n", Func(func(i int) {
		n = i
	}))

	if err := executor.Execute([]string{"-n", "3"}); err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("got %v", n)
	}

	if err := executor.Execute([]string{"-reset"}); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("got %v", n)
	}

	err := executor.Execute([]string{"-foo"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: -foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"-n", "x"})
	if err == nil || !strings.Contains(err.Error(), "-n: convert x to int") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"-n"})
	if err == nil || !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}
}

func TestExecutorReturnedError(t *testing.T) {
	executor := NewExecutor()
	executor.Define("fail", Func(func() error {
		return errFoo
	}))
	err := executor.Execute([]string{"fail"})
	if err == nil || !strings.Contains(err.Error(), "fail: foo") {
		t.Fatalf("got %v", err)
	}
}

type fooError struct{}

func (fooError) Error() string {
	return "foo"
}

var errFoo = fooError{}

func TestBoolArgument(t *testing.T) {
	executor := NewExecutor()
	var b bool
	executor.Define("-b", Func(func(v bool) {
		b = v
	}))
	if err := executor.Execute([]string{"-b", "yes"}); err != nil {
		t.Fatal(err)
	}
	if !b {
		t.Fatal()
	}
	if err := executor.Execute([]string{"-b", "F"}); err != nil {
		t.Fatal(err)
	}
	if b {
		t.Fatal()
	}
	if err := executor.Execute([]string{"-b", "maybe"}); err == nil {
		t.Fatal()
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var tokens, max int
	executor.Define("dump", Sub(map[string]*Command{
		"tokens": Func(func() {
			tokens = 1
		}),
		"max": Func(func(i int) {
			max = i
		}),
	}))

	if err := executor.Execute([]string{
		"dump",
		"tokens",
		"max", "42",
	}); err != nil {
		t.Fatal(err)
	}
	if tokens != 1 {
		t.Fatal()
	}
	if max != 42 {
		t.Fatal()
	}

	// subs are only visible after their parent
	if err := executor.Execute([]string{"tokens"}); err == nil {
		t.Fatal()
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if err == nil || !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestDuplicatedCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Func(func() {}))
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("should panic")
			}
		}()
		executor.Define("bar", Func(func() {}).Alias("foo"))
	}()
}

func TestAlias(t *testing.T) {
	executor := NewExecutor()
	var file string
	executor.Define("-file", Func(func(s string) {
		file = s
	}).Alias("-f"))
	if err := executor.Execute([]string{"-f", "a.mk"}); err != nil {
		t.Fatal(err)
	}
	if file != "a.mk" {
		t.Fatalf("got %q", file)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	if err := executor.Execute([]string{"foo", "42", "foo"}); err != nil {
		t.Fatal(err)
	}
	if n != 42 || s != "foo" {
		t.Fatalf("got %v %q", n, s)
	}

	if err := executor.Execute([]string{"foo", "99"}); err != nil {
		t.Fatal(err)
	}
	if n != 99 || s != "" {
		t.Fatalf("got %v %q", n, s)
	}

	if err := executor.Execute([]string{"foo"}); err != nil {
		t.Fatal(err)
	}
	if n != 0 || s != "" {
		t.Fatalf("got %v %q", n, s)
	}
}

func TestFuncPanics(t *testing.T) {
	for _, fn := range []any{
		42,
		func() int { return 1 },
		func() (error, error) { return nil, nil },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("should panic: %T", fn)
				}
			}()
			Func(fn)
		}()
	}
}
