package configs

import (
	"errors"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/monkeyfront/monkey"
)

type testInt int

var _ Configurable = testInt(0)

func (testInt) ConfigName() string {
	return "test_int"
}

type testBool bool

var _ Configurable = testBool(false)

func (testBool) ConfigName() string {
	return "test_bool"
}

type testInt8 int8

var _ Configurable = testInt8(0)

func (testInt8) ConfigName() string {
	return "test_int8"
}

func newTestScope() dscope.Scope {
	return dscope.New(
		dscope.Provide(testInt(1)),
		dscope.Provide(testBool(false)),
		dscope.Provide(testInt8(0)),
	)
}

func TestMonkeyFork(t *testing.T) {
	program, err := monkey.Parse(`
	let test_int = 42;
	let other = 1;
	let test_bool = true;
	let test_int = -3;
	test_int;
	`)
	if err != nil {
		t.Fatal(err)
	}

	scope, err := MonkeyFork(newTestScope(), program)
	if err != nil {
		t.Fatal(err)
	}

	if i := dscope.Get[testInt](scope); i != -3 {
		t.Fatalf("got %v", i)
	}
	if b := dscope.Get[testBool](scope); b != true {
		t.Fatalf("got %v", b)
	}
	if i := dscope.Get[testInt8](scope); i != 0 {
		t.Fatalf("got %v", i)
	}
}

func TestMonkeyForkUnsupportedValue(t *testing.T) {
	for _, src := range []string{
		`let test_int = true;`,
		`let test_int = 1 + 2;`,
		`let test_int = !1;`,
		`let test_bool = 1;`,
		`let test_int8 = 1000;`,
	} {
		program, err := monkey.Parse(src)
		if err != nil {
			t.Fatal(err)
		}
		_, err = MonkeyFork(newTestScope(), program)
		if !errors.Is(err, ErrUnsupportedConfigValue) {
			t.Fatalf("%s: got %v", src, err)
		}
	}
}

func TestMonkeyForkNoBindings(t *testing.T) {
	program, err := monkey.Parse(`let x = 1;`)
	if err != nil {
		t.Fatal(err)
	}
	scope := newTestScope()
	forked, err := MonkeyFork(scope, program)
	if err != nil {
		t.Fatal(err)
	}
	if i := dscope.Get[testInt](forked); i != 1 {
		t.Fatalf("got %v", i)
	}
}
