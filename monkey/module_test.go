package monkey

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/monkeyfront/logs"
)

func TestModuleParseSource(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() logs.Writer {
			return buf
		},
	).Call(func(
		parseSource ParseSource,
	) {
		program, errs := parseSource(t.Context(), "test.mk", "let x = 1; let y 2;")
		if len(errs) != 1 || !errors.Is(errs[0], ErrAssignExpected) {
			t.Fatalf("got %v", errs)
		}
		if str := program.String(); str != "let x = 1;2;" {
			t.Fatalf("got %s", str)
		}
		if !strings.Contains(buf.String(), "parse error") {
			t.Fatalf("got %s", buf.String())
		}
		if !strings.Contains(buf.String(), "source=test.mk") {
			t.Fatalf("got %s", buf.String())
		}
	})
}
