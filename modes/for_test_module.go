package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForTest keeps scopes away from host state such as user config files.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (m ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
