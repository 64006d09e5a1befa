package frontconfigs

import (
	"runtime"

	"github.com/reusee/monkeyfront/cmds"
	"github.com/reusee/monkeyfront/configs"
	"github.com/reusee/monkeyfront/vars"
)

type ParseConcurrency int

var _ configs.Configurable = ParseConcurrency(0)

func (ParseConcurrency) ConfigName() string {
	return "parse_concurrency"
}

var parseConcurrencyFlag int

func init() {
	cmds.Define("-jobs", cmds.Func(func(n int) {
		parseConcurrencyFlag = n
	}).Desc("number of files parsed concurrently"))
}

func (Module) ParseConcurrency(
	loader configs.Loader,
) ParseConcurrency {
	return ParseConcurrency(vars.FirstNonZero(
		max(parseConcurrencyFlag, 0),
		configs.First[int](loader, ParseConcurrency(0).ConfigName()),
		runtime.NumCPU(),
	))
}
