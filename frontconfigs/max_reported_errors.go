package frontconfigs

import (
	"github.com/reusee/monkeyfront/cmds"
	"github.com/reusee/monkeyfront/configs"
	"github.com/reusee/monkeyfront/vars"
)

type MaxReportedErrors int

var _ configs.Configurable = MaxReportedErrors(0)

func (MaxReportedErrors) ConfigName() string {
	return "max_reported_errors"
}

const defaultMaxReportedErrors = 10

var maxReportedErrorsFlag int

func init() {
	cmds.Define("-max-errors", cmds.Func(func(n int) {
		maxReportedErrorsFlag = n
	}).Desc("maximum number of errors printed per source"))
}

func (Module) MaxReportedErrors(
	loader configs.Loader,
) MaxReportedErrors {
	return MaxReportedErrors(vars.FirstNonZero(
		max(maxReportedErrorsFlag, 0),
		configs.First[int](loader, MaxReportedErrors(0).ConfigName()),
		defaultMaxReportedErrors,
	))
}
