package frontconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/monkeyfront/logs"
	"github.com/reusee/monkeyfront/monkey"
)

type Module struct {
	dscope.Module
	Logs   logs.Module
	Monkey monkey.Module
}
