package frontconfigs

import (
	"github.com/reusee/monkeyfront/cmds"
	"github.com/reusee/monkeyfront/configs"
)

type PrintTokens bool

var _ configs.Configurable = PrintTokens(false)

func (PrintTokens) ConfigName() string {
	return "print_tokens"
}

// nil when not given
var printTokensFlag *bool

func init() {
	cmds.Define("-tokens", cmds.Func(func() {
		v := true
		printTokensFlag = &v
	}).Desc("print tokens instead of the parsed program"))
	cmds.Define("!-tokens", cmds.Func(func() {
		v := false
		printTokensFlag = &v
	}))
}

func (Module) PrintTokens(
	loader configs.Loader,
) PrintTokens {
	if printTokensFlag != nil {
		return PrintTokens(*printTokensFlag)
	}
	return PrintTokens(configs.First[bool](loader, PrintTokens(false).ConfigName()))
}
