package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/monkeyfront/debugs"
	"github.com/reusee/monkeyfront/frontconfigs"
	"github.com/reusee/monkeyfront/logs"
	"github.com/reusee/monkeyfront/monkey"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Monkey  monkey.Module
	Configs frontconfigs.Module
	Debugs  debugs.Module
}
