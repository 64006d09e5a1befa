package frontconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/monkeyfront/cmds"
	"github.com/reusee/monkeyfront/configs"
	"github.com/reusee/monkeyfront/logs"
	"github.com/reusee/monkeyfront/modes"
)

//go:embed schema.cue
var schema string

var configFiles []string

func init() {
	cmds.Define("-config", cmds.Func(func(path string) {
		configFiles = append(configFiles, path)
	}).Desc("load cue config file"))
}

// ConfigsLoader loads explicit -config files first, then discovered ones.
// Discovery is skipped outside production so tests never read host files.
func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {

	paths := append([]string(nil), configFiles...)
	if mode == modes.ModeProduction {
		paths = append(paths, discover(searchDirs(), []string{
			"monkey.cue",
			".monkey.cue",
		})...)
	}

	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}

// searchDirs returns working directory, user config dir and /etc, in that order.
func searchDirs() (ret []string) {
	if workingDir, err := os.Getwd(); err == nil {
		ret = append(ret, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		ret = append(ret, configDir)
	}
	ret = append(ret, "/etc")
	return
}

func discover(dirs []string, filenames []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			info, err := os.Stat(path)
			if err != nil || info.IsDir() {
				continue
			}
			paths = append(paths, path)
		}
	}
	return
}
