package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/modes"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"taibf.cue",
	".taibf.cue",
}

// ConfigDirs lists directories searched for config files, most specific first.
type ConfigDirs []string

func (Module) ConfigDirs() ConfigDirs {
	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")
	return dirs
}

func (Module) ConfigsLoader(
	dirs ConfigDirs,
	mode modes.Mode,
	logger logs.Logger,
) configs.Loader {
	var paths []string
	if mode == modes.ModeProduction {
		for _, dir := range dirs {
			for _, filename := range filenames {
				path := filepath.Join(dir, filename)
				if _, err := os.Stat(path); err == nil {
					paths = append(paths, path)
				}
			}
		}
	}
	if len(paths) > 0 {
		logger.Debug("config files", "paths", paths)
	}
	return configs.NewLoader(paths, schema)
}
