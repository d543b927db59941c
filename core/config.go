package core

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	configEnv      = "QSUB2_CONFIG"
	configDir      = "/.config/qsub2/"
	configFilename = "config.toml"
)

// fileDefaults mirrors the optional user config file. Pointer fields keep
// "key absent" distinct from an explicit empty value.
type fileDefaults struct {
	Name     *string `toml:"name"`
	NCPUs    *int    `toml:"ncpus"`
	Mem      *string `toml:"mem"`
	Queue    *string `toml:"queue"`
	Walltime *string `toml:"walltime"`
	Template *string `toml:"template"`
}

// Build path for the user config file.
// Set from environment or fall back to the home directory.
func configPath() (string, error) {
	if env := os.Getenv(configEnv); len(env) > 0 {
		if !fileExist(env) {
			return "", errors.New("qsub2: config not found: " + env)
		}
		return env, nil
	}
	path := os.Getenv("HOME") + configDir + configFilename
	if fileExist(path) {
		return path, nil
	}
	return "", nil
}

// LoadDefaults returns the built-in defaults overlaid with any user config
// file. Precedence is flag > config file > built-in; the first layer is
// applied later by Resolve. A missing config file is not an error, a
// malformed or unreadable one is.
func LoadDefaults() (Defaults, error) {
	defaults := BuiltinDefaults()
	path, err := configPath()
	if err != nil || path == "" {
		return defaults, err
	}

	var file fileDefaults
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return defaults, fmt.Errorf("qsub2: config %s: %v", path, err)
	}
	if file.Name != nil {
		defaults.Name = *file.Name
	}
	if file.NCPUs != nil {
		if *file.NCPUs <= 0 {
			return defaults, fmt.Errorf("qsub2: config %s: ncpus must be a positive integer", path)
		}
		defaults.NCPUs = *file.NCPUs
	}
	if file.Mem != nil {
		defaults.Mem = *file.Mem
	}
	if file.Queue != nil {
		defaults.Queue = *file.Queue
	}
	if file.Walltime != nil {
		defaults.Walltime = *file.Walltime
	}
	if file.Template != nil {
		defaults.Template = *file.Template
	}
	return defaults, nil
}

func fileExist(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
