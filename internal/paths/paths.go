package paths

import (
	"os"
	"path/filepath"
)

// EnvDir overrides the default ~/.chipfilter directory.
const EnvDir = "CHIPFILTER_DIR"

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// Dir returns ~/.chipfilter, or $CHIPFILTER_DIR when set.
func Dir() string {
	if d := os.Getenv(EnvDir); d != "" {
		return d
	}
	return filepath.Join(home(), ".chipfilter")
}

// ConfigFile returns ~/.chipfilter/config.yaml.
func ConfigFile() string {
	return filepath.Join(Dir(), "config.yaml")
}

// LogFile returns ~/.chipfilter/chipfilter.log.
func LogFile() string {
	return filepath.Join(Dir(), "chipfilter.log")
}
