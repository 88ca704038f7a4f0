package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for docgen
	EnvConfigDir = "DOCGEN_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for docgen
	EnvStateDir = "DOCGEN_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Well-known names. These define docgen's on-disk layout and are not
// user-configurable; user-facing settings belong in pkg/config.
const (
	// AppDirName is the directory name for docgen-specific files
	AppDirName = "docgen"

	// ConfigFileName is the name of the runtime configuration file
	ConfigFileName = "docgen.toml"

	// LogFileName is the name of the log file
	LogFileName = "docgen.log"

	// OutputPrefix is prepended to generated document names, matching the
	// 格式化_<stem> convention users expect from the save dialog.
	OutputPrefix = "格式化_"
)

// ConfigDir returns the directory docgen reads its runtime configuration
// from: $DOCGEN_CONFIG_DIR if set, else $XDG_CONFIG_HOME/docgen.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFilePath returns the path of the runtime configuration file inside
// ConfigDir. The file is optional; pkg/config falls back to embedded
// defaults when it does not exist.
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the directory for mutable state such as log files:
// $DOCGEN_STATE_DIR if set, else $XDG_STATE_HOME/docgen.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the path of the docgen log file.
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// DefaultOutputPath derives the output document path for an input file:
// the same directory, the stem prefixed with 格式化_, and the extension
// replaced by ext (".docx", ".pdf", ...).
//
//	DefaultOutputPath("/tmp/报告.txt", ".docx") → "/tmp/格式化_报告.docx"
func DefaultOutputPath(inputPath, ext string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}
	return filepath.Join(dir, OutputPrefix+stem+ext)
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something refers to another user's home; leave it alone.
	return path
}
