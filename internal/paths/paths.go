// Package paths resolves the fixed filesystem locations skillpack works
// with: the two installation roots and the tool's own config directory.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is used for config directory naming.
const AppName = "skillpack"

// SkillsSubdir is the directory that holds installed skills inside a
// configuration root.
const SkillsSubdir = "skills"

// configDirName is the per-user configuration directory for the assistant,
// both globally (under $HOME) and per project (under the project root).
const configDirName = ".claude"

// DefaultDirPerm is the permission for newly created skill directories.
const DefaultDirPerm = 0o755

// ErrHomeDirNotFound indicates the user's home directory could not be determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// ResolveHome returns the user's home directory.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// GlobalRoot returns the per-user installation root: ~/.claude/skills.
func GlobalRoot() (string, error) {
	home, err := ResolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, SkillsSubdir), nil
}

// LocalRoot returns the project-local installation root:
// <projectRoot>/.claude/skills.
func LocalRoot(projectRoot string) string {
	return filepath.Join(projectRoot, configDirName, SkillsSubdir)
}

// ConfigDir returns skillpack's own config directory under the XDG config
// home (e.g. ~/.config/skillpack on Linux).
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// EnsureDir creates the directory and any necessary parents.
// Idempotent; returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}
