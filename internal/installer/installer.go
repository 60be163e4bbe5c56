// Package installer reconciles a destination root's installed skills with
// the skills available under a source root.
//
// All operations are sequential and best-effort: a failure on one skill is
// recorded and the batch continues. The source root is never mutated.
package installer

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/skillpack/skillpack/internal/logging"
	"github.com/skillpack/skillpack/internal/paths"
	"github.com/skillpack/skillpack/internal/skill"
)

// Sentinel errors for install operations.
var (
	// ErrSkillNotFound indicates the named skill is absent from the root
	// relevant to the operation (source for install, destination for
	// uninstall).
	ErrSkillNotFound = errors.New("skill not found")

	// ErrInvalidSkill indicates the skill directory exists but lacks a
	// manifest file.
	ErrInvalidSkill = errors.New("invalid skill: missing " + skill.ManifestName)
)

// Result describes the outcome of a single-skill operation.
type Result string

// Result values.
const (
	ResultInstalled   Result = "installed"
	ResultUninstalled Result = "uninstalled"
	// ResultSkipped means the user declined the overwrite prompt.
	// It is a normal outcome, not an error.
	ResultSkipped Result = "skipped"
)

// ConfirmFunc decides whether an existing destination entry may be
// overwritten. It blocks until an answer is available.
type ConfirmFunc func(name string) bool

// Option configures an Installer.
type Option func(*Installer)

// WithConfirm sets the overwrite confirmation function.
func WithConfirm(f ConfirmFunc) Option {
	return func(i *Installer) { i.confirm = f }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Installer) { i.logger = logger }
}

// WithReceipt enables or disables maintenance of the install receipt in the
// destination root.
func WithReceipt(enabled bool) Option {
	return func(i *Installer) { i.receipt = enabled }
}

// Installer copies skill directories from a source root into a destination
// root and removes them again.
type Installer struct {
	sourceRoot string
	destRoot   string
	confirm    ConfirmFunc
	logger     *slog.Logger
	receipt    bool
}

// New creates an Installer for the given roots.
// By default overwrites are declined and receipts are maintained.
func New(sourceRoot, destRoot string, opts ...Option) *Installer {
	i := &Installer{
		sourceRoot: sourceRoot,
		destRoot:   destRoot,
		confirm:    func(string) bool { return false },
		logger:     logging.NewDiscard(),
		receipt:    true,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// SourceRoot returns the directory skills are read from.
func (i *Installer) SourceRoot() string { return i.sourceRoot }

// DestRoot returns the directory skills are installed into.
func (i *Installer) DestRoot() string { return i.destRoot }

// ListAvailable scans the immediate subdirectories of the source root and
// returns a summary for every directory that carries a manifest, sorted by
// name. Directories without a manifest are silently excluded. A manifest
// whose frontmatter cannot be parsed still qualifies the directory as a
// skill; its summary just has an empty description.
func (i *Installer) ListAvailable() ([]skill.Summary, error) {
	entries, err := os.ReadDir(i.sourceRoot)
	if err != nil {
		return nil, errors.Wrapf(err, "reading source root %s", i.sourceRoot)
	}

	summaries := make([]skill.Summary, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := filepath.Join(i.sourceRoot, entry.Name())
		if !skill.HasManifest(dir) {
			continue
		}

		// Manifest presence alone qualifies a skill; a frontmatter parse
		// failure must not hide it from the listing, or list would disagree
		// with install about what exists.
		var description string
		if s, err := skill.ParseHeader(dir); err != nil {
			i.logger.Warn("failed to parse skill manifest", "skill", entry.Name(), "error", err)
		} else {
			description = s.Description
		}

		summaries = append(summaries, skill.Summary{
			Name:        entry.Name(),
			Description: description,
			Dir:         dir,
		})
	}

	sort.Slice(summaries, func(a, b int) bool { return summaries[a].Name < summaries[b].Name })
	return summaries, nil
}

// Install copies the named skill from the source root into the destination
// root. An existing destination entry is replaced only after confirmation;
// a declined prompt returns ResultSkipped with a nil error.
func (i *Installer) Install(name string) (Result, error) {
	srcDir := filepath.Join(i.sourceRoot, name)

	info, err := os.Stat(srcDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errors.Wrapf(ErrSkillNotFound, "%s", name)
		}
		return "", errors.Wrapf(err, "checking source %s", srcDir)
	}
	if !info.IsDir() {
		return "", errors.Wrapf(ErrSkillNotFound, "%s", name)
	}
	if !skill.HasManifest(srcDir) {
		return "", errors.Wrapf(ErrInvalidSkill, "%s", name)
	}

	dstDir := filepath.Join(i.destRoot, name)
	if _, err := os.Stat(dstDir); err == nil {
		if !i.confirm(name) {
			i.logger.Info("skipped existing skill", "skill", name)
			return ResultSkipped, nil
		}
		if err := os.RemoveAll(dstDir); err != nil {
			return "", errors.Wrapf(err, "removing existing %s", dstDir)
		}
	}

	if err := paths.EnsureDir(dstDir, 0); err != nil {
		return "", errors.Wrapf(err, "creating destination %s", dstDir)
	}
	if err := copyDir(srcDir, dstDir); err != nil {
		return "", errors.Wrapf(err, "copying skill %s", name)
	}

	if i.receipt {
		if err := i.recordInstall(name, srcDir); err != nil {
			i.logger.Warn("failed to update install receipt", "skill", name, "error", err)
		}
	}

	i.logger.Info("installed skill", "skill", name, "dest", dstDir)
	return ResultInstalled, nil
}

// Uninstall recursively deletes the named skill from the destination root.
func (i *Installer) Uninstall(name string) (Result, error) {
	dstDir := filepath.Join(i.destRoot, name)

	if _, err := os.Stat(dstDir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errors.Wrapf(ErrSkillNotFound, "%s", name)
		}
		return "", errors.Wrapf(err, "checking destination %s", dstDir)
	}

	if err := os.RemoveAll(dstDir); err != nil {
		return "", errors.Wrapf(err, "removing %s", dstDir)
	}

	if i.receipt {
		if err := i.recordUninstall(name); err != nil {
			i.logger.Warn("failed to update install receipt", "skill", name, "error", err)
		}
	}

	i.logger.Info("uninstalled skill", "skill", name)
	return ResultUninstalled, nil
}

// Failure records a per-skill batch failure.
type Failure struct {
	Name string
	Err  error
}

// Report tallies a batch operation. A failure on one skill never aborts
// the rest of the batch.
type Report struct {
	Succeeded int
	Skipped   int
	Failures  []Failure
}

// Failed returns the number of skills that failed.
func (r *Report) Failed() int { return len(r.Failures) }

// InstallAll installs every immediate subdirectory of the source root,
// valid or not, so invalid skills surface as counted failures.
func (i *Installer) InstallAll() (*Report, error) {
	names, err := i.sourceDirNames()
	if err != nil {
		return nil, err
	}
	return i.applyAll(names, i.Install), nil
}

// UninstallAll uninstalls every skill named by the source root from the
// destination root.
func (i *Installer) UninstallAll() (*Report, error) {
	names, err := i.sourceDirNames()
	if err != nil {
		return nil, err
	}
	return i.applyAll(names, i.Uninstall), nil
}

func (i *Installer) applyAll(names []string, op func(string) (Result, error)) *Report {
	report := &Report{}
	for _, name := range names {
		result, err := op(name)
		if err != nil {
			i.logger.Warn("skill operation failed", "skill", name, "error", err)
			report.Failures = append(report.Failures, Failure{Name: name, Err: err})
			continue
		}
		if result == ResultSkipped {
			report.Skipped++
			continue
		}
		report.Succeeded++
	}
	return report
}

// sourceDirNames returns the sorted names of all immediate subdirectories
// of the source root.
func (i *Installer) sourceDirNames() ([]string, error) {
	entries, err := os.ReadDir(i.sourceRoot)
	if err != nil {
		return nil, errors.Wrapf(err, "reading source root %s", i.sourceRoot)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
