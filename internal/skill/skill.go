// Package skill defines the skill data model and manifest parsing.
//
// A skill is a named directory whose root contains a SKILL.md manifest: a
// YAML frontmatter block (name, description, optional extras) followed by
// free-form instructional text. Anything else in the directory (scripts,
// references, assets) is opaque supporting content.
package skill

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/skillpack/skillpack/pkg/fileutil"
	"github.com/skillpack/skillpack/pkg/frontmatter"
)

// ManifestName is the required manifest file at the root of every skill
// directory.
const ManifestName = "SKILL.md"

// Skill is a fully parsed skill manifest.
type Skill struct {
	// Name is the skill's identifier; it must match the directory name.
	Name string `yaml:"name"`

	// Description explains when the skill applies.
	Description string `yaml:"description"`

	// License is an optional license identifier (e.g. MIT).
	License string `yaml:"license,omitempty"`

	// Metadata carries optional free-form key-value pairs.
	Metadata map[string]string `yaml:"metadata,omitempty"`

	// Instructions is the manifest body after the frontmatter block.
	Instructions string `yaml:"-"`
}

// Summary is the lightweight view of a skill used for listings.
type Summary struct {
	// Name is the skill directory name.
	Name string `json:"name"`

	// Description comes from the manifest frontmatter.
	Description string `json:"description"`

	// Dir is the absolute path of the skill directory.
	Dir string `json:"dir"`
}

// ManifestPath returns the manifest location for a skill directory.
func ManifestPath(dir string) string {
	return filepath.Join(dir, ManifestName)
}

// HasManifest reports whether dir directly contains a manifest file.
func HasManifest(dir string) bool {
	info, err := os.Stat(ManifestPath(dir))
	return err == nil && info.Mode().IsRegular()
}

// ParseFile reads and parses a skill's manifest from its directory.
func ParseFile(dir string) (*Skill, error) {
	data, err := fileutil.ReadFileWithLimit(ManifestPath(dir))
	if err != nil {
		return nil, errors.Wrapf(err, "reading manifest in %s", dir)
	}

	var s Skill
	body, err := frontmatter.Parse(bytes.NewReader(data), &s)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing manifest in %s", dir)
	}
	s.Instructions = strings.TrimSpace(string(body))

	return &s, nil
}

// ParseHeader reads only a manifest's frontmatter block, which is enough
// for listings and much cheaper for manifests with long instruction bodies.
// The directory name is used as the fallback when the frontmatter omits name.
func ParseHeader(dir string) (*Skill, error) {
	f, err := os.Open(ManifestPath(dir))
	if err != nil {
		return nil, errors.Wrapf(err, "opening manifest in %s", dir)
	}
	defer f.Close()

	var s Skill
	if err := frontmatter.ParseHeader(f, &s); err != nil {
		return nil, errors.Wrapf(err, "parsing manifest header in %s", dir)
	}
	if s.Name == "" {
		s.Name = filepath.Base(dir)
	}

	return &s, nil
}

// Format renders the skill back into manifest file content.
func (s *Skill) Format() ([]byte, error) {
	meta := struct {
		Name        string            `yaml:"name"`
		Description string            `yaml:"description"`
		License     string            `yaml:"license,omitempty"`
		Metadata    map[string]string `yaml:"metadata,omitempty"`
	}{
		Name:        s.Name,
		Description: s.Description,
		License:     s.License,
		Metadata:    s.Metadata,
	}
	return frontmatter.Format(meta, s.Instructions)
}
