// Package frontmatter parses and formats the YAML metadata block that
// opens every SKILL.md manifest.
//
// A metadata block is delimited by lines containing only "---". The content
// between the delimiters is unmarshaled as YAML; everything after the
// closing delimiter is the manifest body. Both LF and CRLF line endings are
// accepted.
package frontmatter

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for manifest parsing.
var (
	// ErrMissingFrontmatter is returned when the content does not begin
	// with an opening "---" delimiter.
	ErrMissingFrontmatter = errors.New("missing frontmatter")

	// ErrUnclosedFrontmatter is returned when the opening delimiter is
	// never matched by a closing "---".
	ErrUnclosedFrontmatter = errors.New("missing closing frontmatter delimiter")
)

// Parse extracts the YAML frontmatter and body from a reader.
// The frontmatter block is required; a document without one is an error.
func Parse[T any](r io.Reader, matter *T) (body []byte, err error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if !bytes.HasPrefix(content, []byte("---\n")) && !bytes.HasPrefix(content, []byte("---\r\n")) {
		return nil, ErrMissingFrontmatter
	}

	// Skip the opening delimiter line.
	rest := content[3:]
	if len(rest) > 0 && rest[0] == '\r' {
		rest = rest[1:]
	}
	if len(rest) > 0 && rest[0] == '\n' {
		rest = rest[1:]
	}

	// Find the closing "---" on its own line.
	parts := bytes.SplitN(rest, []byte("\n---"), 2)
	if len(parts) < 2 {
		parts = bytes.SplitN(rest, []byte("\r\n---"), 2)
	}
	if len(parts) < 2 {
		return nil, ErrUnclosedFrontmatter
	}

	if err := yaml.Unmarshal(parts[0], matter); err != nil {
		return nil, errors.Wrap(err, "unmarshaling frontmatter")
	}

	body = parts[1]
	if len(body) > 0 && body[0] == '\r' {
		body = body[1:]
	}
	if len(body) > 0 && body[0] == '\n' {
		body = body[1:]
	}

	return body, nil
}

// ParseHeader reads only the frontmatter block, stopping at the closing
// delimiter without consuming the body. This keeps directory listings cheap
// for manifests with large instruction bodies.
//
// A document without an opening delimiter is not an error; matter is left
// untouched so the caller can fall back to defaults.
func ParseHeader(r io.Reader, matter any) error {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return scanner.Err()
	}
	if strings.TrimSpace(scanner.Text()) != "---" {
		return nil
	}

	var buf bytes.Buffer
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			return yaml.Unmarshal(buf.Bytes(), matter)
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	if err := scanner.Err(); err != nil {
		return err
	}
	return ErrUnclosedFrontmatter
}

// Format renders matter as a YAML frontmatter block followed by body.
func Format(matter any, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(matter); err != nil {
		return nil, errors.Wrap(err, "encoding frontmatter")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "closing encoder")
	}

	buf.WriteString("---\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}

	return buf.Bytes(), nil
}
