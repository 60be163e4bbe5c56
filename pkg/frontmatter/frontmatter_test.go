package frontmatter

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

type testMeta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantName string
		wantDesc string
		wantBody string
	}{
		{
			name:     "basic frontmatter",
			input:    "---\nname: demo\ndescription: A demo\n---\n\nBody text\n",
			wantName: "demo",
			wantDesc: "A demo",
			wantBody: "Body text\n",
		},
		{
			name:     "crlf line endings",
			input:    "---\r\nname: demo\r\ndescription: A demo\r\n---\r\nBody\r\n",
			wantName: "demo",
			wantDesc: "A demo",
			wantBody: "Body\r\n",
		},
		{
			name:     "empty body",
			input:    "---\nname: demo\ndescription: d\n---\n",
			wantName: "demo",
			wantBody: "",
		},
		{
			name:    "missing opening delimiter",
			input:   "name: demo\n\nBody\n",
			wantErr: ErrMissingFrontmatter,
		},
		{
			name:    "unclosed block",
			input:   "---\nname: demo\n",
			wantErr: ErrUnclosedFrontmatter,
		},
		{
			name:    "invalid yaml",
			input:   "---\nname: [unbalanced\n---\nBody\n",
			wantErr: nil, // any error is fine, checked separately
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var meta testMeta
			body, err := Parse(strings.NewReader(tt.input), &meta)

			if tt.name == "invalid yaml" {
				if err == nil {
					t.Fatal("expected error for invalid yaml")
				}
				return
			}

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got error %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if meta.Name != tt.wantName {
				t.Errorf("name = %q, want %q", meta.Name, tt.wantName)
			}
			if tt.wantDesc != "" && meta.Description != tt.wantDesc {
				t.Errorf("description = %q, want %q", meta.Description, tt.wantDesc)
			}
			if string(body) != tt.wantBody {
				t.Errorf("body = %q, want %q", string(body), tt.wantBody)
			}
		})
	}
}

func TestParseHeader(t *testing.T) {
	input := "---\nname: demo\ndescription: Only the header is read\n---\n" +
		strings.Repeat("long body line\n", 1000)

	var meta testMeta
	if err := ParseHeader(strings.NewReader(input), &meta); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.Name != "demo" {
		t.Errorf("name = %q, want %q", meta.Name, "demo")
	}
	if meta.Description != "Only the header is read" {
		t.Errorf("description = %q", meta.Description)
	}
}

func TestParseHeaderNoFrontmatter(t *testing.T) {
	var meta testMeta
	if err := ParseHeader(strings.NewReader("just a plain file\n"), &meta); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.Name != "" {
		t.Errorf("expected empty meta, got name %q", meta.Name)
	}
}

func TestParseHeaderUnclosed(t *testing.T) {
	var meta testMeta
	err := ParseHeader(strings.NewReader("---\nname: demo\n"), &meta)
	if !errors.Is(err, ErrUnclosedFrontmatter) {
		t.Fatalf("got %v, want ErrUnclosedFrontmatter", err)
	}
}

func TestFormat(t *testing.T) {
	meta := testMeta{Name: "demo", Description: "A demo"}
	out, err := Format(meta, "Instructions here")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The output must round-trip through Parse.
	var parsed testMeta
	body, err := Parse(strings.NewReader(string(out)), &parsed)
	if err != nil {
		t.Fatalf("round-trip parse failed: %v", err)
	}
	if parsed != meta {
		t.Errorf("round-trip meta = %+v, want %+v", parsed, meta)
	}
	if strings.TrimSpace(string(body)) != "Instructions here" {
		t.Errorf("round-trip body = %q", string(body))
	}
}
