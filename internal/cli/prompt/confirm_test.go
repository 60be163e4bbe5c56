package prompt

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lowercase y", "y\n", true},
		{"yes word", "yes\n", true},
		{"uppercase yes", "YES\n", true},
		{"padded yes", "  y  \n", true},
		{"n", "n\n", false},
		{"no", "no\n", false},
		{"empty defaults to no", "\n", false},
		{"garbage", "sure why not\n", false},
		{"eof", "", false},
		{"yes without trailing newline", "y", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewWithIO(strings.NewReader(tt.input), &out)

			got := p.Confirm("Overwrite %q?", "demo")
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
			if !strings.Contains(out.String(), `Overwrite "demo"?`) {
				t.Errorf("prompt text missing: %q", out.String())
			}
			if !strings.Contains(out.String(), "[y/N]") {
				t.Errorf("prompt should show the default: %q", out.String())
			}
		})
	}
}
