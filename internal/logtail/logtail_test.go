package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestTail(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "marquee.log")

	var content strings.Builder
	var all []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("line %d", i)
		content.WriteString(line + "\n")
		all = append(all, line)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "zero", maxLines: 0, expected: nil},
		{name: "negative", maxLines: -1, expected: nil},
		{name: "partial", maxLines: 5, expected: all[5:]},
		{name: "exact", maxLines: 10, expected: all},
		{name: "more than exists", maxLines: 20, expected: all},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tail(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Tail returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("Tail(%d) = %v, want %v", tt.maxLines, got, tt.expected)
			}
		})
	}
}

func TestTailMissingFile(t *testing.T) {
	got, err := Tail(filepath.Join(t.TempDir(), "absent.log"), 5)
	if err != nil {
		t.Fatalf("Tail returned error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil lines, got %v", got)
	}
}

func TestTailSkipsBlankLines(t *testing.T) {
	got, err := tail(strings.NewReader("a\n\n  \nb\n"), 5)
	if err != nil {
		t.Fatalf("tail returned error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("tail = %v", got)
	}
}

func TestFormat(t *testing.T) {
	line := `{"time":"2026-01-02T03:04:05Z","level":"WARN","msg":"fetch movies failed","error":"dial tcp: refused","view":3}`
	got := Format(line)
	for _, want := range []string{"WARN", "fetch movies failed", `error="dial tcp: refused"`, "view=3"} {
		if !strings.Contains(got, want) {
			t.Fatalf("Format = %q, missing %q", got, want)
		}
	}
	if strings.Index(got, "error=") > strings.Index(got, "view=") {
		t.Fatalf("attributes not sorted: %q", got)
	}
}

func TestFormatPassesThroughPlainText(t *testing.T) {
	if got := Format("not json"); got != "not json" {
		t.Fatalf("Format = %q", got)
	}
}
