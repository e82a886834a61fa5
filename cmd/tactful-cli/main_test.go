package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jamesainslie/go-tactful/model"
)

func writeTestModel(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	err := model.Save(path, model.Tables{
		JointFeatures: map[string]float64{
			"0,<prior>":    0.5,
			"1,<prior>":    0.5,
			"0,w2cap_True": 0.2,
			"1,w2cap_True": 0.8,
			"0,w2_":        0.1,
			"1,w2_":        0.9,
			"0,w1abbr_6":   0.95,
			"1,w1abbr_6":   0.01,
		},
		LowercaseWords:       map[string]float64{},
		NonAbbreviationWords: map[string]float64{"Dr": 1000},
	})
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("tactful-cli %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestSegmentCommand(t *testing.T) {
	path := writeTestModel(t, "model.json")

	got := run(t, "segment", "--model", path, "Dr. Smith arrived. He was late.")
	want := "Dr. Smith arrived.\nHe was late.\n"
	if got != want {
		t.Errorf("segment output = %q, want %q", got, want)
	}
}

func TestTablesConvert(t *testing.T) {
	src := writeTestModel(t, "model.json")
	dst := filepath.Join(t.TempDir(), "model.db")

	out := run(t, "tables", "convert", src, dst)
	if !strings.Contains(out, "wrote "+dst) {
		t.Errorf("unexpected convert output: %q", out)
	}

	want, err := model.LoadTables(src)
	if err != nil {
		t.Fatalf("LoadTables(src) failed: %v", err)
	}
	got, err := model.LoadTables(dst)
	if err != nil {
		t.Fatalf("LoadTables(dst) failed: %v", err)
	}
	if len(got.JointFeatures) != len(want.JointFeatures) {
		t.Errorf("converted %d joint features, want %d", len(got.JointFeatures), len(want.JointFeatures))
	}
}

func TestWriteSentences(t *testing.T) {
	tests := []struct {
		name           string
		format         string
		withBoundaries bool
		want           string
	}{
		{"text", "text", false, "One.\nTwo.\n"},
		{"text with boundaries", "text", true, "4\tOne.\n9\tTwo.\n"},
		{"json", "json", false, "[\n  \"One.\",\n  \"Two.\"\n]\n"},
		{"json with boundaries", "json", true, "[\n  {\n    \"text\": \"One.\",\n    \"end\": 4\n  },\n  {\n    \"text\": \"Two.\",\n    \"end\": 9\n  }\n]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeSentences(&buf, tt.format, []string{"One.", "Two."}, []int{4, 9}, tt.withBoundaries); err != nil {
				t.Fatalf("writeSentences failed: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("writeSentences() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestWriteSentences_EmptyJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writeSentences(&buf, "json", nil, nil, false); err != nil {
		t.Fatalf("writeSentences failed: %v", err)
	}
	if buf.String() != "[]\n" {
		t.Errorf("writeSentences() = %q, want %q", buf.String(), "[]\n")
	}
}
