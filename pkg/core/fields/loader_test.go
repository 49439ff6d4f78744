package fields

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleTemplate = `{
  // comment: hjson allows annotating patterns
  template: sample
  fields: [
    {
      name: price_target
      pattern: "(?i)Target Price[:\\s]*\\$?(\\d+\\.?\\d*)"
    }
    {
      name: recommendation
      pattern: "(?i)Rating[:\\s]*(Buy|Sell|Hold)"
      transform: recommendation
    }
  ]
}`

func writeTemplate(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write template: %v", err)
	}
	return path
}

func TestLoadTemplate(t *testing.T) {
	path := writeTemplate(t, t.TempDir(), "sample.hjson", sampleTemplate)

	rs, err := LoadTemplate(path)
	if err != nil {
		t.Fatalf("LoadTemplate failed: %v", err)
	}
	if rs.Template != "sample" {
		t.Errorf("Expected template name sample, got %q", rs.Template)
	}
	if len(rs.Rules) != 2 {
		t.Fatalf("Expected 2 rules, got %d", len(rs.Rules))
	}

	info := rs.Extract("Rating: BUY with Target Price: $120")
	if v, _ := info.Get("recommendation"); v != "Buy" {
		t.Errorf("Expected Buy via loaded transform, got %q", v)
	}
	if v, _ := info.Get("price_target"); v != "120" {
		t.Errorf("Expected 120, got %q", v)
	}
}

func TestLoadTemplateRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	cases := map[string]string{
		"no_name.hjson":   `{ fields: [ { name: a, pattern: "x" } ] }`,
		"bad_regex.hjson": `{ template: t, fields: [ { name: a, pattern: "(" } ] }`,
		"dup_field.hjson": `{ template: t, fields: [ { name: a, pattern: "x" }, { name: a, pattern: "y" } ] }`,
		"bad_xform.hjson": `{ template: t, fields: [ { name: a, pattern: "x", transform: nope } ] }`,
	}
	for name, content := range cases {
		path := writeTemplate(t, dir, name, content)
		if _, err := LoadTemplate(path); err == nil {
			t.Errorf("Expected error for %s", name)
		}
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "sample.hjson", sampleTemplate)
	writeTemplate(t, dir, "ignored.txt", "not a template")

	sets, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if len(sets) != 1 {
		t.Fatalf("Expected 1 template, got %d", len(sets))
	}
	if _, ok := sets["sample"]; !ok {
		t.Error("Expected sample template present")
	}
}

func TestLoadDirEmpty(t *testing.T) {
	if _, err := LoadDir(t.TempDir()); err == nil {
		t.Error("Expected error for empty template dir")
	}
}
