package fields

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	hjson "github.com/hjson/hjson-go/v4"
)

// templateFile is the on-disk shape of a rule template. HJSON is used so
// template authors can annotate patterns with comments, which matters when
// two report families disagree on wording for the same field.
type templateFile struct {
	Template string `json:"template"`
	Fields   []struct {
		Name      string `json:"name"`
		Pattern   string `json:"pattern"`
		Transform string `json:"transform"`
	} `json:"fields"`
}

// LoadTemplate reads and compiles one rule template file.
func LoadTemplate(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}

	var tf templateFile
	if err := hjson.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", path, err)
	}
	if tf.Template == "" {
		return nil, fmt.Errorf("template %s has no template name", path)
	}

	rs := &RuleSet{Template: tf.Template}
	seen := make(map[string]bool)
	for _, f := range tf.Fields {
		if f.Name == "" || f.Pattern == "" {
			return nil, fmt.Errorf("template %s: field entries need both name and pattern", path)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("template %s: duplicate field %q", path, f.Name)
		}
		seen[f.Name] = true

		pattern, err := regexp.Compile(f.Pattern)
		if err != nil {
			return nil, fmt.Errorf("template %s: field %q: %w", path, f.Name, err)
		}
		transform, ok := transforms[f.Transform]
		if !ok {
			return nil, fmt.Errorf("template %s: field %q: unknown transform %q", path, f.Name, f.Transform)
		}
		rs.Rules = append(rs.Rules, Rule{Field: f.Name, Pattern: pattern, Transform: transform})
	}
	return rs, nil
}

// LoadDir loads every .hjson template in dir, keyed by template name.
// Built-in templates are the fallback when the directory is missing.
func LoadDir(dir string) (map[string]*RuleSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	sets := make(map[string]*RuleSet)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".hjson") {
			continue
		}
		rs, err := LoadTemplate(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if _, dup := sets[rs.Template]; dup {
			return nil, fmt.Errorf("duplicate template name %q in %s", rs.Template, dir)
		}
		sets[rs.Template] = rs
	}
	if len(sets) == 0 {
		return nil, fmt.Errorf("no templates found in %s", dir)
	}
	return sets, nil
}
