// Package category assembles the keyword tables the parser classifies
// against, merging operator-provided overrides over the built-in defaults.
package category

import (
	"strings"

	"voicetask/pkg/voiceparse"
)

// Catalog is the effective set of categories known to the service.
type Catalog struct {
	tables voiceparse.Tables
}

// NewCatalog builds a catalog from the default tables plus overrides.
// An override with the same name as a built-in category replaces its
// trigger list entirely; new names are appended in declaration order so
// the parser's tie-break stays deterministic.
func NewCatalog(overrides []voiceparse.CategoryTriggers) *Catalog {
	tables := voiceparse.DefaultTables()

	for _, ov := range overrides {
		name := strings.ToLower(strings.TrimSpace(ov.Name))
		if name == "" || len(ov.Triggers) == 0 {
			continue
		}
		triggers := normalizeTriggers(ov.Triggers)
		replaced := false
		for i := range tables.Categories {
			if tables.Categories[i].Name == name {
				tables.Categories[i].Triggers = triggers
				replaced = true
				break
			}
		}
		if !replaced {
			tables.Categories = append(tables.Categories, voiceparse.CategoryTriggers{
				Name:     name,
				Triggers: triggers,
			})
		}
	}

	return &Catalog{tables: tables}
}

// Tables returns the merged keyword tables for parser construction.
func (c *Catalog) Tables() voiceparse.Tables {
	return c.tables
}

// Names lists the category names in classification order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.tables.Categories))
	for _, cat := range c.tables.Categories {
		names = append(names, cat.Name)
	}
	return names
}

// Known reports whether name is a category the catalog classifies into.
func (c *Catalog) Known(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, cat := range c.tables.Categories {
		if cat.Name == name {
			return true
		}
	}
	return false
}

func normalizeTriggers(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, t := range in {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
