package intent

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk format for custom intent files.
type catalogFile struct {
	Intents []Intent `yaml:"intents"`
}

// LoadDir reads custom intents from every YAML file under dir (matched
// with a ** glob, so subdirectories work). Files are visited in sorted
// path order to keep catalog priority stable across runs. A missing
// directory yields an empty slice, not an error.
func LoadDir(dir string) ([]Intent, error) {
	if dir == "" {
		return nil, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	fsys := os.DirFS(dir)
	matches, err := doublestar.Glob(fsys, "**/*.{yml,yaml}")
	if err != nil {
		return nil, fmt.Errorf("globbing intent files in %s: %w", dir, err)
	}
	sort.Strings(matches)

	var intents []Intent
	for _, rel := range matches {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading intent file %s: %w", path, err)
		}

		var f catalogFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing intent file %s: %w", path, err)
		}

		for _, in := range f.Intents {
			if err := validate(in); err != nil {
				return nil, fmt.Errorf("intent file %s: %w", path, err)
			}
			intents = append(intents, normalize(in))
		}
	}
	return intents, nil
}

// Merge appends extras after base, skipping extras whose name collides
// with an earlier intent. Base intents therefore keep match priority.
func Merge(base, extras []Intent) []Intent {
	seen := make(map[string]bool, len(base))
	merged := make([]Intent, 0, len(base)+len(extras))
	for _, in := range base {
		seen[in.Name] = true
		merged = append(merged, in)
	}
	for _, in := range extras {
		if seen[in.Name] {
			continue
		}
		seen[in.Name] = true
		merged = append(merged, in)
	}
	return merged
}

func validate(in Intent) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("intent with empty name")
	}
	if len(in.Triggers) == 0 {
		return fmt.Errorf("intent %q has no triggers", in.Name)
	}
	for _, trigger := range in.Triggers {
		if strings.TrimSpace(trigger) == "" {
			return fmt.Errorf("intent %q has an empty trigger", in.Name)
		}
	}
	return nil
}

// normalize lower-cases triggers so matching stays case-insensitive
// regardless of how the file was authored.
func normalize(in Intent) Intent {
	triggers := make([]string, len(in.Triggers))
	for i, trigger := range in.Triggers {
		triggers[i] = strings.ToLower(strings.TrimSpace(trigger))
	}
	in.Triggers = triggers
	return in
}
