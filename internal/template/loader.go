package template

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFromDirectory loads message templates from YAML files in a directory.
// Files must have a .yaml or .yml extension. Unreadable or malformed files
// are skipped with a warning rather than failing the whole load.
func LoadFromDirectory(dir string, logger *slog.Logger) ([]Template, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		logger.Debug("template directory does not exist, skipping", "dir", dir)
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read template dir: %w", err)
	}

	var templates []Template
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("cannot read template file", "path", path, "err", err)
			continue
		}

		var tpl Template
		if err := yaml.Unmarshal(data, &tpl); err != nil {
			logger.Warn("cannot parse template file", "path", path, "err", err)
			continue
		}

		if tpl.Name == "" {
			tpl.Name = strings.TrimSuffix(name, filepath.Ext(name))
		}

		logger.Debug("loaded template", "name", tpl.Name, "path", path)
		templates = append(templates, tpl)
	}

	return templates, nil
}

// Find returns the template with the given name, if loaded.
func Find(templates []Template, name string) (*Template, bool) {
	for i := range templates {
		if templates[i].Name == name {
			return &templates[i], true
		}
	}
	return nil, false
}
