package list

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a list definition from a YAML file.
func Load(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading list file: %w", err)
	}

	var l List
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing list file %s: %w", path, err)
	}

	if err := l.validate(); err != nil {
		return nil, fmt.Errorf("invalid list file %s: %w", path, err)
	}
	return &l, nil
}

func (l *List) validate() error {
	if l.ID == "" {
		return fmt.Errorf("list_id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("list_name is required")
	}
	for i, item := range l.Items {
		if item.Title == "" {
			return fmt.Errorf("items[%d]: title is required", i)
		}
		if item.MediaType == "" {
			return fmt.Errorf("items[%d] (%s): media_type is required", i, item.Title)
		}
	}
	return nil
}
