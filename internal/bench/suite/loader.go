package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*TestSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*TestSuite, error) {
	var s TestSuite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}
	if s.Runs.Warmup < 0 || s.Runs.Iterations < 0 {
		return nil, fmt.Errorf("runs must not be negative")
	}

	seen := make(map[string]struct{}, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if _, ok := seen[c.ID]; ok {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = struct{}{}

		switch {
		case c.Expect != nil && c.Error != "":
			return nil, fmt.Errorf("case %q sets both expect and error", c.ID)
		case c.Expect == nil && c.Error == "":
			return nil, fmt.Errorf("case %q sets neither expect nor error", c.ID)
		case c.Error != "" && !c.Error.Valid():
			return nil, fmt.Errorf("case %q has unknown error kind %q", c.ID, c.Error)
		}
	}

	return &s, nil
}
