package section

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFromFile loads beam definitions from a JSON or YAML file. The format
// is chosen by extension (.yaml/.yml, otherwise JSON). Records are returned
// as written; semantic checks are left to Validate.
func LoadFromFile(path string) ([]BeamInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(doc.Beams) == 0 {
		return nil, fmt.Errorf("parse %s: no beams defined", path)
	}

	return doc.Beams, nil
}
