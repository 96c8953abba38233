package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectFile is the file LoadProject looks for in a project directory.
const ProjectFile = "city.yaml"

// Parse decodes neighborhood descriptions from YAML or JSON. The document
// may be a city_data envelope or a bare list of neighborhoods.
func Parse(data []byte) ([]Neighborhood, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing city data: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("parsing city data: empty document")
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.MappingNode:
		var cd CityData
		if err := root.Decode(&cd); err != nil {
			return nil, fmt.Errorf("parsing city data: %w", err)
		}
		return cd.Neighborhoods, nil
	case yaml.SequenceNode:
		var ns []Neighborhood
		if err := root.Decode(&ns); err != nil {
			return nil, fmt.Errorf("parsing city data: %w", err)
		}
		return ns, nil
	default:
		return nil, fmt.Errorf("parsing city data: line %d: expected a city_data mapping or a list of neighborhoods", root.Line)
	}
}

// Load reads neighborhood descriptions from a YAML or JSON file.
func Load(path string) ([]Neighborhood, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading city file: %w", err)
	}
	return Parse(data)
}

// LoadProject loads neighborhood descriptions from a project directory.
// It looks for city.yaml in the given directory.
func LoadProject(projectDir string) ([]Neighborhood, error) {
	return Load(filepath.Join(projectDir, ProjectFile))
}

// LoadPath loads from path, treating it as a project directory if it is one.
func LoadPath(path string) ([]Neighborhood, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading city file: %w", err)
	}
	if fi.IsDir() {
		return LoadProject(path)
	}
	return Load(path)
}
