// Package parameters loads parameter sets from YAML files.
package parameters

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/guttosm/lysate-impact/internal/domain/model"
	"gopkg.in/yaml.v3"
)

// Load reads a parameter set from a YAML file. Fields absent from the file keep
// their published defaults, so a file may override only what it needs.
func Load(path string) (model.ParameterSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.ParameterSet{}, model.NewError(model.KindConfiguration, "read parameters file", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of the default parameter set and validates the result.
func Parse(data []byte) (model.ParameterSet, error) {
	p := model.DefaultParameters()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return model.ParameterSet{}, model.NewError(model.KindConfiguration, "parse parameters YAML", err)
	}
	if err := p.Validate(); err != nil {
		return model.ParameterSet{}, err
	}
	return p, nil
}

// LoadOrDefault returns the default parameter set when path is empty and
// otherwise behaves like Load.
func LoadOrDefault(path string) (model.ParameterSet, error) {
	if path == "" {
		return model.DefaultParameters(), nil
	}
	p, err := Load(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return model.ParameterSet{}, fmt.Errorf("parameters file %q not found: %w", path, err)
	}
	return p, err
}
