package wizard

import (
	"fmt"
	"io"
	"os"

	"github.com/mrsinham/reportforge/cmd/reportforge/wizard/types"
	"gopkg.in/yaml.v3"
)

// Draft represents a saved form for YAML serialization.
type Draft struct {
	Name      string `yaml:"name"`
	ID        string `yaml:"id"`
	BirthDate string `yaml:"birth_date,omitempty"`
	Sex       string `yaml:"sex,omitempty"`
	Study     string `yaml:"study,omitempty"`
	Report    string `yaml:"report,omitempty"`
}

// LoadFromYAML reads a draft file and returns the form state it describes.
func LoadFromYAML(path string) (*types.FormState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading draft: %w", err)
	}

	var d Draft
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing draft %s: %w", path, err)
	}

	return &types.FormState{
		Name:      d.Name,
		ID:        d.ID,
		BirthDate: d.BirthDate,
		Sex:       d.Sex,
		Study:     d.Study,
		Report:    d.Report,
	}, nil
}

// SaveToYAML writes the form state to path.
func SaveToYAML(state *types.FormState, path string) error {
	data, err := encodeDraft(state)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing draft: %w", err)
	}
	return nil
}

// WriteYAML writes the form state as a draft document to w.
func WriteYAML(w io.Writer, state *types.FormState) error {
	data, err := encodeDraft(state)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func encodeDraft(state *types.FormState) ([]byte, error) {
	d := Draft{
		Name:      state.Name,
		ID:        state.ID,
		BirthDate: state.BirthDate,
		Sex:       state.Sex,
		Study:     state.Study,
		Report:    state.Report,
	}

	data, err := yaml.Marshal(&d)
	if err != nil {
		return nil, fmt.Errorf("encoding draft: %w", err)
	}
	return data, nil
}
