package database

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"

	"github.com/jjmunozz/StrategicTeam-SGC/models"
	"gopkg.in/yaml.v3"
)

//go:embed seed/requisitos.yaml
var requirementSeed []byte

type seedFile struct {
	Requirements []models.Requirement `yaml:"requisitos"`
}

// LoadRequirementSeed parses the embedded ISO 9001 questionnaire.
func LoadRequirementSeed() ([]models.Requirement, error) {
	return parseRequirementSeed(requirementSeed)
}

func parseRequirementSeed(data []byte) ([]models.Requirement, error) {
	var file seedFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode requirement seed: %w", err)
	}

	for i, r := range file.Requirements {
		if r.Chapter < models.FirstChapter || r.Chapter > models.LastChapter {
			return nil, fmt.Errorf("requirement seed entry %d: chapter %d out of range", i, r.Chapter)
		}
		if r.Numeral == "" || r.Question == "" {
			return nil, fmt.Errorf("requirement seed entry %d: numeral and question are required", i)
		}
	}
	return file.Requirements, nil
}

// SeedRequirements loads the questionnaire into an empty catalog. It is safe
// to call on every start: a populated catalog is never touched.
func (d Database) SeedRequirements(ctx context.Context) (int, error) {
	requirements, err := LoadRequirementSeed()
	if err != nil {
		return 0, err
	}
	return d.requirementRepo.Seed(ctx, requirements)
}
