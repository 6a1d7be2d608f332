package service

import "github.com/carson-networks/hustle-tracker/internal/core"

// SourceInput is an unvalidated create request. Empty Type means SIDE_HUSTLE.
type SourceInput struct {
	Name        string
	Type        string
	Platform    string
	Description string
}

func (in *SourceInput) validate() (core.SourceType, error) {
	verr := &ValidationError{Message: "Validation failed"}

	if in.Name == "" {
		verr.add("name", "is required")
	}

	sourceType := core.SourceType(in.Type)
	switch sourceType {
	case "":
		sourceType = core.SourceTypeSideHustle
	case core.SourceTypeSideHustle:
	case core.SourceTypePersonal:
		verr.add("type", "only one PERSONAL source may exist")
	default:
		verr.add("type", "must be SIDE_HUSTLE")
	}

	return sourceType, verr.orNil()
}
