package source

import "github.com/carson-networks/hustle-tracker/internal/core"

// Source is the API response model for a source.
type Source struct {
	ID          string `json:"id" doc:"Source id; personal for the built-in source"`
	Name        string `json:"name" doc:"Display name"`
	Type        string `json:"type" enum:"PERSONAL,SIDE_HUSTLE" doc:"Source type"`
	Platform    string `json:"platform,omitempty" doc:"Where the side hustle runs"`
	Description string `json:"description,omitempty" doc:"Free text description"`
}

func fromCore(s *core.Source) Source {
	return Source{
		ID:          s.ID,
		Name:        s.Name,
		Type:        string(s.Type),
		Platform:    s.Platform,
		Description: s.Description,
	}
}
