package core

// SourceType distinguishes the personal bucket from side hustles.
type SourceType string

const (
	SourceTypePersonal   SourceType = "PERSONAL"
	SourceTypeSideHustle SourceType = "SIDE_HUSTLE"
)

// PersonalSourceID is the id of the seeded, undeletable source.
const PersonalSourceID = "personal"

// UnknownSourceName is shown for transactions whose source no longer resolves.
const UnknownSourceName = "Unknown Source"

// Source is a named bucket transactions are attributed to.
type Source struct {
	ID          string
	Name        string
	Type        SourceType
	Platform    string
	Description string
	OwnerID     string // empty for the shared personal source
}

// PersonalSource returns the seeded personal source.
func PersonalSource() Source {
	return Source{
		ID:          PersonalSourceID,
		Name:        "Personal",
		Type:        SourceTypePersonal,
		Description: "Primary personal income and expenses",
	}
}

// IsPersonal reports whether s is the singleton personal source.
func (s Source) IsPersonal() bool {
	return s.ID == PersonalSourceID
}

// VisibleTo reports whether userID may attribute transactions to s.
func (s Source) VisibleTo(userID string) bool {
	return s.OwnerID == "" || s.OwnerID == userID
}
