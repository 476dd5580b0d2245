package entity

// Identity is the authenticated user as supplied by the identity provider.
// The provider itself is opaque to this service.
type Identity struct {
	ID    string
	Email string
}

func (i Identity) Anonymous() bool {
	return i.ID == ""
}

// ChangedBy is the actor label recorded on history rows: the email when
// present, otherwise the id.
func (i Identity) ChangedBy() string {
	if i.Email != "" {
		return i.Email
	}
	return i.ID
}
