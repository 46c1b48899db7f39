package identity

// Identity is the authenticated user as reported by the external auth
// endpoint. Absence of an Identity means every booking and queue-join
// operation is rejected before any network call.
type Identity struct {
	userID string
	email  string
}

func NewIdentity(userID, email string) Identity {
	return Identity{userID: userID, email: email}
}

func (i Identity) UserID() string {
	return i.userID
}

func (i Identity) Email() string {
	return i.email
}

func (i Identity) IsZero() bool {
	return i.userID == ""
}
