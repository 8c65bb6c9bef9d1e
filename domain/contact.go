package domain

// Contact is a User promoted to roster membership. It shares the User
// identity rules and observer surface; roster persistence is a collaborator
// concern.
type Contact struct {
	User
}

func NewContact(id string) *Contact {
	return &Contact{User: *NewUser(id)}
}
