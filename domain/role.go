package domain

// Role is a member's standing within one conversation: a human-readable
// title, a protocol-defined permission bitmask and a priority used for
// member-list ordering. Roles are immutable; role changes replace the value
// wholesale.
type Role struct {
	title    string
	perms    int32
	priority int32
}

func NewRole(title string, perms, priority int32) *Role {
	return &Role{title: title, perms: perms, priority: priority}
}

func (r *Role) Title() string { return r.title }

func (r *Role) Perms() int32 { return r.perms }

func (r *Role) Priority() int32 { return r.priority }
