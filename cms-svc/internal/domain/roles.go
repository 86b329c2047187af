package domain

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

type Capability string

const (
	CapMenuWrite       Capability = "menu:write"
	CapContentWrite    Capability = "content:write"
	CapModerateReviews Capability = "reviews:moderate"
	CapReadMessages    Capability = "messages:read"
	CapManageUsers     Capability = "users:manage"
	CapManageSystem    Capability = "system:manage"
)

var roleCapabilities = map[Role][]Capability{
	RoleAdmin: {
		CapMenuWrite, CapContentWrite, CapModerateReviews,
		CapReadMessages, CapManageUsers, CapManageSystem,
	},
	RoleEditor: {CapMenuWrite, CapContentWrite, CapModerateReviews, CapReadMessages},
	RoleViewer: {CapReadMessages},
}

func (r Role) Valid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

func (r Role) Can(c Capability) bool {
	for _, granted := range roleCapabilities[r] {
		if granted == c {
			return true
		}
	}
	return false
}

func (r Role) Capabilities() []Capability {
	return append([]Capability(nil), roleCapabilities[r]...)
}

// Authorize checks that an identity may use a capability.
func (i Identity) Authorize(c Capability) error {
	if !i.IsActive {
		return ErrInactiveUser
	}
	if !i.Role.Can(c) {
		return ErrForbidden
	}
	return nil
}
