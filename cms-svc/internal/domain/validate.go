package domain

import (
	"net/mail"
	"strings"
)

func (m *MenuItem) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return Invalid("name", "is required")
	}
	if strings.TrimSpace(m.Price) == "" {
		return Invalid("price", "is required")
	}
	if strings.TrimSpace(m.Category) == "" {
		return Invalid("category", "is required")
	}
	return nil
}

func (r *Review) Validate() error {
	if strings.TrimSpace(r.CustomerName) == "" {
		return Invalid("customer_name", "is required")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return Invalid("rating", "must be between 1 and 5")
	}
	return nil
}

func (c *ContactMessage) Validate() error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return Invalid("name", "is required")
	case !ValidEmail(c.Email):
		return Invalid("email", "is not a valid address")
	case strings.TrimSpace(c.Subject) == "":
		return Invalid("subject", "is required")
	case strings.TrimSpace(c.Message) == "":
		return Invalid("message", "is required")
	}
	return nil
}

func (u *UserInput) Validate(requirePassword bool) error {
	if strings.TrimSpace(u.Username) == "" {
		return Invalid("username", "is required")
	}
	if !ValidEmail(u.Email) {
		return Invalid("email", "is not a valid address")
	}
	if requirePassword && len(u.Password) < 8 {
		return Invalid("password", "must be at least 8 characters")
	}
	if !u.Role.Valid() {
		return Invalid("role", "must be one of admin, editor, viewer")
	}
	return nil
}

func ValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
