package domain

import (
	"encoding/json"
	"time"
)

type MenuItem struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	DetailedDescription string    `json:"detailed_description,omitempty"`
	Price               string    `json:"price"`
	Category            string    `json:"category"`
	Origin              string    `json:"origin,omitempty"`
	Allergens           string    `json:"allergens,omitempty"`
	Additives           string    `json:"additives,omitempty"`
	PreparationMethod   string    `json:"preparation_method,omitempty"`
	Ingredients         string    `json:"ingredients,omitempty"`
	Vegan               bool      `json:"vegan"`
	Vegetarian          bool      `json:"vegetarian"`
	Glutenfree          bool      `json:"glutenfree"`
	OrderIndex          int       `json:"order_index"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type Review struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	Date         time.Time `json:"date"`
	IsApproved   bool      `json:"is_approved"`
}

type ReviewStats struct {
	Total        int            `json:"total"`
	Average      float64        `json:"average"`
	Distribution map[string]int `json:"distribution"`
}

type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// UserInput carries create/update payloads. Password is optional on update.
type UserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	IsActive bool   `json:"is_active"`
}

func (u *User) Identity() Identity {
	return Identity{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type ContactMessage struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone,omitempty"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
	IsRead  bool      `json:"is_read"`
}

type NewsletterSubscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

type ContentBlock struct {
	Key       string          `json:"key"`
	Data      json.RawMessage `json:"data"`
	UpdatedAt time.Time       `json:"updated_at"`
	UpdatedBy string          `json:"updated_by"`
}

type ActionLogEntry struct {
	ID        int64           `json:"id"`
	EventType string          `json:"event_type"`
	EntityID  string          `json:"entity_id"`
	Actor     string          `json:"actor"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

type BackupFile struct {
	Filename string    `json:"filename"`
	Created  time.Time `json:"created"`
	Size     int64     `json:"size"`
	Type     string    `json:"type"`
}

type SystemInfo struct {
	Version   string `json:"version"`
	Uptime    string `json:"uptime"`
	Database  string `json:"database"`
	GoVersion string `json:"go_version"`
	Goroutine int    `json:"goroutines"`
}

type DatabaseConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Database string `json:"database"`
	SSL      bool   `json:"ssl"`
	SSLMode  string `json:"sslmode"`
	Charset  string `json:"charset"`
}
