package models

import "time"

// UserProfile is the "users/{id}" record written at registration.
type UserProfile struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Email       string    `gorm:"index" json:"email"`
	Role        string    `gorm:"type:VARCHAR(20);default:'user'" json:"role"`
	Username    string    `json:"username,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (UserProfile) TableName() string { return "users" }
