package users

import (
	"time"

	"github.com/google/uuid"
)

// Role is the console authorization level carried in JWT claims.
type Role string

const (
	// RoleAdmin manages venues, seats, events and reference data.
	RoleAdmin Role = "ADMIN"
	// RoleOrganizer manages its own events and sees attendee lists.
	RoleOrganizer Role = "ORGANIZER"
	// RoleStaff runs the check-in desk.
	RoleStaff Role = "STAFF"
)

type User struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	FullName  string    `json:"full_name" gorm:"not null"`
	Password  string    `json:"-" gorm:"not null"` // hide in json
	Role      Role      `json:"role" gorm:"not null;default:'STAFF'"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func IsValidRole(role string) bool {
	switch role {
	case string(RoleAdmin), string(RoleOrganizer), string(RoleStaff):
		return true
	default:
		return false
	}
}
