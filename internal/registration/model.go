package registration

import "time"

type Registration struct {
	ID           int       `db:"id" json:"id"`
	MemberID     int       `db:"member_id" json:"member_id"`
	ClassID      int       `db:"class_id" json:"class_id"`
	Status       string    `db:"status" json:"status"`
	RegisteredAt time.Time `db:"registered_at" json:"registered_at"`
}

type RegistrationWithMember struct {
	Registration
	MemberName  string `db:"member_name" json:"member_name"`
	MemberEmail string `db:"member_email" json:"member_email"`
}

type RegisterRequest struct {
	MemberID int `json:"member_id" binding:"required"`
}

const (
	StatusActive    = "active"
	StatusCancelled = "cancelled"
)
