package session

import "time"

// PTSession is a committed one-on-one training booking. It occupies only the
// trainer's key; no room is held.
type PTSession struct {
	ID        int       `db:"id" json:"id"`
	TrainerID int       `db:"trainer_id" json:"trainer_id"`
	MemberID  int       `db:"member_id" json:"member_id"`
	StartTime time.Time `db:"start_time" json:"start_time"`
	EndTime   time.Time `db:"end_time" json:"end_time"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type BookSessionRequest struct {
	TrainerID int    `json:"trainer_id" binding:"required"`
	MemberID  int    `json:"member_id" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}
