package class

import "time"

type GroupClass struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	TrainerID int       `db:"trainer_id" json:"trainer_id"`
	RoomID    int       `db:"room_id" json:"room_id"`
	StartTime time.Time `db:"start_time" json:"start_time"`
	EndTime   time.Time `db:"end_time" json:"end_time"`
	Capacity  int       `db:"capacity" json:"capacity"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type ClassWithAvailability struct {
	GroupClass
	RegisteredCount int  `json:"registered_count"`
	Available       int  `json:"available"`
	IsFull          bool `json:"is_full"`
}

type CreateClassRequest struct {
	Name      string `json:"name" binding:"required"`
	TrainerID int    `json:"trainer_id" binding:"required"`
	RoomID    int    `json:"room_id" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Capacity  int    `json:"capacity" binding:"required,min=1"`
}
