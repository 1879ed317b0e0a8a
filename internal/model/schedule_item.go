package model

import "time"

const (
	StatusUpcoming   = "upcoming"
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

type ScheduleItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    *uint     `json:"user_id,omitempty" gorm:"index"`
	User      *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	StartTime TimeOfDay `json:"start_time" gorm:"not null"`
	EndTime   TimeOfDay `json:"end_time" gorm:"not null"`
	Subject   string    `json:"subject" gorm:"size:200;not null"`
	Status    string    `json:"status" gorm:"size:20;not null;default:'upcoming'"` // upcoming, in-progress, completed
	Date      Date      `json:"date" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
