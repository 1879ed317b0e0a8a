package model

import "time"

type WeeklyGoal struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    *uint     `json:"user_id,omitempty" gorm:"index"`
	User      *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Text      string    `json:"text" gorm:"size:300;not null"`
	Status    string    `json:"status" gorm:"size:20;not null;default:'pending'"`
	WeekStart Date      `json:"week_start" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
