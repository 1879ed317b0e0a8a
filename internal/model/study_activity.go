package model

import "time"

type StudyActivity struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	UserID       *uint     `json:"user_id,omitempty" gorm:"index"`
	User         *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Text         string    `json:"text" gorm:"size:300;not null"`
	ActivityTime time.Time `json:"activity_time" gorm:"not null;index"`
	CreatedAt    time.Time `json:"created_at"`
}
