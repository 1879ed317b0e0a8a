package model

import "time"

type Assignment struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      *uint     `json:"user_id,omitempty" gorm:"index"`
	User        *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Subject     string    `json:"subject" gorm:"size:100;not null"`
	DueDate     Date      `json:"due_date" gorm:"not null;index"`
	Status      string    `json:"status" gorm:"size:20;not null;default:'pending'"` // pending, in-progress, completed
	Description string    `json:"description" gorm:"type:text"`
	Link        *string   `json:"link,omitempty" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
