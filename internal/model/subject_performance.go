package model

import "time"

// SubjectPerformance is unique per owner and subject.
type SubjectPerformance struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     *uint     `json:"user_id,omitempty" gorm:"uniqueIndex:idx_performance_owner_subject"`
	User       *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Subject    string    `json:"subject" gorm:"size:100;not null;uniqueIndex:idx_performance_owner_subject"`
	Grade      string    `json:"grade" gorm:"size:5;not null"`
	Percentage int       `json:"percentage" gorm:"not null"`
	UpdatedAt  time.Time `json:"updated_at"`
}
