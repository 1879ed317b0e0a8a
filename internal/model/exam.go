package model

import "time"

type Exam struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    *uint     `json:"user_id,omitempty" gorm:"index"`
	User      *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Title     string    `json:"title" gorm:"size:200;not null"`
	Subject   string    `json:"subject" gorm:"size:100;not null"`
	ExamDate  Date      `json:"exam_date" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
}
