package models

import (
	"time"
)

type Option struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	QuestionID uint      `json:"question_id" gorm:"not null;index"`
	Text       string    `json:"text" gorm:"size:200;not null"`
	IsCorrect  bool      `json:"-" gorm:"not null;default:false"` // hidden from clients
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
