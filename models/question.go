package models

import (
	"time"
)

type Question struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	QuizID    uint      `json:"quiz_id" gorm:"not null;index"`
	Text      string    `json:"text" gorm:"size:300;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Options []Option `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

// CorrectOption returns the option flagged as correct, or nil if the data
// has none (possible when rows were written past the service layer).
func (q *Question) CorrectOption() *Option {
	for i := range q.Options {
		if q.Options[i].IsCorrect {
			return &q.Options[i]
		}
	}
	return nil
}
