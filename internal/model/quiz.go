package model

import (
	"time"
)

type Quiz struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `json:"name" gorm:"size:255;not null;index"`
	MCQs      []MCQ     `json:"mcqs,omitempty" gorm:"foreignKey:QuizID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	FTQs      []FTQ     `json:"ftqs,omitempty" gorm:"foreignKey:QuizID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TotalPoints sums the points of every loaded MCQ and FTQ. It is never stored.
func (q *Quiz) TotalPoints() int {
	total := 0
	for i := range q.MCQs {
		total += q.MCQs[i].Points
	}
	for i := range q.FTQs {
		total += q.FTQs[i].Points
	}
	return total
}

type Student struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:254;not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
