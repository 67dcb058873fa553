package model

import (
	"time"
)

type Attempt struct {
	ID              uint        `gorm:"primarykey" json:"id"`
	StudentID       uint        `json:"student_id" gorm:"not null;index"`
	Student         Student     `json:"student,omitempty" gorm:"foreignKey:StudentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	QuizID          uint        `json:"quiz_id" gorm:"not null;index"`
	Quiz            Quiz        `json:"quiz,omitempty" gorm:"foreignKey:QuizID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	TimeStart       time.Time   `json:"time_start" gorm:"not null"`
	TimeEnd         *time.Time  `json:"time_end,omitempty"`
	Score           *float64    `json:"score,omitempty"`
	CurrentQuestion QuestionRef `json:"current_question" gorm:"column:current_question;size:32"`
	Answers         []Answer    `json:"answers,omitempty" gorm:"foreignKey:AttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// IsCompleted reports whether the attempt has reached its terminal state.
func (a *Attempt) IsCompleted() bool {
	return a.TimeEnd != nil
}

// Duration is zero while the attempt is in progress.
func (a *Attempt) Duration() time.Duration {
	if a.TimeEnd == nil {
		return 0
	}
	return a.TimeEnd.Sub(a.TimeStart)
}

type Answer struct {
	ID               uint        `gorm:"primarykey" json:"id"`
	AttemptID        uint        `json:"attempt_id" gorm:"not null;uniqueIndex:idx_answers_attempt_question"`
	QuestionRef      QuestionRef `json:"question" gorm:"column:question_ref;size:32;not null;uniqueIndex:idx_answers_attempt_question"`
	SelectedChoiceID *uint       `json:"selected_choice_id,omitempty" gorm:"index"`
	SelectedChoice   *Choice     `json:"selected_choice,omitempty" gorm:"foreignKey:SelectedChoiceID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	FreeTextResponse *string     `json:"free_text_response,omitempty" gorm:"type:text"`
	IsCorrect        bool        `json:"is_correct" gorm:"not null"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}
