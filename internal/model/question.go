package model

import (
	"time"
)

// DefaultMCQPoints is used when an MCQ is created without a point value.
const DefaultMCQPoints = 5

// Question is the behaviour shared by MCQ and FTQ.
type Question interface {
	Ref() QuestionRef
	Prompt() string
	PointValue() int
	QuizRef() uint
}

type MCQ struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	QuizID    uint      `json:"quiz_id" gorm:"not null;index"`
	Text      string    `json:"question" gorm:"column:question;type:text;not null"`
	Points    int       `json:"points" gorm:"not null"`
	Choices   []Choice  `json:"choices,omitempty" gorm:"foreignKey:MCQID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MCQ) TableName() string { return "mcqs" }

func (q *MCQ) Ref() QuestionRef { return NewQuestionRef(KindMCQ, q.ID) }
func (q *MCQ) Prompt() string   { return q.Text }
func (q *MCQ) PointValue() int  { return q.Points }
func (q *MCQ) QuizRef() uint    { return q.QuizID }

// FirstCorrectChoice returns the lowest-id choice flagged correct, or nil.
// Choices are expected in id order, as loaded by the repositories.
func (q *MCQ) FirstCorrectChoice() *Choice {
	for i := range q.Choices {
		if q.Choices[i].IsCorrect {
			return &q.Choices[i]
		}
	}
	return nil
}

// HasChoice reports whether choiceID is one of this question's choices.
func (q *MCQ) HasChoice(choiceID uint) (*Choice, bool) {
	for i := range q.Choices {
		if q.Choices[i].ID == choiceID {
			return &q.Choices[i], true
		}
	}
	return nil, false
}

type Choice struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	MCQID     uint      `json:"mcq_id" gorm:"column:mcq_id;not null;index"`
	Content   string    `json:"content" gorm:"size:255;not null"`
	IsCorrect bool      `json:"is_correct" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Choice) TableName() string { return "choices" }

type FTQ struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	QuizID    uint      `json:"quiz_id" gorm:"not null;index"`
	Text      string    `json:"question" gorm:"column:question;type:text;not null"`
	Points    int       `json:"points" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (FTQ) TableName() string { return "ftqs" }

func (q *FTQ) Ref() QuestionRef { return NewQuestionRef(KindFTQ, q.ID) }
func (q *FTQ) Prompt() string   { return q.Text }
func (q *FTQ) PointValue() int  { return q.Points }
func (q *FTQ) QuizRef() uint    { return q.QuizID }
