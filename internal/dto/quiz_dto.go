package dto

import "time"

// QuizSummaryDTO is used for the quiz list and for nesting a quiz in attempts.
type QuizSummaryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ChoiceDTO hides correctness; it is what students see while answering.
type ChoiceDTO struct {
	ID      uint   `json:"id"`
	Content string `json:"content"`
}

type ChoiceWithAnswerDTO struct {
	ID        uint   `json:"id"`
	Content   string `json:"content"`
	IsCorrect bool   `json:"is_correct"`
}

type MCQDTO struct {
	ID       uint        `json:"id"`
	Question string      `json:"question"`
	Points   int         `json:"points"`
	Choices  []ChoiceDTO `json:"choices"`
}

type MCQWithAnswersDTO struct {
	ID       uint                  `json:"id"`
	Question string                `json:"question"`
	Points   int                   `json:"points"`
	Choices  []ChoiceWithAnswerDTO `json:"choices"`
}

type FTQDTO struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
	Points   int    `json:"points"`
}

// QuizDetailDTO is the student view of a quiz.
type QuizDetailDTO struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	TotalPoints int      `json:"total_points"`
	MCQs        []MCQDTO `json:"mcqs"`
	FTQs        []FTQDTO `json:"ftqs"`
}

// QuizWithAnswersDTO exposes which choices are correct.
type QuizWithAnswersDTO struct {
	ID          uint                `json:"id"`
	Name        string              `json:"name"`
	TotalPoints int                 `json:"total_points"`
	MCQs        []MCQWithAnswersDTO `json:"mcqs"`
	FTQs        []FTQDTO            `json:"ftqs"`
	CreatedAt   time.Time           `json:"created_at"`
}

// --- Admin authoring ---

type ChoiceCreateDTO struct {
	Content   string `json:"content" binding:"required,max=255"`
	IsCorrect bool   `json:"is_correct"`
}

// MCQCreateDTO leaves Points nil when omitted so the default of 5 can apply.
type MCQCreateDTO struct {
	Question string            `json:"question" binding:"required"`
	Points   *int              `json:"points" binding:"omitempty,min=0"`
	Choices  []ChoiceCreateDTO `json:"choices" binding:"omitempty,dive"`
}

type FTQCreateDTO struct {
	Question string `json:"question" binding:"required"`
	Points   *int   `json:"points" binding:"required,min=0"`
}

type QuizCreateDTO struct {
	Name string         `json:"name" binding:"required,max=255"`
	MCQs []MCQCreateDTO `json:"mcqs" binding:"omitempty,dive"`
	FTQs []FTQCreateDTO `json:"ftqs" binding:"omitempty,dive"`
}
