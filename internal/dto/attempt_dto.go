package dto

import "time"

type AttemptStartDTO struct {
	QuizID    uint `json:"quiz_id" binding:"required"`
	StudentID uint `json:"student_id" binding:"required"`
}

// AttemptDTO summarizes an attempt without its answers.
type AttemptDTO struct {
	ID              uint           `json:"id"`
	Student         StudentDTO     `json:"student"`
	Quiz            QuizSummaryDTO `json:"quiz"`
	TimeStart       time.Time      `json:"time_start"`
	TimeEnd         *time.Time     `json:"time_end"`
	Score           *float64       `json:"score"`
	Status          string         `json:"status"`
	CurrentQuestion string         `json:"current_question,omitempty"`
	Duration        *string        `json:"duration"`
}

// CurrentQuestionDTO never carries choice correctness.
type CurrentQuestionDTO struct {
	QuestionID     uint        `json:"question_id"`
	QuestionType   string      `json:"question_type"`
	QuestionText   string      `json:"question_text"`
	Points         int         `json:"points"`
	Choices        []ChoiceDTO `json:"choices,omitempty"`
	QuestionNumber int         `json:"question_number"`
	TotalQuestions int         `json:"total_questions"`
	QuizID         uint        `json:"quiz_id"`
}

// AnswerSubmitDTO accepts either choice_id (MCQ) or answer / free_text_response (FTQ).
type AnswerSubmitDTO struct {
	ChoiceID         *uint   `json:"choice_id"`
	Answer           *string `json:"answer"`
	FreeTextResponse *string `json:"free_text_response"`
}

// Text returns the free-text answer, preferring "answer" over "free_text_response".
func (d AnswerSubmitDTO) Text() *string {
	if d.Answer != nil {
		return d.Answer
	}
	return d.FreeTextResponse
}

type AnswerSubmitResponse struct {
	Message               string `json:"message"`
	NextQuestionAvailable bool   `json:"next_question_available"`
	IsCorrect             bool   `json:"is_correct"`
}

type AnswerResultDTO struct {
	QuestionText  string  `json:"question_text"`
	QuestionType  string  `json:"question_type"`
	IsCorrect     bool    `json:"is_correct"`
	PointsEarned  int     `json:"points_earned"`
	CorrectAnswer *string `json:"correct_answer"`
	StudentAnswer *string `json:"student_answer"`
}

type AttemptResultsDTO struct {
	ID                  uint              `json:"id"`
	Student             StudentDTO        `json:"student"`
	Quiz                QuizSummaryDTO    `json:"quiz"`
	TimeStart           time.Time         `json:"time_start"`
	TimeEnd             *time.Time        `json:"time_end"`
	Score               float64           `json:"score"`
	TotalQuestions      int               `json:"total_questions"`
	CorrectAnswers      int               `json:"correct_answers"`
	TotalPointsEarned   int               `json:"total_points_earned"`
	TotalPossiblePoints int               `json:"total_possible_points"`
	TimeTaken           string            `json:"time_taken"`
	TimeTakenSeconds    float64           `json:"time_taken_seconds"`
	Answers             []AnswerResultDTO `json:"answers"`
}
