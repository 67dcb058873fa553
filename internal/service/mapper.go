package service

import (
	"time"

	"github.com/jinzhu/copier"
	"github.com/melcantwell27/quizWhiz/internal/dto"
	"github.com/melcantwell27/quizWhiz/internal/model"
)

const (
	statusInProgress = "in_progress"
	statusCompleted  = "completed"
)

func toStudentDTO(s *model.Student) dto.StudentDTO {
	var out dto.StudentDTO
	copier.Copy(&out, s)
	return out
}

func toQuizSummaryDTO(q *model.Quiz) dto.QuizSummaryDTO {
	var out dto.QuizSummaryDTO
	copier.Copy(&out, q)
	return out
}

func toQuizDetailDTO(q *model.Quiz) dto.QuizDetailDTO {
	out := dto.QuizDetailDTO{
		ID:          q.ID,
		Name:        q.Name,
		TotalPoints: q.TotalPoints(),
		MCQs:        make([]dto.MCQDTO, len(q.MCQs)),
		FTQs:        toFTQDTOs(q.FTQs),
	}
	for i := range q.MCQs {
		copier.Copy(&out.MCQs[i], &q.MCQs[i])
		out.MCQs[i].Question = q.MCQs[i].Text
		if out.MCQs[i].Choices == nil {
			out.MCQs[i].Choices = []dto.ChoiceDTO{}
		}
	}
	return out
}

func toQuizWithAnswersDTO(q *model.Quiz) dto.QuizWithAnswersDTO {
	out := dto.QuizWithAnswersDTO{
		ID:          q.ID,
		Name:        q.Name,
		TotalPoints: q.TotalPoints(),
		MCQs:        make([]dto.MCQWithAnswersDTO, len(q.MCQs)),
		FTQs:        toFTQDTOs(q.FTQs),
		CreatedAt:   q.CreatedAt,
	}
	for i := range q.MCQs {
		copier.Copy(&out.MCQs[i], &q.MCQs[i])
		out.MCQs[i].Question = q.MCQs[i].Text
		if out.MCQs[i].Choices == nil {
			out.MCQs[i].Choices = []dto.ChoiceWithAnswerDTO{}
		}
	}
	return out
}

func toFTQDTOs(ftqs []model.FTQ) []dto.FTQDTO {
	out := make([]dto.FTQDTO, len(ftqs))
	for i := range ftqs {
		out[i] = dto.FTQDTO{ID: ftqs[i].ID, Question: ftqs[i].Text, Points: ftqs[i].Points}
	}
	return out
}

func toAttemptDTO(a *model.Attempt) dto.AttemptDTO {
	out := dto.AttemptDTO{
		ID:              a.ID,
		Student:         toStudentDTO(&a.Student),
		Quiz:            toQuizSummaryDTO(&a.Quiz),
		TimeStart:       a.TimeStart,
		TimeEnd:         a.TimeEnd,
		Score:           a.Score,
		Status:          statusInProgress,
		CurrentQuestion: a.CurrentQuestion.String(),
	}
	if a.IsCompleted() {
		out.Status = statusCompleted
		out.CurrentQuestion = ""
		d := formatDuration(a.Duration())
		out.Duration = &d
	}
	return out
}

func toCurrentQuestionDTO(q model.Question, index, total int) dto.CurrentQuestionDTO {
	ref := q.Ref()
	out := dto.CurrentQuestionDTO{
		QuestionID:     ref.ID,
		QuestionType:   string(ref.Kind),
		QuestionText:   q.Prompt(),
		Points:         q.PointValue(),
		QuestionNumber: index + 1,
		TotalQuestions: total,
		QuizID:         q.QuizRef(),
	}
	if mcq, ok := q.(*model.MCQ); ok {
		out.Choices = make([]dto.ChoiceDTO, 0, len(mcq.Choices))
		copier.Copy(&out.Choices, &mcq.Choices)
	}
	return out
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}
