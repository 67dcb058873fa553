package service

import (
	"github.com/melcantwell27/quizWhiz/internal/model"
)

// Sequence returns the order in which a quiz's questions are asked: every
// MCQ in stored order, then every FTQ in stored order. The quiz must have
// been loaded with its questions in id order. Callers recompute the sequence
// on each request, so edits to a quiz are picked up by in-flight attempts.
func Sequence(quiz *model.Quiz) ([]model.Question, error) {
	seq := make([]model.Question, 0, len(quiz.MCQs)+len(quiz.FTQs))
	for i := range quiz.MCQs {
		seq = append(seq, &quiz.MCQs[i])
	}
	for i := range quiz.FTQs {
		seq = append(seq, &quiz.FTQs[i])
	}
	if len(seq) == 0 {
		return nil, ErrNoQuestions
	}
	return seq, nil
}

// Position returns the 0-based index of ref in seq, or -1.
func Position(seq []model.Question, ref model.QuestionRef) int {
	if ref.IsZero() {
		return -1
	}
	for i, q := range seq {
		if q.Ref() == ref {
			return i
		}
	}
	return -1
}
