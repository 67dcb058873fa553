package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/melcantwell27/quizWhiz/internal/model"
)

// Submission is a student's raw answer to the current question.
type Submission struct {
	ChoiceID *uint
	Text     *string
}

// Verdict is the graded form of a Submission, ready to be stored.
type Verdict struct {
	IsCorrect        bool
	SelectedChoiceID *uint
	FreeTextResponse *string
}

// Strategy grades answers for one kind of question.
type Strategy interface {
	Grade(ctx context.Context, q model.Question, sub Submission) (Verdict, error)
	// CorrectAnswer renders the expected answer for results, or nil if there is none.
	CorrectAnswer(q model.Question) *string
}

// Grader routes by question kind to the matching Strategy.
type Grader interface {
	Grade(ctx context.Context, q model.Question, sub Submission) (Verdict, error)
	CorrectAnswer(q model.Question) *string
}

type registryGrader struct {
	strategies map[model.QuestionKind]Strategy
}

// NewGrader installs the built-in strategies. Extra strategies replace the
// built-in one for the same kind.
func NewGrader(extra ...map[model.QuestionKind]Strategy) Grader {
	g := &registryGrader{
		strategies: map[model.QuestionKind]Strategy{
			model.KindMCQ: mcqStrategy{},
			model.KindFTQ: nonEmptyTextStrategy{},
		},
	}
	for _, m := range extra {
		for k, s := range m {
			g.strategies[k] = s
		}
	}
	return g
}

func (g *registryGrader) Grade(ctx context.Context, q model.Question, sub Submission) (Verdict, error) {
	s, ok := g.strategies[q.Ref().Kind]
	if !ok {
		return Verdict{}, fmt.Errorf("no grading strategy for %q: %w", q.Ref().Kind, ErrInvalidQuestion)
	}
	return s.Grade(ctx, q, sub)
}

func (g *registryGrader) CorrectAnswer(q model.Question) *string {
	s, ok := g.strategies[q.Ref().Kind]
	if !ok {
		return nil
	}
	return s.CorrectAnswer(q)
}

type mcqStrategy struct{}

func (mcqStrategy) Grade(_ context.Context, q model.Question, sub Submission) (Verdict, error) {
	mcq, ok := q.(*model.MCQ)
	if !ok {
		return Verdict{}, ErrInvalidQuestion
	}
	if sub.ChoiceID == nil {
		return Verdict{}, ErrMissingChoice
	}
	choice, ok := mcq.HasChoice(*sub.ChoiceID)
	if !ok {
		return Verdict{}, ErrInvalidChoice
	}
	id := choice.ID
	return Verdict{IsCorrect: choice.IsCorrect, SelectedChoiceID: &id}, nil
}

func (mcqStrategy) CorrectAnswer(q model.Question) *string {
	mcq, ok := q.(*model.MCQ)
	if !ok {
		return nil
	}
	if c := mcq.FirstCorrectChoice(); c != nil {
		content := c.Content
		return &content
	}
	return nil
}

// nonEmptyTextStrategy accepts any answer that is not blank. A missing
// answer is stored as an empty string.
type nonEmptyTextStrategy struct{}

func (nonEmptyTextStrategy) Grade(_ context.Context, _ model.Question, sub Submission) (Verdict, error) {
	text := ""
	if sub.Text != nil {
		text = *sub.Text
	}
	return Verdict{IsCorrect: strings.TrimSpace(text) != "", FreeTextResponse: &text}, nil
}

func (nonEmptyTextStrategy) CorrectAnswer(model.Question) *string {
	return nil
}
