package service

import (
	"context"
	"errors"
	"math"

	"github.com/melcantwell27/quizWhiz/internal/model"
	"github.com/melcantwell27/quizWhiz/internal/repository"
	"github.com/rs/zerolog/log"
)

// MaxScore is the score of an attempt that earns every available point.
const MaxScore float64 = 100.0

// AnswerPoints is one answer paired with the question it was scored against.
// Question is nil when the question has since been deleted.
type AnswerPoints struct {
	Answer   model.Answer
	Question model.Question
	Earned   int
}

type ScoringService interface {
	// Tally looks up each answer's question and returns the per-answer points
	// and their sum. Only correct answers earn points.
	Tally(ctx context.Context, answers []model.Answer) ([]AnswerPoints, int, error)
	// Score converts earned points to a percentage of total, rounded to two decimals.
	Score(earned, total int) float64
}

type scoringService struct {
	questionRepo repository.QuestionRepository
}

func NewScoringService(questionRepo repository.QuestionRepository) ScoringService {
	return &scoringService{questionRepo: questionRepo}
}

func (s *scoringService) Tally(ctx context.Context, answers []model.Answer) ([]AnswerPoints, int, error) {
	out := make([]AnswerPoints, 0, len(answers))
	total := 0
	for _, a := range answers {
		ap := AnswerPoints{Answer: a}
		q, err := s.questionRepo.Resolve(ctx, a.QuestionRef)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			log.Warn().Uint("answerID", a.ID).Str("ref", a.QuestionRef.String()).Msg("Answered question no longer exists, scoring it as zero")
		case err != nil:
			return nil, 0, err
		default:
			ap.Question = q
			if a.IsCorrect {
				ap.Earned = q.PointValue()
			}
		}
		total += ap.Earned
		out = append(out, ap)
	}
	return out, total, nil
}

func (s *scoringService) Score(earned, total int) float64 {
	if total <= 0 {
		return 0
	}
	score := float64(earned) / float64(total) * MaxScore
	if score > MaxScore {
		score = MaxScore
	}
	if score < 0 {
		score = 0
	}
	return math.Round(score*100) / 100
}
