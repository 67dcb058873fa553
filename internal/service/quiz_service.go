package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/melcantwell27/quizWhiz/internal/dto"
	"github.com/melcantwell27/quizWhiz/internal/repository"
	"github.com/rs/zerolog/log"
)

// QuizService is the read side of quizzes used by students.
type QuizService interface {
	ListQuizzes(ctx context.Context) ([]dto.QuizSummaryDTO, error)
	GetQuiz(ctx context.Context, quizID uint) (*dto.QuizDetailDTO, error)
	// GetQuizWithAnswers includes choice correctness; meant for the results view.
	GetQuizWithAnswers(ctx context.Context, quizID uint) (*dto.QuizWithAnswersDTO, error)
}

type quizService struct {
	quizRepo repository.QuizRepository
}

func NewQuizService(quizRepo repository.QuizRepository) QuizService {
	return &quizService{quizRepo: quizRepo}
}

func (s *quizService) ListQuizzes(ctx context.Context) ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list quizzes from repository")
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	dtos := make([]dto.QuizSummaryDTO, 0, len(quizzes))
	for i := range quizzes {
		dtos = append(dtos, toQuizSummaryDTO(&quizzes[i]))
	}
	return dtos, nil
}

func (s *quizService) GetQuiz(ctx context.Context, quizID uint) (*dto.QuizDetailDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(ctx, quizID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrQuizNotFound
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("Failed to get quiz details from repository")
		return nil, err
	}
	resp := toQuizDetailDTO(quiz)
	return &resp, nil
}

func (s *quizService) GetQuizWithAnswers(ctx context.Context, quizID uint) (*dto.QuizWithAnswersDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(ctx, quizID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrQuizNotFound
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("Failed to get quiz with answers from repository")
		return nil, err
	}
	resp := toQuizWithAnswersDTO(quiz)
	return &resp, nil
}
