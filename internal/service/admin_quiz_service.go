package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/melcantwell27/quizWhiz/internal/dto"
	"github.com/melcantwell27/quizWhiz/internal/lock"
	"github.com/melcantwell27/quizWhiz/internal/model"
	"github.com/melcantwell27/quizWhiz/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AdminQuizService authors quizzes and removes quizzes, questions and attempts.
type AdminQuizService interface {
	CreateQuiz(ctx context.Context, req dto.QuizCreateDTO) (*dto.QuizWithAnswersDTO, error)
	AddMCQ(ctx context.Context, quizID uint, req dto.MCQCreateDTO) (*dto.MCQWithAnswersDTO, error)
	AddFTQ(ctx context.Context, quizID uint, req dto.FTQCreateDTO) (*dto.FTQDTO, error)
	DeleteQuestion(ctx context.Context, ref model.QuestionRef) error
	DeleteQuiz(ctx context.Context, quizID uint) error
	DeleteAttempt(ctx context.Context, attemptID uint) error
}

type adminQuizService struct {
	db           *gorm.DB
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
	attemptRepo  repository.AttemptRepository
	answerRepo   repository.AnswerRepository
	locker       lock.Locker
}

func NewAdminQuizService(
	db *gorm.DB,
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	attemptRepo repository.AttemptRepository,
	answerRepo repository.AnswerRepository,
	locker lock.Locker,
) AdminQuizService {
	return &adminQuizService{
		db:           db,
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		answerRepo:   answerRepo,
		locker:       locker,
	}
}

func buildMCQ(quizID uint, req dto.MCQCreateDTO) model.MCQ {
	points := model.DefaultMCQPoints
	if req.Points != nil {
		points = *req.Points
	}
	mcq := model.MCQ{QuizID: quizID, Text: req.Question, Points: points}
	for _, c := range req.Choices {
		mcq.Choices = append(mcq.Choices, model.Choice{Content: c.Content, IsCorrect: c.IsCorrect})
	}
	return mcq
}

func buildFTQ(quizID uint, req dto.FTQCreateDTO) model.FTQ {
	points := 0
	if req.Points != nil {
		points = *req.Points
	}
	return model.FTQ{QuizID: quizID, Text: req.Question, Points: points}
}

func validatePoints(points *int) error {
	if points != nil && *points < 0 {
		return &Error{Kind: KindInvalidInput, Message: "points must not be negative"}
	}
	return nil
}

func (s *adminQuizService) CreateQuiz(ctx context.Context, req dto.QuizCreateDTO) (*dto.QuizWithAnswersDTO, error) {
	quiz := model.Quiz{Name: req.Name}
	for _, m := range req.MCQs {
		if err := validatePoints(m.Points); err != nil {
			return nil, err
		}
		quiz.MCQs = append(quiz.MCQs, buildMCQ(0, m))
	}
	for _, f := range req.FTQs {
		if err := validatePoints(f.Points); err != nil {
			return nil, err
		}
		quiz.FTQs = append(quiz.FTQs, buildFTQ(0, f))
	}

	// Create saves the nested MCQs, choices and FTQs in one statement chain.
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.quizRepo.WithTx(tx).Create(ctx, &quiz)
	})
	if err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create quiz with questions in transaction")
		return nil, err
	}

	log.Info().Uint("quizID", quiz.ID).Int("mcqs", len(quiz.MCQs)).Int("ftqs", len(quiz.FTQs)).Msg("Quiz created")
	resp := toQuizWithAnswersDTO(&quiz)
	return &resp, nil
}

func (s *adminQuizService) ensureQuiz(ctx context.Context, quizID uint) error {
	if _, err := s.quizRepo.FindByID(ctx, quizID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrQuizNotFound
		}
		return err
	}
	return nil
}

func (s *adminQuizService) AddMCQ(ctx context.Context, quizID uint, req dto.MCQCreateDTO) (*dto.MCQWithAnswersDTO, error) {
	if err := validatePoints(req.Points); err != nil {
		return nil, err
	}
	if err := s.ensureQuiz(ctx, quizID); err != nil {
		return nil, err
	}
	mcq := buildMCQ(quizID, req)
	if err := s.questionRepo.CreateMCQ(ctx, &mcq); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("Failed to add MCQ to quiz")
		return nil, err
	}

	resp := dto.MCQWithAnswersDTO{ID: mcq.ID, Question: mcq.Text, Points: mcq.Points, Choices: []dto.ChoiceWithAnswerDTO{}}
	for _, c := range mcq.Choices {
		resp.Choices = append(resp.Choices, dto.ChoiceWithAnswerDTO{ID: c.ID, Content: c.Content, IsCorrect: c.IsCorrect})
	}
	return &resp, nil
}

func (s *adminQuizService) AddFTQ(ctx context.Context, quizID uint, req dto.FTQCreateDTO) (*dto.FTQDTO, error) {
	if err := validatePoints(req.Points); err != nil {
		return nil, err
	}
	if err := s.ensureQuiz(ctx, quizID); err != nil {
		return nil, err
	}
	ftq := buildFTQ(quizID, req)
	if err := s.questionRepo.CreateFTQ(ctx, &ftq); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("Failed to add FTQ to quiz")
		return nil, err
	}
	return &dto.FTQDTO{ID: ftq.ID, Question: ftq.Text, Points: ftq.Points}, nil
}

// DeleteQuestion removes an MCQ (with its choices) or an FTQ. Answers that
// referenced it stay and score zero; attempts pointing at it are moved back
// to the first question the next time they are read.
func (s *adminQuizService) DeleteQuestion(ctx context.Context, ref model.QuestionRef) error {
	if !ref.IsValid() {
		return ErrInvalidQuestion
	}
	if _, err := s.questionRepo.Resolve(ctx, ref); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		questions := s.questionRepo.WithTx(tx)
		switch ref.Kind {
		case model.KindMCQ:
			ids := []uint{ref.ID}
			choiceIDs, err := questions.ChoiceIDsByMCQ(ctx, ids)
			if err != nil {
				return err
			}
			if err := s.answerRepo.WithTx(tx).ClearChoices(ctx, choiceIDs); err != nil {
				return err
			}
			if err := questions.DeleteChoicesByMCQ(ctx, ids); err != nil {
				return err
			}
			return questions.DeleteMCQs(ctx, ids)
		case model.KindFTQ:
			return questions.DeleteFTQs(ctx, []uint{ref.ID})
		}
		return ErrInvalidQuestion
	})
	if err != nil {
		log.Error().Err(err).Str("ref", ref.String()).Msg("Failed to delete question")
		return err
	}
	log.Info().Str("ref", ref.String()).Msg("Question deleted")
	return nil
}

// DeleteQuiz removes the quiz and everything it owns: attempts with their
// answers, MCQs with their choices, and FTQs.
func (s *adminQuizService) DeleteQuiz(ctx context.Context, quizID uint) error {
	if err := s.ensureQuiz(ctx, quizID); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attempts := s.attemptRepo.WithTx(tx)
		answers := s.answerRepo.WithTx(tx)
		questions := s.questionRepo.WithTx(tx)

		attemptIDs, err := attempts.IDsByQuiz(ctx, quizID)
		if err != nil {
			return err
		}
		if err := answers.DeleteByAttempts(ctx, attemptIDs); err != nil {
			return fmt.Errorf("delete answers: %w", err)
		}
		if err := attempts.Delete(ctx, attemptIDs...); err != nil {
			return fmt.Errorf("delete attempts: %w", err)
		}

		mcqIDs, err := questions.MCQIDsByQuiz(ctx, quizID)
		if err != nil {
			return err
		}
		choiceIDs, err := questions.ChoiceIDsByMCQ(ctx, mcqIDs)
		if err != nil {
			return err
		}
		if err := answers.ClearChoices(ctx, choiceIDs); err != nil {
			return err
		}
		if err := questions.DeleteChoicesByMCQ(ctx, mcqIDs); err != nil {
			return fmt.Errorf("delete choices: %w", err)
		}
		if err := questions.DeleteMCQs(ctx, mcqIDs); err != nil {
			return fmt.Errorf("delete mcqs: %w", err)
		}

		ftqIDs, err := questions.FTQIDsByQuiz(ctx, quizID)
		if err != nil {
			return err
		}
		if err := questions.DeleteFTQs(ctx, ftqIDs); err != nil {
			return fmt.Errorf("delete ftqs: %w", err)
		}

		return s.quizRepo.WithTx(tx).Delete(ctx, quizID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrQuizNotFound
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("Failed to delete quiz")
		return err
	}
	log.Info().Uint("quizID", quizID).Msg("Quiz deleted")
	return nil
}

func (s *adminQuizService) DeleteAttempt(ctx context.Context, attemptID uint) error {
	release, err := s.locker.Acquire(ctx, attemptLockKey(attemptID))
	if err != nil {
		return err
	}
	defer release()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.answerRepo.WithTx(tx).DeleteByAttempts(ctx, []uint{attemptID}); err != nil {
			return err
		}
		return s.attemptRepo.WithTx(tx).Delete(ctx, attemptID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAttemptNotFound
		}
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("Failed to delete attempt")
		return err
	}
	log.Info().Uint("attemptID", attemptID).Msg("Attempt deleted")
	return nil
}
