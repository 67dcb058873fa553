package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/melcantwell27/quizWhiz/internal/dto"
	"github.com/melcantwell27/quizWhiz/internal/event"
	"github.com/melcantwell27/quizWhiz/internal/lock"
	"github.com/melcantwell27/quizWhiz/internal/model"
	"github.com/melcantwell27/quizWhiz/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AttemptService drives an attempt from start to results. Every operation
// that can write to an attempt holds that attempt's lock for its duration.
type AttemptService interface {
	// Start resumes the student's in-progress attempt on the quiz, or creates
	// one positioned on the first question. created reports which happened.
	Start(ctx context.Context, studentID, quizID uint) (attempt *dto.AttemptDTO, created bool, err error)
	Get(ctx context.Context, attemptID uint) (*dto.AttemptDTO, error)
	ListByStudent(ctx context.Context, studentID uint) ([]dto.AttemptDTO, error)
	CurrentQuestion(ctx context.Context, attemptID uint) (*dto.CurrentQuestionDTO, error)
	SubmitAnswer(ctx context.Context, attemptID uint, sub Submission) (*dto.AnswerSubmitResponse, error)
	Results(ctx context.Context, attemptID uint) (*dto.AttemptResultsDTO, error)
}

type attemptService struct {
	db           *gorm.DB // For transactions
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
	studentRepo  repository.StudentRepository
	attemptRepo  repository.AttemptRepository
	answerRepo   repository.AnswerRepository
	grader       Grader
	scoring      ScoringService
	locker       lock.Locker
	publisher    event.Publisher
	now          func() time.Time
}

func NewAttemptService(
	db *gorm.DB,
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	studentRepo repository.StudentRepository,
	attemptRepo repository.AttemptRepository,
	answerRepo repository.AnswerRepository,
	grader Grader,
	scoring ScoringService,
	locker lock.Locker,
	publisher event.Publisher,
) AttemptService {
	return &attemptService{
		db:           db,
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		studentRepo:  studentRepo,
		attemptRepo:  attemptRepo,
		answerRepo:   answerRepo,
		grader:       grader,
		scoring:      scoring,
		locker:       locker,
		publisher:    publisher,
		now:          time.Now,
	}
}

func attemptLockKey(attemptID uint) string {
	return fmt.Sprintf("attempt:%d", attemptID)
}

func (s *attemptService) Start(ctx context.Context, studentID, quizID uint) (*dto.AttemptDTO, bool, error) {
	release, err := s.locker.Acquire(ctx, fmt.Sprintf("start:%d:%d", studentID, quizID))
	if err != nil {
		return nil, false, err
	}
	defer release()

	student, err := s.studentRepo.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, ErrStudentNotFound
		}
		return nil, false, err
	}
	quiz, err := s.loadQuiz(ctx, quizID)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.attemptRepo.FindInProgress(ctx, studentID, quizID)
	switch {
	case err == nil:
		existing.Student = *student
		existing.Quiz = *quiz
		log.Info().Uint("attemptID", existing.ID).Uint("studentID", studentID).Uint("quizID", quizID).Msg("Resuming in-progress attempt")
		resp := toAttemptDTO(existing)
		return &resp, false, nil
	case !errors.Is(err, repository.ErrNotFound):
		return nil, false, err
	}

	seq, err := Sequence(quiz)
	if err != nil {
		log.Warn().Uint("quizID", quizID).Msg("Cannot start attempt on a quiz without questions")
		return nil, false, err
	}

	attempt := &model.Attempt{
		StudentID:       studentID,
		QuizID:          quizID,
		TimeStart:       s.now(),
		CurrentQuestion: seq[0].Ref(),
	}
	if err := s.attemptRepo.Create(ctx, attempt); err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Uint("quizID", quizID).Msg("Failed to create attempt")
		return nil, false, err
	}
	attempt.Student = *student
	attempt.Quiz = *quiz

	log.Info().Uint("attemptID", attempt.ID).Uint("studentID", studentID).Uint("quizID", quizID).Msg("Attempt started")
	publish(ctx, s.publisher, event.AttemptStarted, event.AttemptPayload{
		AttemptID: attempt.ID,
		StudentID: studentID,
		QuizID:    quizID,
	})

	resp := toAttemptDTO(attempt)
	return &resp, true, nil
}

func (s *attemptService) Get(ctx context.Context, attemptID uint) (*dto.AttemptDTO, error) {
	attempt, err := s.attemptRepo.FindByIDWithDetails(ctx, attemptID)
	if err != nil {
		return nil, s.attemptErr(err)
	}
	resp := toAttemptDTO(attempt)
	return &resp, nil
}

func (s *attemptService) ListByStudent(ctx context.Context, studentID uint) ([]dto.AttemptDTO, error) {
	student, err := s.studentRepo.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	attempts, err := s.attemptRepo.FindAllByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AttemptDTO, len(attempts))
	for i := range attempts {
		attempts[i].Student = *student
		resp[i] = toAttemptDTO(&attempts[i])
	}
	return resp, nil
}

func (s *attemptService) CurrentQuestion(ctx context.Context, attemptID uint) (*dto.CurrentQuestionDTO, error) {
	release, err := s.locker.Acquire(ctx, attemptLockKey(attemptID))
	if err != nil {
		return nil, err
	}
	defer release()

	attempt, err := s.attemptRepo.FindByID(ctx, attemptID)
	if err != nil {
		return nil, s.attemptErr(err)
	}
	if attempt.IsCompleted() {
		return nil, ErrAlreadyCompleted
	}

	quiz, err := s.loadQuiz(ctx, attempt.QuizID)
	if err != nil {
		return nil, err
	}
	seq, err := Sequence(quiz)
	if err != nil {
		return nil, err
	}

	idx := Position(seq, attempt.CurrentQuestion)
	if idx < 0 {
		// The pointer is unset or its question was removed from the quiz.
		log.Warn().Uint("attemptID", attemptID).Str("ref", attempt.CurrentQuestion.String()).Msg("Current question not in quiz, resetting to first question")
		idx = 0
		attempt.CurrentQuestion = seq[0].Ref()
		if err := s.attemptRepo.Update(ctx, attempt); err != nil {
			log.Error().Err(err).Uint("attemptID", attemptID).Msg("Failed to reset current question")
			return nil, err
		}
	}

	resp := toCurrentQuestionDTO(seq[idx], idx, len(seq))
	return &resp, nil
}

func (s *attemptService) SubmitAnswer(ctx context.Context, attemptID uint, sub Submission) (*dto.AnswerSubmitResponse, error) {
	release, err := s.locker.Acquire(ctx, attemptLockKey(attemptID))
	if err != nil {
		return nil, err
	}
	defer release()

	attempt, err := s.attemptRepo.FindByID(ctx, attemptID)
	if err != nil {
		return nil, s.attemptErr(err)
	}
	if attempt.IsCompleted() {
		return nil, ErrAlreadyCompleted
	}
	if attempt.CurrentQuestion.IsZero() {
		return nil, ErrNoCurrentQuestion
	}

	question, err := s.questionRepo.Resolve(ctx, attempt.CurrentQuestion)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn().Uint("attemptID", attemptID).Str("ref", attempt.CurrentQuestion.String()).Msg("Current question no longer exists")
			return nil, ErrNoCurrentQuestion
		}
		return nil, err
	}

	verdict, err := s.grader.Grade(ctx, question, sub)
	if err != nil {
		log.Warn().Err(err).Uint("attemptID", attemptID).Str("ref", attempt.CurrentQuestion.String()).Msg("Rejected answer")
		return nil, err
	}

	quiz, err := s.loadQuiz(ctx, attempt.QuizID)
	if err != nil {
		return nil, err
	}
	// An empty sequence leaves idx at -1, which completes the attempt below.
	seq, _ := Sequence(quiz)
	idx := Position(seq, attempt.CurrentQuestion)

	answer := &model.Answer{
		AttemptID:        attempt.ID,
		QuestionRef:      attempt.CurrentQuestion,
		SelectedChoiceID: verdict.SelectedChoiceID,
		FreeTextResponse: verdict.FreeTextResponse,
		IsCorrect:        verdict.IsCorrect,
	}

	hasNext := idx >= 0 && idx+1 < len(seq)
	if hasNext {
		attempt.CurrentQuestion = seq[idx+1].Ref()
	} else {
		end := s.now()
		attempt.TimeEnd = &end
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.answerRepo.WithTx(tx).Upsert(ctx, answer); err != nil {
			return fmt.Errorf("failed to save answer: %w", err)
		}
		if err := s.attemptRepo.WithTx(tx).Update(ctx, attempt); err != nil {
			return fmt.Errorf("failed to advance attempt: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("SubmitAnswer: transaction failed")
		return nil, err
	}

	resp := &dto.AnswerSubmitResponse{
		Message:               "Answer submitted successfully",
		NextQuestionAvailable: hasNext,
		IsCorrect:             verdict.IsCorrect,
	}
	if !hasNext {
		resp.Message = "Quiz completed"
		log.Info().Uint("attemptID", attemptID).Msg("Attempt completed")
		publish(ctx, s.publisher, event.AttemptCompleted, event.AttemptPayload{
			AttemptID: attempt.ID,
			StudentID: attempt.StudentID,
			QuizID:    attempt.QuizID,
		})
	}
	return resp, nil
}

func (s *attemptService) Results(ctx context.Context, attemptID uint) (*dto.AttemptResultsDTO, error) {
	release, err := s.locker.Acquire(ctx, attemptLockKey(attemptID))
	if err != nil {
		return nil, err
	}
	defer release()

	attempt, err := s.attemptRepo.FindByIDWithDetails(ctx, attemptID)
	if err != nil {
		return nil, s.attemptErr(err)
	}
	if !attempt.IsCompleted() {
		return nil, ErrNotCompleted
	}

	quiz, err := s.loadQuiz(ctx, attempt.QuizID)
	if err != nil {
		return nil, err
	}

	tally, earned, err := s.scoring.Tally(ctx, attempt.Answers)
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("Failed to tally answers")
		return nil, err
	}
	total := quiz.TotalPoints()
	score := s.scoring.Score(earned, total)

	attempt.Score = &score
	if err := s.attemptRepo.Update(ctx, attempt); err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("Failed to persist score")
		return nil, err
	}

	duration := attempt.Duration()
	resp := &dto.AttemptResultsDTO{
		ID:                  attempt.ID,
		Student:             toStudentDTO(&attempt.Student),
		Quiz:                toQuizSummaryDTO(quiz),
		TimeStart:           attempt.TimeStart,
		TimeEnd:             attempt.TimeEnd,
		Score:               score,
		TotalQuestions:      len(quiz.MCQs) + len(quiz.FTQs),
		TotalPointsEarned:   earned,
		TotalPossiblePoints: total,
		TimeTaken:           formatDuration(duration),
		TimeTakenSeconds:    duration.Seconds(),
		Answers:             make([]dto.AnswerResultDTO, 0, len(tally)),
	}
	for _, ap := range tally {
		if ap.Answer.IsCorrect {
			resp.CorrectAnswers++
		}
		resp.Answers = append(resp.Answers, s.answerResult(ap))
	}
	return resp, nil
}

func (s *attemptService) answerResult(ap AnswerPoints) dto.AnswerResultDTO {
	out := dto.AnswerResultDTO{
		QuestionType: string(ap.Answer.QuestionRef.Kind),
		IsCorrect:    ap.Answer.IsCorrect,
		PointsEarned: ap.Earned,
	}
	if ap.Question != nil {
		out.QuestionText = ap.Question.Prompt()
		out.CorrectAnswer = s.grader.CorrectAnswer(ap.Question)
	}
	switch ap.Answer.QuestionRef.Kind {
	case model.KindMCQ:
		if ap.Answer.SelectedChoice != nil {
			content := ap.Answer.SelectedChoice.Content
			out.StudentAnswer = &content
		}
	case model.KindFTQ:
		out.StudentAnswer = ap.Answer.FreeTextResponse
	}
	return out
}

func (s *attemptService) loadQuiz(ctx context.Context, quizID uint) (*model.Quiz, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(ctx, quizID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	return quiz, nil
}

func (s *attemptService) attemptErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrAttemptNotFound
	}
	return err
}
