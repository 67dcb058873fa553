package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/melcantwell27/quizWhiz/database"
	"github.com/melcantwell27/quizWhiz/internal/dto"
	"github.com/melcantwell27/quizWhiz/internal/event"
	"github.com/melcantwell27/quizWhiz/internal/lock"
	"github.com/melcantwell27/quizWhiz/internal/model"
	"github.com/melcantwell27/quizWhiz/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	quizRepo  repository.QuizRepository
	attempts  AttemptService
	admin     AdminQuizService
	students  StudentService
	quizzes   QuizService
	publisher *event.MemoryPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "quizwhiz.db"), nil)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	quizRepo := repository.NewQuizRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	locker := lock.NewLocalLocker()
	publisher := &event.MemoryPublisher{}

	return &fixture{
		db:       db,
		quizRepo: quizRepo,
		attempts: NewAttemptService(db, quizRepo, questionRepo, studentRepo, attemptRepo, answerRepo,
			NewGrader(), NewScoringService(questionRepo), locker, publisher),
		admin:     NewAdminQuizService(db, quizRepo, questionRepo, attemptRepo, answerRepo, locker),
		students:  NewStudentService(studentRepo, publisher),
		quizzes:   NewQuizService(quizRepo),
		publisher: publisher,
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func uintPtr(v uint) *uint    { return &v }

func (f *fixture) createQuiz(t *testing.T, req dto.QuizCreateDTO) *model.Quiz {
	t.Helper()
	created, err := f.admin.CreateQuiz(context.Background(), req)
	require.NoError(t, err)
	quiz, err := f.quizRepo.FindByIDWithQuestions(context.Background(), created.ID)
	require.NoError(t, err)
	return quiz
}

// scenarioQuiz has one 5 point MCQ (A correct, B wrong) and one 10 point FTQ.
func (f *fixture) scenarioQuiz(t *testing.T) *model.Quiz {
	return f.createQuiz(t, dto.QuizCreateDTO{
		Name: "Scenario",
		MCQs: []dto.MCQCreateDTO{{
			Question: "Pick A",
			Points:   intPtr(5),
			Choices: []dto.ChoiceCreateDTO{
				{Content: "A", IsCorrect: true},
				{Content: "B"},
			},
		}},
		FTQs: []dto.FTQCreateDTO{{Question: "Say anything", Points: intPtr(10)}},
	})
}

func (f *fixture) newStudent(t *testing.T, email string) uint {
	t.Helper()
	s, err := f.students.Register(context.Background(), dto.StudentRegisterDTO{Name: "Leo", Email: email})
	require.NoError(t, err)
	return s.ID
}

func (f *fixture) answerCount(t *testing.T, attemptID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&model.Answer{}).Where("attempt_id = ?", attemptID).Count(&n).Error)
	return n
}
