package service

import (
	"context"
	"testing"

	"github.com/melcantwell27/quizWhiz/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	s, err := f.students.Register(ctx, dto.StudentRegisterDTO{Name: " Leo Lizardi ", Email: "Leo@Example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Leo Lizardi", s.Name)
	assert.Equal(t, "leo@example.com", s.Email)

	_, err = f.students.Register(ctx, dto.StudentRegisterDTO{Name: "Other", Email: "leo@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Equal(t, KindConflict, KindOf(err))

	got, err := f.students.Login(ctx, "LEO@example.com")
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)

	_, err = f.students.Login(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrStudentNotFound)

	_, err = f.students.Login(ctx, "  ")
	assert.ErrorIs(t, err, ErrMissingEmail)

	byID, err := f.students.GetStudent(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, *s, *byID)
}

func TestListQuizzesOrderedByName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, name := range []string{"Lizard Superlatives", "Amazing Lizard Defenses", "Lizard Biology & Habits"} {
		f.createQuiz(t, dto.QuizCreateDTO{Name: name})
	}

	list, err := f.quizzes.ListQuizzes(ctx)
	require.NoError(t, err)
	var names []string
	for _, q := range list {
		names = append(names, q.Name)
	}
	assert.Equal(t, []string{"Amazing Lizard Defenses", "Lizard Biology & Habits", "Lizard Superlatives"}, names)

	_, err = f.quizzes.GetQuiz(ctx, 9999)
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestQuizDetailHidesCorrectness(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	quiz := f.scenarioQuiz(t)

	detail, err := f.quizzes.GetQuiz(ctx, quiz.ID)
	require.NoError(t, err)
	require.Len(t, detail.MCQs, 1)
	assert.Equal(t, "Pick A", detail.MCQs[0].Question)
	assert.Equal(t, 15, detail.TotalPoints)

	withAnswers, err := f.quizzes.GetQuizWithAnswers(ctx, quiz.ID)
	require.NoError(t, err)
	require.Len(t, withAnswers.MCQs[0].Choices, 2)
	assert.True(t, withAnswers.MCQs[0].Choices[0].IsCorrect)
	assert.False(t, withAnswers.MCQs[0].Choices[1].IsCorrect)
}
