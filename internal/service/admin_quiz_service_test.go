package service

import (
	"context"
	"testing"

	"github.com/melcantwell27/quizWhiz/internal/dto"
	"github.com/melcantwell27/quizWhiz/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateQuizDefaultsMCQPoints(t *testing.T) {
	f := newFixture(t)
	created, err := f.admin.CreateQuiz(context.Background(), dto.QuizCreateDTO{
		Name: "Defaults",
		MCQs: []dto.MCQCreateDTO{
			{Question: "no points", Choices: []dto.ChoiceCreateDTO{{Content: "a", IsCorrect: true}}},
			{Question: "zero points", Points: intPtr(0)},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.MCQs, 2)
	assert.Equal(t, model.DefaultMCQPoints, created.MCQs[0].Points)
	assert.Equal(t, 0, created.MCQs[1].Points)
	assert.Equal(t, 5, created.TotalPoints)
	require.Len(t, created.MCQs[0].Choices, 1)
	assert.True(t, created.MCQs[0].Choices[0].IsCorrect)
}

func TestCreateQuizRejectsNegativePoints(t *testing.T) {
	f := newFixture(t)
	_, err := f.admin.CreateQuiz(context.Background(), dto.QuizCreateDTO{
		Name: "Bad",
		FTQs: []dto.FTQCreateDTO{{Question: "q", Points: intPtr(-1)}},
	})
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestAddQuestions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	quiz := f.scenarioQuiz(t)

	mcq, err := f.admin.AddMCQ(ctx, quiz.ID, dto.MCQCreateDTO{Question: "added", Choices: []dto.ChoiceCreateDTO{{Content: "c"}}})
	require.NoError(t, err)
	assert.Equal(t, 5, mcq.Points)

	ftq, err := f.admin.AddFTQ(ctx, quiz.ID, dto.FTQCreateDTO{Question: "added ftq", Points: intPtr(2)})
	require.NoError(t, err)

	detail, err := f.quizzes.GetQuiz(ctx, quiz.ID)
	require.NoError(t, err)
	require.Len(t, detail.MCQs, 2)
	require.Len(t, detail.FTQs, 2)
	assert.Equal(t, mcq.ID, detail.MCQs[1].ID)
	assert.Equal(t, ftq.ID, detail.FTQs[1].ID)
	assert.Equal(t, 22, detail.TotalPoints)

	_, err = f.admin.AddFTQ(ctx, 9999, dto.FTQCreateDTO{Question: "orphan", Points: intPtr(1)})
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestDeleteQuizCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	quiz := f.scenarioQuiz(t)
	keep := f.scenarioQuiz(t)
	studentID := f.newStudent(t, "leo@example.com")

	attempt, _, err := f.attempts.Start(ctx, studentID, quiz.ID)
	require.NoError(t, err)
	_, err = f.attempts.SubmitAnswer(ctx, attempt.ID, Submission{ChoiceID: uintPtr(quiz.MCQs[0].Choices[0].ID)})
	require.NoError(t, err)
	kept, _, err := f.attempts.Start(ctx, studentID, keep.ID)
	require.NoError(t, err)

	require.NoError(t, f.admin.DeleteQuiz(ctx, quiz.ID))

	count := func(m interface{}, where string, args ...interface{}) int64 {
		var n int64
		require.NoError(t, f.db.Model(m).Where(where, args...).Count(&n).Error)
		return n
	}
	assert.Zero(t, count(&model.Quiz{}, "id = ?", quiz.ID))
	assert.Zero(t, count(&model.MCQ{}, "quiz_id = ?", quiz.ID))
	assert.Zero(t, count(&model.FTQ{}, "quiz_id = ?", quiz.ID))
	assert.Zero(t, count(&model.Choice{}, "mcq_id = ?", quiz.MCQs[0].ID))
	assert.Zero(t, count(&model.Attempt{}, "quiz_id = ?", quiz.ID))
	assert.Zero(t, f.answerCount(t, attempt.ID))

	_, err = f.attempts.Get(ctx, kept.ID)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, count(&model.Choice{}, "mcq_id = ?", keep.MCQs[0].ID))

	assert.ErrorIs(t, f.admin.DeleteQuiz(ctx, quiz.ID), ErrQuizNotFound)
}

func TestDeleteChoiceClearsSelectedChoice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	quiz := f.scenarioQuiz(t)
	studentID := f.newStudent(t, "leo@example.com")
	attempt, _, err := f.attempts.Start(ctx, studentID, quiz.ID)
	require.NoError(t, err)
	_, err = f.attempts.SubmitAnswer(ctx, attempt.ID, Submission{ChoiceID: uintPtr(quiz.MCQs[0].Choices[0].ID)})
	require.NoError(t, err)

	require.NoError(t, f.admin.DeleteQuestion(ctx, quiz.MCQs[0].Ref()))

	var answer model.Answer
	require.NoError(t, f.db.Where("attempt_id = ?", attempt.ID).First(&answer).Error)
	assert.Nil(t, answer.SelectedChoiceID)
	assert.True(t, answer.IsCorrect)

	assert.ErrorIs(t, f.admin.DeleteQuestion(ctx, quiz.MCQs[0].Ref()), ErrQuestionNotFound)
}

func TestDeleteAttempt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	quiz := f.scenarioQuiz(t)
	studentID := f.newStudent(t, "leo@example.com")
	attempt, _, err := f.attempts.Start(ctx, studentID, quiz.ID)
	require.NoError(t, err)
	_, err = f.attempts.SubmitAnswer(ctx, attempt.ID, Submission{ChoiceID: uintPtr(quiz.MCQs[0].Choices[0].ID)})
	require.NoError(t, err)

	require.NoError(t, f.admin.DeleteAttempt(ctx, attempt.ID))
	assert.Zero(t, f.answerCount(t, attempt.ID))
	_, err = f.attempts.Get(ctx, attempt.ID)
	assert.ErrorIs(t, err, ErrAttemptNotFound)
	assert.ErrorIs(t, f.admin.DeleteAttempt(ctx, attempt.ID), ErrAttemptNotFound)
}
