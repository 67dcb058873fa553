package service

import (
	"context"
	"testing"

	"github.com/melcantwell27/quizWhiz/internal/model"
	"github.com/melcantwell27/quizWhiz/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	s := NewScoringService(nil)
	tests := []struct {
		name          string
		earned, total int
		want          float64
	}{
		{"all correct", 15, 15, 100},
		{"none correct", 0, 15, 0},
		{"two thirds", 10, 15, 66.67},
		{"one third", 5, 15, 33.33},
		{"zero total", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, s.Score(tt.earned, tt.total), 1e-9)
		})
	}
}

func TestTallySkipsDeletedQuestions(t *testing.T) {
	f := newFixture(t)
	quiz := f.scenarioQuiz(t)
	mcq := quiz.MCQs[0]
	ftq := quiz.FTQs[0]

	s := NewScoringService(repository.NewQuestionRepository(f.db))
	answers := []model.Answer{
		{ID: 1, QuestionRef: mcq.Ref(), IsCorrect: true},
		{ID: 2, QuestionRef: ftq.Ref(), IsCorrect: false},
		{ID: 3, QuestionRef: model.NewQuestionRef(model.KindFTQ, 999), IsCorrect: true},
	}

	tally, earned, err := s.Tally(context.Background(), answers)
	require.NoError(t, err)
	assert.Equal(t, 5, earned)
	require.Len(t, tally, 3)
	assert.Equal(t, 5, tally[0].Earned)
	assert.Equal(t, 0, tally[1].Earned)
	assert.NotNil(t, tally[1].Question)
	assert.Nil(t, tally[2].Question)
	assert.Equal(t, 0, tally[2].Earned)
}
