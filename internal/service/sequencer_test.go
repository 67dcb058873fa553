package service

import (
	"testing"

	"github.com/melcantwell27/quizWhiz/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	quiz := &model.Quiz{
		MCQs: []model.MCQ{{ID: 4}, {ID: 9}},
		FTQs: []model.FTQ{{ID: 1}, {ID: 2}},
	}

	seq, err := Sequence(quiz)
	require.NoError(t, err)

	var refs []string
	for _, q := range seq {
		refs = append(refs, q.Ref().String())
	}
	assert.Equal(t, []string{"mcq:4", "mcq:9", "ftq:1", "ftq:2"}, refs)

	tests := []struct {
		name string
		ref  model.QuestionRef
		want int
	}{
		{"first", model.NewQuestionRef(model.KindMCQ, 4), 0},
		{"first ftq", model.NewQuestionRef(model.KindFTQ, 1), 2},
		{"same id other kind", model.NewQuestionRef(model.KindFTQ, 4), -1},
		{"zero", model.QuestionRef{}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Position(seq, tt.ref))
		})
	}
}

func TestSequenceEmptyQuiz(t *testing.T) {
	_, err := Sequence(&model.Quiz{})
	assert.ErrorIs(t, err, ErrNoQuestions)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestSequenceOnlyFTQs(t *testing.T) {
	seq, err := Sequence(&model.Quiz{FTQs: []model.FTQ{{ID: 3}}})
	require.NoError(t, err)
	require.Len(t, seq, 1)
	assert.Equal(t, model.NewQuestionRef(model.KindFTQ, 3), seq[0].Ref())
}
