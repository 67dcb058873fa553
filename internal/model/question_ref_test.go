package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestionRef(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    QuestionRef
		wantErr bool
	}{
		{name: "mcq", in: "mcq:12", want: QuestionRef{Kind: KindMCQ, ID: 12}},
		{name: "ftq", in: "ftq:3", want: QuestionRef{Kind: KindFTQ, ID: 3}},
		{name: "upper case kind", in: "MCQ:7", want: QuestionRef{Kind: KindMCQ, ID: 7}},
		{name: "unknown kind", in: "essay:1", wantErr: true},
		{name: "missing separator", in: "mcq12", wantErr: true},
		{name: "zero id", in: "ftq:0", wantErr: true},
		{name: "negative id", in: "ftq:-1", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuestionRef(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidQuestionRef)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.String(), got.String())
		})
	}
}

func TestQuestionRefValueAndScan(t *testing.T) {
	t.Run("zero is NULL", func(t *testing.T) {
		v, err := QuestionRef{}.Value()
		require.NoError(t, err)
		assert.Nil(t, v)

		var r QuestionRef
		require.NoError(t, r.Scan(nil))
		assert.True(t, r.IsZero())
	})

	t.Run("round trip through column value", func(t *testing.T) {
		ref := NewQuestionRef(KindFTQ, 42)
		v, err := ref.Value()
		require.NoError(t, err)
		assert.Equal(t, "ftq:42", v)

		var scanned QuestionRef
		require.NoError(t, scanned.Scan([]byte("ftq:42")))
		assert.Equal(t, ref, scanned)
	})

	t.Run("partial reference is rejected", func(t *testing.T) {
		_, err := QuestionRef{Kind: KindMCQ}.Value()
		assert.ErrorIs(t, err, ErrInvalidQuestionRef)
		_, err = QuestionRef{ID: 4}.Value()
		assert.ErrorIs(t, err, ErrInvalidQuestionRef)
	})

	t.Run("equality needs kind and id", func(t *testing.T) {
		assert.Equal(t, NewQuestionRef(KindMCQ, 1), NewQuestionRef(KindMCQ, 1))
		assert.NotEqual(t, NewQuestionRef(KindMCQ, 1), NewQuestionRef(KindFTQ, 1))
	})
}

func TestQuizTotalPointsAndFirstCorrectChoice(t *testing.T) {
	mcq := MCQ{ID: 1, Points: 5, Choices: []Choice{
		{ID: 10, Content: "A"},
		{ID: 11, Content: "B", IsCorrect: true},
		{ID: 12, Content: "C", IsCorrect: true},
	}}
	quiz := Quiz{MCQs: []MCQ{mcq}, FTQs: []FTQ{{ID: 1, Points: 10}}}

	assert.Equal(t, 15, quiz.TotalPoints())
	require.NotNil(t, mcq.FirstCorrectChoice())
	assert.Equal(t, "B", mcq.FirstCorrectChoice().Content)

	_, ok := mcq.HasChoice(99)
	assert.False(t, ok)
	assert.Nil(t, (&MCQ{}).FirstCorrectChoice())
}
