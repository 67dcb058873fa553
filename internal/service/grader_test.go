package service

import (
	"context"
	"testing"

	"github.com/melcantwell27/quizWhiz/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraderMCQ(t *testing.T) {
	mcq := &model.MCQ{ID: 1, Points: 5, Choices: []model.Choice{
		{ID: 10, MCQID: 1, Content: "A", IsCorrect: true},
		{ID: 11, MCQID: 1, Content: "B"},
	}}
	g := NewGrader()

	tests := []struct {
		name        string
		sub         Submission
		wantCorrect bool
		wantErr     error
	}{
		{name: "correct choice", sub: Submission{ChoiceID: uintPtr(10)}, wantCorrect: true},
		{name: "wrong choice", sub: Submission{ChoiceID: uintPtr(11)}},
		{name: "choice of another question", sub: Submission{ChoiceID: uintPtr(99)}, wantErr: ErrInvalidChoice},
		{name: "missing choice", sub: Submission{Text: strPtr("A")}, wantErr: ErrMissingChoice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := g.Grade(context.Background(), mcq, tt.sub)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, KindInvalidInput, KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCorrect, v.IsCorrect)
			require.NotNil(t, v.SelectedChoiceID)
			assert.Equal(t, *tt.sub.ChoiceID, *v.SelectedChoiceID)
			assert.Nil(t, v.FreeTextResponse)
		})
	}

	require.NotNil(t, g.CorrectAnswer(mcq))
	assert.Equal(t, "A", *g.CorrectAnswer(mcq))
	assert.Nil(t, g.CorrectAnswer(&model.MCQ{ID: 2}))
}

func TestGraderFTQ(t *testing.T) {
	ftq := &model.FTQ{ID: 1, Points: 10}
	g := NewGrader()

	tests := []struct {
		name        string
		text        *string
		wantCorrect bool
		wantStored  string
	}{
		{"non-empty", strPtr("autotomy"), true, "autotomy"},
		{"empty", strPtr(""), false, ""},
		{"whitespace only", strPtr("   "), false, "   "},
		{"missing", nil, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := g.Grade(context.Background(), ftq, Submission{Text: tt.text})
			require.NoError(t, err)
			assert.Equal(t, tt.wantCorrect, v.IsCorrect)
			require.NotNil(t, v.FreeTextResponse)
			assert.Equal(t, tt.wantStored, *v.FreeTextResponse)
			assert.Nil(t, v.SelectedChoiceID)
		})
	}
	assert.Nil(t, g.CorrectAnswer(ftq))
}

type alwaysWrong struct{}

func (alwaysWrong) Grade(context.Context, model.Question, Submission) (Verdict, error) {
	return Verdict{FreeTextResponse: strPtr("")}, nil
}
func (alwaysWrong) CorrectAnswer(model.Question) *string { return strPtr("expected") }

func TestGraderStrategyOverride(t *testing.T) {
	g := NewGrader(map[model.QuestionKind]Strategy{model.KindFTQ: alwaysWrong{}})
	v, err := g.Grade(context.Background(), &model.FTQ{ID: 1}, Submission{Text: strPtr("anything")})
	require.NoError(t, err)
	assert.False(t, v.IsCorrect)
	assert.Equal(t, "expected", *g.CorrectAnswer(&model.FTQ{ID: 1}))
}
