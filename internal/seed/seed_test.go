package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/melcantwell27/quizWhiz/database"
	"github.com/melcantwell27/quizWhiz/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLizardsDataIsWellFormed(t *testing.T) {
	d, err := Lizards()
	require.NoError(t, err)
	assert.Len(t, d.Quizzes, 8)
	assert.Len(t, d.Students, 3)

	for _, q := range d.Quizzes {
		for _, question := range q.Questions {
			assert.True(t, question.Kind.IsValid(), "quiz %q", q.Name)
			if question.Kind != model.KindMCQ {
				continue
			}
			correct := 0
			for _, c := range question.Choices {
				if c.IsCorrect {
					correct++
				}
			}
			assert.Equal(t, 1, correct, "question %q", question.Text)
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "seed.db"), nil)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	d, err := Lizards()
	require.NoError(t, err)

	first, err := Run(context.Background(), db, d)
	require.NoError(t, err)
	assert.Equal(t, 8, first.Quizzes)
	assert.Equal(t, 3, first.Students)
	assert.Equal(t, 7, first.FTQs)

	second, err := Run(context.Background(), db, d)
	require.NoError(t, err)
	assert.Equal(t, Result{}, second)

	var count int64
	require.NoError(t, db.Model(&model.Quiz{}).Count(&count).Error)
	assert.EqualValues(t, 8, count)
}
