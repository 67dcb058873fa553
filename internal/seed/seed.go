// Package seed loads the demo lizard quizzes and students.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/melcantwell27/quizWhiz/internal/model"
	"github.com/melcantwell27/quizWhiz/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

//go:embed lizards.json
var lizardsJSON []byte

type choiceData struct {
	Content   string `json:"content"`
	IsCorrect bool   `json:"is_correct"`
}

type questionData struct {
	Kind    model.QuestionKind `json:"kind"`
	Text    string             `json:"text"`
	Points  int                `json:"points"`
	Choices []choiceData       `json:"choices"`
}

type quizData struct {
	Name      string         `json:"name"`
	Questions []questionData `json:"questions"`
}

type studentData struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Data struct {
	Students []studentData `json:"students"`
	Quizzes  []quizData    `json:"quizzes"`
}

// Result counts what a seed run created.
type Result struct {
	Students int
	Quizzes  int
	MCQs     int
	FTQs     int
}

// Lizards returns the bundled demo data set.
func Lizards() (*Data, error) {
	var d Data
	if err := json.Unmarshal(lizardsJSON, &d); err != nil {
		return nil, fmt.Errorf("decode seed data: %w", err)
	}
	return &d, nil
}

// Run inserts every student and quiz in d that does not exist yet. Students
// are matched by email and quizzes by name, so running it twice is harmless.
func Run(ctx context.Context, db *gorm.DB, d *Data) (Result, error) {
	var res Result
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		students := repository.NewStudentRepository(tx)
		quizzes := repository.NewQuizRepository(tx)

		for _, s := range d.Students {
			_, err := students.FindByEmail(ctx, s.Email)
			if err == nil {
				continue
			}
			if !errors.Is(err, repository.ErrNotFound) {
				return err
			}
			if err := students.Create(ctx, &model.Student{Name: s.Name, Email: s.Email}); err != nil {
				return fmt.Errorf("create student %s: %w", s.Email, err)
			}
			res.Students++
		}

		for _, q := range d.Quizzes {
			_, err := quizzes.FindByName(ctx, q.Name)
			if err == nil {
				continue
			}
			if !errors.Is(err, repository.ErrNotFound) {
				return err
			}
			quiz := model.Quiz{Name: q.Name}
			for _, qd := range q.Questions {
				switch qd.Kind {
				case model.KindMCQ:
					mcq := model.MCQ{Text: qd.Text, Points: qd.Points}
					for _, c := range qd.Choices {
						mcq.Choices = append(mcq.Choices, model.Choice{Content: c.Content, IsCorrect: c.IsCorrect})
					}
					quiz.MCQs = append(quiz.MCQs, mcq)
				case model.KindFTQ:
					quiz.FTQs = append(quiz.FTQs, model.FTQ{Text: qd.Text, Points: qd.Points})
				default:
					return fmt.Errorf("quiz %q: unknown question kind %q", q.Name, qd.Kind)
				}
			}
			if err := quizzes.Create(ctx, &quiz); err != nil {
				return fmt.Errorf("create quiz %q: %w", q.Name, err)
			}
			res.Quizzes++
			res.MCQs += len(quiz.MCQs)
			res.FTQs += len(quiz.FTQs)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("Seeding failed")
		return Result{}, err
	}
	log.Info().
		Int("students", res.Students).
		Int("quizzes", res.Quizzes).
		Int("mcqs", res.MCQs).
		Int("ftqs", res.FTQs).
		Msg("Seed completed")
	return res, nil
}
