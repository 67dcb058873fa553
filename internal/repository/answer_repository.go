package repository

import (
	"context"
	"errors"

	"github.com/melcantwell27/quizWhiz/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	WithTx(tx *gorm.DB) AnswerRepository
	// Upsert stores the answer for (attempt, question), replacing any previous one.
	Upsert(ctx context.Context, answer *model.Answer) error
	FindByAttemptAndQuestion(ctx context.Context, attemptID uint, ref model.QuestionRef) (*model.Answer, error)
	FindAllByAttempt(ctx context.Context, attemptID uint) ([]model.Answer, error)
	DeleteByAttempts(ctx context.Context, attemptIDs []uint) error
	ClearChoices(ctx context.Context, choiceIDs []uint) error
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) WithTx(tx *gorm.DB) AnswerRepository {
	return &answerRepository{db: tx}
}

func (r *answerRepository) Upsert(ctx context.Context, answer *model.Answer) error {
	existing, err := r.FindByAttemptAndQuestion(ctx, answer.AttemptID, answer.QuestionRef)
	switch {
	case errors.Is(err, ErrNotFound):
		return r.db.WithContext(ctx).Omit("SelectedChoice").Create(answer).Error
	case err != nil:
		return err
	}

	answer.ID = existing.ID
	answer.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).
		Model(existing).
		Updates(map[string]any{
			"selected_choice_id": answer.SelectedChoiceID,
			"free_text_response": answer.FreeTextResponse,
			"is_correct":         answer.IsCorrect,
		}).Error
}

func (r *answerRepository) FindByAttemptAndQuestion(ctx context.Context, attemptID uint, ref model.QuestionRef) (*model.Answer, error) {
	var answer model.Answer
	err := r.db.WithContext(ctx).
		Where("attempt_id = ? AND question_ref = ?", attemptID, ref).
		First(&answer).Error
	if err != nil {
		return nil, translate(err)
	}
	return &answer, nil
}

func (r *answerRepository) FindAllByAttempt(ctx context.Context, attemptID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.WithContext(ctx).
		Preload("SelectedChoice").
		Where("attempt_id = ?", attemptID).
		Order("id ASC").
		Find(&answers).Error
	return answers, err
}

func (r *answerRepository) DeleteByAttempts(ctx context.Context, attemptIDs []uint) error {
	if len(attemptIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("attempt_id IN ?", attemptIDs).Delete(&model.Answer{}).Error
}

// ClearChoices nulls selected_choice_id on answers that picked one of the given choices.
func (r *answerRepository) ClearChoices(ctx context.Context, choiceIDs []uint) error {
	if len(choiceIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.Answer{}).
		Where("selected_choice_id IN ?", choiceIDs).
		Update("selected_choice_id", nil).Error
}
