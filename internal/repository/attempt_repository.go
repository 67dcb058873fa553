package repository

import (
	"context"

	"github.com/melcantwell27/quizWhiz/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttemptRepository interface {
	WithTx(tx *gorm.DB) AttemptRepository
	Create(ctx context.Context, attempt *model.Attempt) error
	// Update writes the mutable columns: time_end, score and current_question.
	Update(ctx context.Context, attempt *model.Attempt) error
	FindByID(ctx context.Context, id uint) (*model.Attempt, error)
	FindByIDWithDetails(ctx context.Context, id uint) (*model.Attempt, error)
	FindInProgress(ctx context.Context, studentID, quizID uint) (*model.Attempt, error)
	FindAllByStudent(ctx context.Context, studentID uint) ([]model.Attempt, error)
	IDsByQuiz(ctx context.Context, quizID uint) ([]uint, error)
	Delete(ctx context.Context, ids ...uint) error
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) WithTx(tx *gorm.DB) AttemptRepository {
	return &attemptRepository{db: tx}
}

func (r *attemptRepository) Create(ctx context.Context, attempt *model.Attempt) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(attempt).Error
}

func (r *attemptRepository) Update(ctx context.Context, attempt *model.Attempt) error {
	return r.db.WithContext(ctx).
		Model(attempt).
		Select("time_end", "score", "current_question").
		Updates(attempt).Error
}

func (r *attemptRepository) FindByID(ctx context.Context, id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	if err := r.db.WithContext(ctx).First(&attempt, id).Error; err != nil {
		return nil, translate(err)
	}
	return &attempt, nil
}

// FindByIDWithDetails preloads the student, the quiz and the answers in id order.
func (r *attemptRepository) FindByIDWithDetails(ctx context.Context, id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Quiz").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.id ASC")
		}).
		Preload("Answers.SelectedChoice").
		First(&attempt, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &attempt, nil
}

func (r *attemptRepository) FindInProgress(ctx context.Context, studentID, quizID uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND quiz_id = ? AND time_end IS NULL", studentID, quizID).
		Order("id ASC").
		First(&attempt).Error
	if err != nil {
		return nil, translate(err)
	}
	return &attempt, nil
}

func (r *attemptRepository) FindAllByStudent(ctx context.Context, studentID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.WithContext(ctx).
		Preload("Quiz").
		Where("student_id = ?", studentID).
		Order("time_start DESC").
		Order("id DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) IDsByQuiz(ctx context.Context, quizID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&model.Attempt{}).Where("quiz_id = ?", quizID).Pluck("id", &ids).Error
	return ids, err
}

func (r *attemptRepository) Delete(ctx context.Context, ids ...uint) error {
	if len(ids) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Attempt{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
