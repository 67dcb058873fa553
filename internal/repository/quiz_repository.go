package repository

import (
	"context"

	"github.com/melcantwell27/quizWhiz/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	WithTx(tx *gorm.DB) QuizRepository
	Create(ctx context.Context, quiz *model.Quiz) error
	FindByID(ctx context.Context, id uint) (*model.Quiz, error)
	FindByIDWithQuestions(ctx context.Context, id uint) (*model.Quiz, error)
	FindByName(ctx context.Context, name string) (*model.Quiz, error)
	FindAll(ctx context.Context) ([]model.Quiz, error)
	Delete(ctx context.Context, id uint) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) WithTx(tx *gorm.DB) QuizRepository {
	return &quizRepository{db: tx}
}

// Create inserts the quiz together with any MCQs, choices and FTQs attached to it.
func (r *quizRepository) Create(ctx context.Context, quiz *model.Quiz) error {
	return r.db.WithContext(ctx).Create(quiz).Error
}

func (r *quizRepository) FindByID(ctx context.Context, id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.WithContext(ctx).First(&quiz, id).Error; err != nil {
		return nil, translate(err)
	}
	return &quiz, nil
}

// FindByIDWithQuestions loads MCQs (with choices) and FTQs, each in id order.
func (r *quizRepository) FindByIDWithQuestions(ctx context.Context, id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.WithContext(ctx).
		Preload("MCQs", func(db *gorm.DB) *gorm.DB {
			return db.Order("mcqs.id ASC")
		}).
		Preload("MCQs.Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("choices.id ASC")
		}).
		Preload("FTQs", func(db *gorm.DB) *gorm.DB {
			return db.Order("ftqs.id ASC")
		}).
		First(&quiz, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &quiz, nil
}

func (r *quizRepository) FindByName(ctx context.Context, name string) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.WithContext(ctx).Where("name = ?", name).Order("id ASC").First(&quiz).Error; err != nil {
		return nil, translate(err)
	}
	return &quiz, nil
}

func (r *quizRepository) FindAll(ctx context.Context) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&quizzes).Error
	return quizzes, err
}

// Delete removes only the quiz row; callers delete dependents in the same transaction.
func (r *quizRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Quiz{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
