package repository

import (
	"context"
	"fmt"

	"github.com/melcantwell27/quizWhiz/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	WithTx(tx *gorm.DB) QuestionRepository
	CreateMCQ(ctx context.Context, mcq *model.MCQ) error
	CreateFTQ(ctx context.Context, ftq *model.FTQ) error
	FindMCQ(ctx context.Context, id uint) (*model.MCQ, error)
	FindFTQ(ctx context.Context, id uint) (*model.FTQ, error)
	// Resolve loads the question a reference points at, whatever its kind.
	Resolve(ctx context.Context, ref model.QuestionRef) (model.Question, error)
	ChoiceIDsByMCQ(ctx context.Context, mcqIDs []uint) ([]uint, error)
	DeleteMCQs(ctx context.Context, ids []uint) error
	DeleteFTQs(ctx context.Context, ids []uint) error
	DeleteChoicesByMCQ(ctx context.Context, mcqIDs []uint) error
	MCQIDsByQuiz(ctx context.Context, quizID uint) ([]uint, error)
	FTQIDsByQuiz(ctx context.Context, quizID uint) ([]uint, error)
}

type lookupFunc func(r *questionRepository, ctx context.Context, id uint) (model.Question, error)

var lookups = map[model.QuestionKind]lookupFunc{
	model.KindMCQ: func(r *questionRepository, ctx context.Context, id uint) (model.Question, error) {
		return r.FindMCQ(ctx, id)
	},
	model.KindFTQ: func(r *questionRepository, ctx context.Context, id uint) (model.Question, error) {
		return r.FindFTQ(ctx, id)
	},
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) WithTx(tx *gorm.DB) QuestionRepository {
	return &questionRepository{db: tx}
}

func (r *questionRepository) CreateMCQ(ctx context.Context, mcq *model.MCQ) error {
	return r.db.WithContext(ctx).Create(mcq).Error
}

func (r *questionRepository) CreateFTQ(ctx context.Context, ftq *model.FTQ) error {
	return r.db.WithContext(ctx).Create(ftq).Error
}

func (r *questionRepository) FindMCQ(ctx context.Context, id uint) (*model.MCQ, error) {
	var mcq model.MCQ
	err := r.db.WithContext(ctx).
		Preload("Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("choices.id ASC")
		}).
		First(&mcq, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &mcq, nil
}

func (r *questionRepository) FindFTQ(ctx context.Context, id uint) (*model.FTQ, error) {
	var ftq model.FTQ
	if err := r.db.WithContext(ctx).First(&ftq, id).Error; err != nil {
		return nil, translate(err)
	}
	return &ftq, nil
}

func (r *questionRepository) Resolve(ctx context.Context, ref model.QuestionRef) (model.Question, error) {
	lookup, ok := lookups[ref.Kind]
	if !ok || ref.ID == 0 {
		return nil, fmt.Errorf("resolve %q: %w", ref.String(), ErrNotFound)
	}
	q, err := lookup(r, ctx, ref.ID)
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (r *questionRepository) MCQIDsByQuiz(ctx context.Context, quizID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&model.MCQ{}).Where("quiz_id = ?", quizID).Pluck("id", &ids).Error
	return ids, err
}

func (r *questionRepository) FTQIDsByQuiz(ctx context.Context, quizID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&model.FTQ{}).Where("quiz_id = ?", quizID).Pluck("id", &ids).Error
	return ids, err
}

func (r *questionRepository) ChoiceIDsByMCQ(ctx context.Context, mcqIDs []uint) ([]uint, error) {
	var ids []uint
	if len(mcqIDs) == 0 {
		return ids, nil
	}
	err := r.db.WithContext(ctx).Model(&model.Choice{}).Where("mcq_id IN ?", mcqIDs).Pluck("id", &ids).Error
	return ids, err
}

func (r *questionRepository) DeleteChoicesByMCQ(ctx context.Context, mcqIDs []uint) error {
	if len(mcqIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("mcq_id IN ?", mcqIDs).Delete(&model.Choice{}).Error
}

func (r *questionRepository) DeleteMCQs(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.MCQ{}).Error
}

func (r *questionRepository) DeleteFTQs(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.FTQ{}).Error
}
