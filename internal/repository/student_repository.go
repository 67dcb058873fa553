package repository

import (
	"context"

	"github.com/melcantwell27/quizWhiz/internal/model"
	"gorm.io/gorm"
)

type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	FindByID(ctx context.Context, id uint) (*model.Student, error)
	FindByEmail(ctx context.Context, email string) (*model.Student, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) FindByID(ctx context.Context, id uint) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).First(&student, id).Error; err != nil {
		return nil, translate(err)
	}
	return &student, nil
}

func (r *studentRepository) FindByEmail(ctx context.Context, email string) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&student).Error; err != nil {
		return nil, translate(err)
	}
	return &student, nil
}
