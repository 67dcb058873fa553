package service

import (
	"context"
	"errors"
	"strings"

	"github.com/melcantwell27/quizWhiz/internal/dto"
	"github.com/melcantwell27/quizWhiz/internal/event"
	"github.com/melcantwell27/quizWhiz/internal/model"
	"github.com/melcantwell27/quizWhiz/internal/repository"
	"github.com/rs/zerolog/log"
)

type StudentService interface {
	Register(ctx context.Context, req dto.StudentRegisterDTO) (*dto.StudentDTO, error)
	Login(ctx context.Context, email string) (*dto.StudentDTO, error)
	GetStudent(ctx context.Context, studentID uint) (*dto.StudentDTO, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
	publisher   event.Publisher
}

func NewStudentService(studentRepo repository.StudentRepository, publisher event.Publisher) StudentService {
	return &studentService{studentRepo: studentRepo, publisher: publisher}
}

// normalizeEmail makes email lookups case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *studentService) Register(ctx context.Context, req dto.StudentRegisterDTO) (*dto.StudentDTO, error) {
	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)
	if email == "" {
		return nil, ErrMissingEmail
	}
	if name == "" {
		return nil, &Error{Kind: KindInvalidInput, Message: "name is required"}
	}

	if _, err := s.studentRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	student := model.Student{Name: name, Email: email}
	if err := s.studentRepo.Create(ctx, &student); err != nil {
		// A concurrent registration may have won the unique index.
		if _, findErr := s.studentRepo.FindByEmail(ctx, email); findErr == nil {
			return nil, ErrEmailTaken
		}
		log.Error().Err(err).Str("email", email).Msg("Failed to create student")
		return nil, err
	}

	log.Info().Uint("studentID", student.ID).Msg("Student registered")
	publish(ctx, s.publisher, event.StudentRegistered, event.StudentPayload{StudentID: student.ID, Email: student.Email})

	resp := toStudentDTO(&student)
	return &resp, nil
}

func (s *studentService) Login(ctx context.Context, email string) (*dto.StudentDTO, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, ErrMissingEmail
	}
	student, err := s.studentRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	resp := toStudentDTO(student)
	return &resp, nil
}

func (s *studentService) GetStudent(ctx context.Context, studentID uint) (*dto.StudentDTO, error) {
	student, err := s.studentRepo.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	resp := toStudentDTO(student)
	return &resp, nil
}
