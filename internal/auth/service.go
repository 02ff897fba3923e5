package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/agenthands/curriculum/internal/core"
	"github.com/agenthands/curriculum/internal/core/model"
)

// StudentStore is the part of the planner the auth flows need.
type StudentStore interface {
	GetStudentRecord(ctx context.Context, studentID string) (*model.StudentRecord, error)
	RegisterStudent(ctx context.Context, s model.Student, passwordHash string) error
}

type Service struct {
	Store  StudentStore
	Tokens *TokenIssuer
	Log    *zap.Logger
}

func NewService(store StudentStore, tokens *TokenIssuer, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{Store: store, Tokens: tokens, Log: log}
}

// Register creates the student and returns a token for them.
func (s *Service) Register(ctx context.Context, reg model.Registration) (*model.AuthenticationResponse, error) {
	hash, err := HashPassword(reg.Password)
	if err != nil {
		return nil, err
	}

	student := model.Student{
		StudentID:   reg.StudentID,
		Email:       reg.Email,
		Disciplines: []string{},
		CourseCodes: []string{},
	}
	if err := s.Store.RegisterStudent(ctx, student, hash); err != nil {
		return nil, err
	}
	s.Log.Info("registered student", zap.String("student_id", reg.StudentID))

	return s.respond(reg.StudentID)
}

// Authenticate checks the password and returns a fresh token. An unknown
// student surfaces as core.ErrStudentNotFound.
func (s *Service) Authenticate(ctx context.Context, studentID, password string) (*model.AuthenticationResponse, error) {
	rec, err := s.Store.GetStudentRecord(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !CheckPassword(rec.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return s.respond(studentID)
}

func (s *Service) respond(studentID string) (*model.AuthenticationResponse, error) {
	token, err := s.Tokens.Issue(studentID)
	if err != nil {
		return nil, err
	}
	return &model.AuthenticationResponse{
		AccessToken: token,
		TokenType:   TokenType,
		UserID:      studentID,
	}, nil
}

// IsAuthError reports whether err should be answered with 401.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrInvalidCredentials)
}

var _ StudentStore = (*core.Planner)(nil)
