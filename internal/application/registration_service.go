package application

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cnic-auth/backend/internal/domain/entity"
	"github.com/cnic-auth/backend/internal/domain/repository"
	"github.com/cnic-auth/backend/pkg/helpers"
	"github.com/cnic-auth/backend/pkg/mailer"
	tpl "github.com/cnic-auth/backend/pkg/mailer/templates"
	"github.com/cnic-auth/backend/pkg/validation"
)

// RegisterInput is the registration payload. Validation tags mirror the
// account rules: CNIC is the 13-digit login identifier, passwords need a
// minimum length plus at least one digit and one letter.
type RegisterInput struct {
	FullName        string `json:"full_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	CNIC            string `json:"cnic" validate:"required,cnic"`
	Gender          string `json:"gender" validate:"required,oneof=male female other"`
	DOB             string `json:"dob" validate:"required,datetime=2006-01-02"`
	Password        string `json:"password" validate:"required,min=8,hasdigit,hasletter"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// RegistrationService validates candidate users and persists them.
type RegistrationService struct {
	Repo        repository.UserRepository
	Pub         *helpers.RabbitPublisher
	Logger      *logrus.Logger
	MailEnabled bool
}

func NewRegistrationService(repo repository.UserRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger, mailEnabled bool) *RegistrationService {
	return &RegistrationService{Repo: repo, Pub: pub, Logger: logger, MailEnabled: mailEnabled}
}

// Register runs every field rule before touching the store and returns all
// failures together as a field-keyed map. A nil map with a nil error means
// the user was created. Uniqueness is ultimately enforced by the store's
// insert, which surfaces as repository.ErrDuplicateUser.
func (s *RegistrationService) Register(ctx context.Context, in RegisterInput) (map[string]string, error) {
	if fieldErrs := validation.Struct(in); fieldErrs != nil {
		return fieldErrs, nil
	}

	dob, err := time.Parse("2006-01-02", in.DOB)
	if err != nil {
		// datetime tag already vetted the format
		return map[string]string{"dob": "Date has wrong format. Use YYYY-MM-DD."}, nil
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		FullName:     strings.TrimSpace(in.FullName),
		Email:        normalizeEmail(in.Email),
		CNIC:         in.CNIC,
		Gender:       entity.Gender(in.Gender),
		DOB:          dob,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithField("user_id", u.UserID).Info("user registered")
	}
	s.enqueueWelcomeEmail(ctx, u)
	return nil, nil
}

// normalizeEmail lowercases the domain part and trims whitespace, matching
// the canonical form stored for the uniqueness constraint.
func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return strings.ToLower(email)
	}
	return email[:at] + strings.ToLower(email[at:])
}

// enqueueWelcomeEmail is best effort: registration success never depends on
// the mail pipeline being up.
func (s *RegistrationService) enqueueWelcomeEmail(ctx context.Context, u *entity.User) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: tpl.TemplateWelcome,
		Data:     map[string]any{"Name": u.FullName},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.UserID).Warn("failed to enqueue welcome email")
	}
}
