package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushub/events-api/internal/core/domain"
	"github.com/campushub/events-api/internal/core/ports"
)

// LoginLimiter abstracts the failed-login throttle (Redis).
type LoginLimiter interface {
	// Allow reports whether another login attempt for email is permitted.
	Allow(ctx context.Context, email string) (bool, error)
	// RecordFailure counts a failed attempt against email.
	RecordFailure(ctx context.Context, email string) error
}

// AuthService implements student activation and login.
type AuthService struct {
	repo      ports.StudentRepository
	limiter   LoginLimiter
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.StudentRepository, limiter LoginLimiter, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	return &AuthService{repo: repo, limiter: limiter, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Activate completes self-signup for a provisioned student. The
// (nic, student_id) pair acts as an allow-list: no record, no account.
// A second activation attempt is rejected, never silently absorbed.
func (s *AuthService) Activate(ctx context.Context, in ports.ActivateInput) error {
	if in.Name == "" || in.NIC == "" || in.StudentID == "" || in.Email == "" || in.Password == "" {
		return domain.ErrMissingFields
	}

	student, err := s.repo.FindByCredentialPair(ctx, in.NIC, in.StudentID)
	if err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			return domain.ErrNotProvisioned
		}
		return err
	}

	if student.Activated() {
		return domain.ErrAlreadyActivated
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	// The repository re-checks the provisioned state in its update
	// filter, so a racing double activation still ends in exactly one
	// success; the email unique index turns collisions into ErrEmailTaken.
	if err := s.repo.Activate(ctx, student.ID, in.Name, in.Email, string(hash)); err != nil {
		return err
	}

	s.log.Info().Str("student_id", in.StudentID).Msg("student activated")
	return nil
}

// Login verifies credentials and issues a bearer token. Unknown email
// and wrong password collapse into the same error so callers cannot
// probe which addresses have accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Student, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	allowed, err := s.limiter.Allow(ctx, email)
	if err != nil {
		s.log.Warn().Err(err).Msg("login limiter unavailable, allowing attempt")
	} else if !allowed {
		return "", nil, domain.ErrTooManyAttempts
	}

	student, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			s.recordFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(student)
	if err != nil {
		return "", nil, err
	}

	return token, student, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("failed to record login failure")
	}
}

func (s *AuthService) generateToken(student *domain.Student) (string, error) {
	claims := jwt.MapClaims{
		"student_id": student.ID,
		"name":       student.Name,
		"email":      student.Email,
		"exp":        time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
