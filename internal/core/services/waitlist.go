package services

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"build-promotion-service/internal/core/domain"
	output "build-promotion-service/internal/core/ports/output"
)

type WaitlistService struct {
	repo output.WaitlistRepository
}

func NewWaitlistService(repo output.WaitlistRepository) *WaitlistService {
	return &WaitlistService{repo: repo}
}

// Signup records a waitlist email. Validation is deliberately loose: the
// address just has to look like one.
func (s *WaitlistService) Signup(ctx context.Context, email string) (*domain.WaitlistEntry, error) {
	email = strings.TrimSpace(email)
	if !validEmail(email) {
		return nil, domain.ErrInvalidEmail
	}
	if s.repo == nil {
		return nil, domain.ErrWaitlistUnavailable
	}

	entry := domain.NewWaitlistEntry(email)
	if err := s.repo.Add(ctx, entry); err != nil {
		return nil, fmt.Errorf("store waitlist entry: %w", err)
	}

	log.WithField("waitlist_id", entry.ID).Info("waitlist signup recorded")
	return entry, nil
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	if strings.ContainsAny(email, " \t\n") {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}
