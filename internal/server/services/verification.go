package services

import (
	"context"

	"github.com/dmitrijs2005/mvikeeper/internal/cryptox"
)

// VerificationService checks the password guarding secure screens. Only an
// argon2 verifier of the configured password is kept in memory.
type VerificationService struct {
	salt     []byte
	verifier []byte
}

func NewVerificationService(password string) *VerificationService {
	salt, verifier := cryptox.NewVerifier(password)
	return &VerificationService{salt: salt, verifier: verifier}
}

func (s *VerificationService) Verify(_ context.Context, password string) bool {
	return cryptox.CheckPassword(password, s.salt, s.verifier)
}
