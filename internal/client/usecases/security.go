package usecases

import "context"

// VerifyPassword checks the password guarding protected destinations.
type VerifyPassword struct {
	backend PasswordBackend
}

func NewVerifyPassword(backend PasswordBackend) *VerifyPassword {
	return &VerifyPassword{backend: backend}
}

// Execute returns ErrInvalidPassword when the backend answers false.
func (v *VerifyPassword) Execute(ctx context.Context, password string) error {
	ok, err := v.backend.VerifyPassword(ctx, password)
	if err != nil {
		return backendError(err)
	}
	if !ok {
		return ErrInvalidPassword
	}
	return nil
}
