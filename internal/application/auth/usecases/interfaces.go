package usecases

import "context"

// PasswordHasher abstracts the credential hashing backend.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenPair carries the signed session tokens returned on login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenIssuer signs identity assertions for authenticated users.
type TokenIssuer interface {
	Generate(userID uint, role, accessLevel string) (*TokenPair, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}
