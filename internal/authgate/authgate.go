package authgate

import (
	"context"
	"sync"
	"time"

	"github.com/copypasta/copypasta-server/internal/config"
	"github.com/copypasta/copypasta-server/internal/logger"
	"github.com/copypasta/copypasta-server/internal/store"
	"github.com/copypasta/copypasta-server/internal/utils"
	"github.com/copypasta/copypasta-server/models"
)

// gate is the concrete implementation of Gate.
//
// Sessions are self-describing JWTs (internal/utils.GenerateJWTToken), so
// ValidateSession needs no store round-trip in the common case. Logout is
// the one operation that cannot be expressed purely in terms of a
// stateless token, so it is handled by recording the token's jti in an
// in-memory revoked set guarded by its own lock — modeled on the
// Notifier's per-field locking discipline rather than on any store table.
type gate struct {
	users store.UserRepository

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	revokedMu sync.RWMutex
	revoked   map[string]time.Time

	logger *logger.Logger
}

// NewGate constructs a Gate backed by users and configured from cfg.
func NewGate(users store.UserRepository, cfg config.App, log *logger.Logger) Gate {
	return &gate{
		users:         users,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		revoked:       make(map[string]time.Time),
		logger:        log,
	}
}

func (g *gate) Register(ctx context.Context, username, password string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	user, err := g.users.CreateUser(ctx, username, password)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user registration failed")
		return models.User{}, models.Token{}, err
	}

	token, err := g.issueToken(user.UserID)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

func (g *gate) Login(ctx context.Context, username, password string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	user, err := g.users.VerifyCredentials(ctx, username, password)
	if err != nil {
		log.Err(err).Str("username", username).Msg("login failed")
		return models.User{}, models.Token{}, err
	}

	token, err := g.issueToken(user.UserID)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

func (g *gate) issueToken(userID int64) (models.Token, error) {
	token, err := utils.GenerateJWTToken(g.tokenIssuer, userID, g.tokenDuration, g.tokenSignKey)
	if err != nil {
		return models.Token{}, err
	}
	return token, nil
}

func (g *gate) ValidateSession(ctx context.Context, tokenString string) (int64, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, g.tokenSignKey, g.tokenIssuer)
	if err != nil {
		return 0, ErrSessionInvalid
	}

	if g.isRevoked(token.ID) {
		return 0, ErrSessionInvalid
	}

	userID, err := token.GetUserID()
	if err != nil {
		return 0, ErrSessionInvalid
	}

	return userID, nil
}

func (g *gate) Logout(ctx context.Context, tokenString string) error {
	token, err := utils.ValidateAndParseJWTToken(tokenString, g.tokenSignKey, g.tokenIssuer)
	if err != nil {
		return ErrSessionInvalid
	}

	expiresAt := time.Now().Add(g.tokenDuration)
	if exp, err := token.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Time
	}

	g.revokedMu.Lock()
	g.revoked[token.ID] = expiresAt
	g.revokedMu.Unlock()

	return nil
}

func (g *gate) isRevoked(jti string) bool {
	g.revokedMu.RLock()
	defer g.revokedMu.RUnlock()

	expiresAt, ok := g.revoked[jti]
	if !ok {
		return false
	}
	return time.Now().Before(expiresAt)
}
