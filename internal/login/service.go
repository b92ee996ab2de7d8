// Package login implements account registration, authentication, and
// character confirmation on top of the persistence gateway and the
// credential derivation in auth.
package login

import (
	"context"
	"errors"
	"fmt"

	"github.com/oldentide/server/internal/auth"
	"github.com/oldentide/server/internal/data"
	"github.com/oldentide/server/internal/entity"
	"github.com/oldentide/server/internal/persist"
	"github.com/oldentide/server/internal/validate"
	"go.uber.org/zap"
)

var (
	ErrInvalidAccountName = errors.New("account name fails sanitization")
	ErrAccountRejected    = errors.New("account was not accepted by the store")
	ErrBadProfession      = errors.New("unknown profession")
	ErrPlayerRejected     = errors.New("player was not accepted by the store")
)

type Service struct {
	accounts    *persist.AccountRepo
	players     *persist.PlayerRepo
	professions map[string]*data.ProfessionTemplate
	log         *zap.Logger
}

func NewService(accounts *persist.AccountRepo, players *persist.PlayerRepo, professions map[string]*data.ProfessionTemplate, log *zap.Logger) *Service {
	return &Service{
		accounts:    accounts,
		players:     players,
		professions: professions,
		log:         log,
	}
}

// Register derives credential material for the password and stores the new
// account. The raw password never reaches the gateway.
func (s *Service) Register(ctx context.Context, name, email, password string) error {
	if !validate.AccountName(name) {
		return ErrInvalidAccountName
	}
	salt, err := auth.NewSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	key, err := auth.DeriveKey(password, salt)
	if err != nil {
		return fmt.Errorf("derive key: %w", err)
	}
	if !s.accounts.Insert(ctx, name, email, key, salt) {
		return ErrAccountRejected
	}
	s.log.Info("account registered", zap.String("name", name))
	return nil
}

// Authenticate re-derives the key from the supplied password and the stored
// salt and compares it with the stored key. Unknown accounts and wrong
// passwords are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, name, password string) bool {
	salt, ok := s.accounts.Salt(ctx, name)
	if !ok {
		return false
	}
	key, ok := s.accounts.Key(ctx, name)
	if !ok {
		return false
	}
	return auth.Verify(password, salt, key)
}

// CreatePlayer confirms a new character for play under the named account,
// built from the profession's starting template.
func (s *Service) CreatePlayer(ctx context.Context, accountName, profession, firstname, lastname, guild, race, gender, face, skin string) (*entity.Player, error) {
	accountID := s.accounts.ID(ctx, accountName)
	if accountID == 0 {
		return nil, ErrInvalidAccountName
	}
	tmpl, ok := s.professions[profession]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBadProfession, profession)
	}

	p := &entity.Player{
		Character: tmpl.NewCharacter(firstname, lastname, guild, race, gender, face, skin),
		AccountID: accountID,
	}
	if !s.players.Insert(ctx, p) {
		return nil, ErrPlayerRejected
	}
	s.log.Info("player created",
		zap.String("account", accountName),
		zap.String("name", p.DisplayName()),
		zap.Int64("character_id", p.Character.ID))
	return p, nil
}
