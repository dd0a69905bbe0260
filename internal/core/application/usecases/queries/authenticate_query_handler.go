package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"veggo/internal/core/ports"
	"veggo/internal/pkg/errs"
)

// AuthenticatedActorView identifies the signed-in actor. The token issued at
// the boundary carries the ID and kind.
type AuthenticatedActorView struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Kind ports.ActorKind `json:"kind"`
}

// AuthenticateQueryHandler verifies stored credentials for customers and
// agents. Unknown emails and wrong passwords fail the same way so the
// endpoint cannot be used to probe for accounts. Agents are rejected until
// an administrator approves them.
type AuthenticateQueryHandler struct {
	db     *gorm.DB
	hasher ports.PasswordHasher
}

// NewAuthenticateQueryHandler creates a handler for credential checks.
func NewAuthenticateQueryHandler(db *gorm.DB, hasher ports.PasswordHasher) AuthenticateQueryHandler {
	return AuthenticateQueryHandler{db: db, hasher: hasher}
}

// Handle executes the credential check.
func (h AuthenticateQueryHandler) Handle(ctx context.Context, query AuthenticateQuery) (AuthenticatedActorView, error) {
	if err := query.Validate(); err != nil {
		return AuthenticatedActorView{}, err
	}

	var rows []struct {
		ID           string
		Name         string
		PasswordHash string
		Approved     bool
	}
	var err error
	switch query.Kind() {
	case ports.ActorAgent:
		err = h.db.WithContext(ctx).Raw(`
			SELECT id, name, password_hash, approved
			FROM agents
			WHERE email = ?
		`, query.Email()).Scan(&rows).Error
	default:
		err = h.db.WithContext(ctx).Raw(`
			SELECT id, username AS name, password_hash, TRUE AS approved
			FROM users
			WHERE email = ?
		`, query.Email()).Scan(&rows).Error
	}
	if err != nil {
		return AuthenticatedActorView{}, err
	}

	if len(rows) == 0 {
		return AuthenticatedActorView{}, fmt.Errorf("%w: unknown email or wrong password", errs.ErrUnauthorized)
	}

	row := rows[0]
	if !h.hasher.Verify(row.PasswordHash, query.Password()) {
		return AuthenticatedActorView{}, fmt.Errorf("%w: unknown email or wrong password", errs.ErrUnauthorized)
	}

	if query.Kind() == ports.ActorAgent && !row.Approved {
		return AuthenticatedActorView{}, errs.NewForbiddenError("agent account awaits approval")
	}

	return AuthenticatedActorView{
		ID:   row.ID,
		Name: row.Name,
		Kind: query.Kind(),
	}, nil
}
