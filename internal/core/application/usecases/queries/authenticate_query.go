package queries

import (
	"errors"
	"fmt"

	"veggo/internal/core/ports"
	"veggo/internal/pkg/errs"
	"veggo/internal/pkg/guard"
)

var ErrAuthenticateQueryIsNotConstructed = errors.New(
	"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
)

// AuthenticateQuery checks a customer's or agent's credentials. Admin access
// is granted against configured credentials at the boundary, never through
// this query.
type AuthenticateQuery struct { //nolint:recvcheck //using for validation
	email    string
	password string
	kind     ports.ActorKind

	guard guard.ConstructorGuard
}

// NewAuthenticateQuery creates a validated credential check.
func NewAuthenticateQuery(email, password string, kind ports.ActorKind) (AuthenticateQuery, error) {
	q := AuthenticateQuery{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		q.setEmail(email),
		q.setPassword(password),
		q.setKind(kind),
	)
	if err != nil {
		return AuthenticateQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}

func (q AuthenticateQuery) Email() string         { return q.email }
func (q AuthenticateQuery) Password() string      { return q.password }
func (q AuthenticateQuery) Kind() ports.ActorKind { return q.kind }

func (q *AuthenticateQuery) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	q.email = email
	return nil
}

func (q *AuthenticateQuery) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	q.password = password
	return nil
}

func (q *AuthenticateQuery) setKind(kind ports.ActorKind) error {
	switch kind {
	case ports.ActorUser, ports.ActorAgent:
		q.kind = kind
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("%q cannot sign in with stored credentials", kind))
	}
}
