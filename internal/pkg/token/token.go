// Package token implements the bearer tokens and password hashing used by
// the HTTP layer. Tokens are HMAC-SHA256 signed, carrying the subject, the
// actor kind, and an expiry timestamp.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"veggo/internal/core/ports"
	"veggo/internal/pkg/errs"
)

// Issuer mints and validates signed bearer tokens.
type Issuer struct {
	secret []byte
	now    func() time.Time
}

// NewIssuer creates an Issuer signing with the given secret.
func NewIssuer(secret string) (*Issuer, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("tokenSecret")
	}
	return &Issuer{secret: []byte(secret), now: time.Now}, nil
}

// Issue mints a token for subject valid for ttl.
// The wire form is "subject.kind.expiryUnix.signature".
func (i *Issuer) Issue(subject string, kind ports.ActorKind, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", errs.NewValueIsRequiredError("subject")
	}
	if strings.Contains(subject, ".") {
		return "", errs.NewValueIsInvalidError("subject")
	}

	expiry := i.now().Add(ttl).Unix()
	payload := fmt.Sprintf("%s.%s.%d", subject, kind, expiry)
	return payload + "." + i.sign(payload), nil
}

// Parse validates a token and returns its subject and actor kind.
func (i *Issuer) Parse(token string) (string, ports.ActorKind, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 4 {
		return "", "", errs.ErrUnauthorized
	}
	subject, kind, expiryStr, sig := parts[0], parts[1], parts[2], parts[3]

	payload := subject + "." + kind + "." + expiryStr
	if !hmac.Equal([]byte(sig), []byte(i.sign(payload))) {
		return "", "", errs.ErrUnauthorized
	}

	expiry, err := strconv.ParseInt(expiryStr, 10, 64)
	if err != nil || i.now().Unix() > expiry {
		return "", "", errs.ErrUnauthorized
	}

	switch ports.ActorKind(kind) {
	case ports.ActorUser, ports.ActorAgent, ports.ActorAdmin:
		return subject, ports.ActorKind(kind), nil
	default:
		return "", "", errs.ErrUnauthorized
	}
}

func (i *Issuer) sign(payload string) string {
	mac := hmac.New(sha256.New, i.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
