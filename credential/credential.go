// Package credential treats the third-party identity credential as an
// opaque, decodable token. The client never validates credentials itself;
// it extracts the claims it needs and lets the backend decide whether to
// trust them. A verified mode is available for flows that obtained the
// credential out-of-band.
package credential

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
)

// Decoded holds the identity claims the client consumes.
type Decoded struct {
	Email        string
	Name         string
	Picture      string
	HostedDomain string
}

// Decoder turns a raw credential into its claims. The session store takes
// this interface so tests can hand it synthetic identities.
type Decoder interface {
	Decode(raw string) (Decoded, error)
}

// DecoderFunc adapts a function into a Decoder.
type DecoderFunc func(raw string) (Decoded, error)

func (f DecoderFunc) Decode(raw string) (Decoded, error) { return f(raw) }

type googleClaims struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	HostedDomain string `json:"hd"`
	jwtlib.RegisteredClaims
}

// Decode extracts claims from a credential without verifying its
// signature. Verification belongs to the backend exchanging the
// credential; the client only needs the claims to pre-validate the hosted
// domain and fill in profile fields.
func Decode(raw string) (Decoded, error) {
	var claims googleClaims
	if _, _, err := jwtlib.NewParser().ParseUnverified(raw, &claims); err != nil {
		return Decoded{}, errors.Wrap(err, "parsing credential")
	}
	if claims.Email == "" {
		return Decoded{}, errors.New("credential carries no email claim")
	}
	return Decoded{
		Email:        claims.Email,
		Name:         claims.Name,
		Picture:      claims.Picture,
		HostedDomain: claims.HostedDomain,
	}, nil
}

const (
	derivedPasswordSalt = "titulacion-udh"
	derivedPasswordIter = 4096
	derivedPasswordLen  = 24
)

// DerivePassword deterministically derives the registration password from
// the local part of the email, so a Google registration can be repeated on
// any device and reach the same account.
func DerivePassword(email string) string {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}
	key := pbkdf2.Key([]byte(local), []byte(derivedPasswordSalt), derivedPasswordIter, derivedPasswordLen, sha256.New)
	return base64.RawURLEncoding.EncodeToString(key)
}
