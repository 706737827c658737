package token

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var (
	ErrInvalidSignature = errors.New("token signature is invalid")
	ErrExpired          = errors.New("token is expired")
	ErrMalformedClaims  = errors.New("token claims are malformed")
)

// Claims is the shared claim set for both token kinds. Access tokens carry
// the user's email, refresh tokens do not. The explicit Type discriminant
// prevents a refresh token from ever passing an access-token check even
// though both are signed with the same secret.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email,omitempty"`
	Type   string `json:"type"`
	jwtlib.RegisteredClaims
}

// Verifier performs structural verification only: signature, expiry and claim
// shape. It holds no TTL state and never touches persistent storage, so it is
// safe to run in a request-gating layer that cannot see revocations.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// VerifyAccess checks signature, expiry and access claim shape.
func (v *Verifier) VerifyAccess(tokenStr string) (*Claims, error) {
	claims, err := v.parse(tokenStr)
	if err != nil {
		return nil, err
	}
	if claims.Type != TypeAccess || claims.UserID == "" || claims.Email == "" {
		return nil, ErrMalformedClaims
	}
	return claims, nil
}

// VerifyRefresh checks signature, expiry and refresh claim shape. It cannot
// detect store-level revocation; that check belongs to the refresh flow.
func (v *Verifier) VerifyRefresh(tokenStr string) (*Claims, error) {
	claims, err := v.parse(tokenStr)
	if err != nil {
		return nil, err
	}
	if claims.Type != TypeRefresh || claims.UserID == "" {
		return nil, ErrMalformedClaims
	}
	return claims, nil
}

func (v *Verifier) parse(tokenStr string) (*Claims, error) {
	parsed, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return v.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwtlib.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwtlib.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		case errors.Is(err, jwtlib.ErrTokenMalformed):
			return nil, ErrMalformedClaims
		default:
			return nil, ErrInvalidSignature
		}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrMalformedClaims
	}
	return claims, nil
}

// Codec signs access and refresh tokens with a single shared secret. The
// secret and TTLs are injected at construction; nothing here reads the
// environment.
type Codec struct {
	*Verifier
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewCodec(secret string, accessTTL, refreshTTL time.Duration) *Codec {
	return &Codec{
		Verifier:   NewVerifier(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (c *Codec) AccessTTL() time.Duration  { return c.accessTTL }
func (c *Codec) RefreshTTL() time.Duration { return c.refreshTTL }

// RefreshExpiry reports when a refresh token signed now will expire. The
// store duplicates this timestamp so revocation checks need no parsing.
func (c *Codec) RefreshExpiry() time.Time {
	return c.now().Add(c.refreshTTL)
}

func (c *Codec) SignAccess(userID, email string) (string, error) {
	return c.sign(Claims{
		UserID: userID,
		Email:  email,
		Type:   TypeAccess,
	}, c.accessTTL)
}

func (c *Codec) SignRefresh(userID string) (string, error) {
	return c.sign(Claims{
		UserID: userID,
		Type:   TypeRefresh,
	}, c.refreshTTL)
}

func (c *Codec) sign(claims Claims, ttl time.Duration) (string, error) {
	now := c.now()
	claims.RegisteredClaims = jwtlib.RegisteredClaims{
		IssuedAt:  jwtlib.NewNumericDate(now),
		ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}
