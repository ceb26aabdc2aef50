package identity

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokensRoundTrip(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)

	tok, err := tokens.Issue("user-123")
	require.NoError(t, err)

	id, err := tokens.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", id)
}

func TestTokensRejects(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)
	tok, err := tokens.Issue("user-123")
	require.NoError(t, err)

	other := NewTokens("other", time.Hour)
	_, err = other.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tokens.Parse("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tokens.Parse("")
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := NewTokens("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := expired.Issue("user-123")
	require.NoError(t, err)
	_, err = tokens.Parse(old)
	assert.ErrorIs(t, err, ErrInvalidToken)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-123"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = tokens.Parse(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueRequiresSecret(t *testing.T) {
	_, err := NewTokens("", time.Hour).Issue("u")
	assert.Error(t, err)
}

func requestWithCookie(name, value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if name != "" {
		r.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	return r
}

func TestPresenceChecker(t *testing.T) {
	p := PresenceChecker{Cookie: "firebaseIdToken"}

	assert.True(t, p.HasSession(requestWithCookie("firebaseIdToken", "anything")))
	assert.False(t, p.HasSession(requestWithCookie("firebaseIdToken", "")))
	assert.False(t, p.HasSession(requestWithCookie("other", "x")))
	assert.False(t, p.HasSession(requestWithCookie("", "")))
}

func TestTokenChecker(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)
	c := TokenChecker{Cookie: "firebaseIdToken", Tokens: tokens}

	tok, err := tokens.Issue("user-123")
	require.NoError(t, err)

	assert.True(t, c.HasSession(requestWithCookie("firebaseIdToken", tok)))
	assert.False(t, c.HasSession(requestWithCookie("firebaseIdToken", "forged")))
	assert.False(t, c.HasSession(requestWithCookie("", "")))

	id, ok := c.UserID(requestWithCookie("firebaseIdToken", tok))
	assert.True(t, ok)
	assert.Equal(t, "user-123", id)
}

const (
	testIssuer   = "https://securetoken.google.com/menyqr"
	testClientID = "menyqr"
)

func signIDToken(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return tok
}

func TestStaticVerifier(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	v := NewStaticVerifier(testIssuer, testClientID, key.Public())

	now := time.Now()
	raw := signIDToken(t, key, jwt.MapClaims{
		"iss":     testIssuer,
		"aud":     testClientID,
		"sub":     "uid-42",
		"email":   "kafe@example.no",
		"name":    "Kafé Nord",
		"picture": "https://example.no/logo.png",
		"iat":     now.Unix(),
		"exp":     now.Add(time.Hour).Unix(),
	})

	claims, err := v.Verify(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "uid-42", claims.Subject)
	assert.Equal(t, "kafe@example.no", claims.Email)
	assert.Equal(t, "Kafé Nord", claims.Name)
}

func TestStaticVerifierRejects(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	stranger, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	v := NewStaticVerifier(testIssuer, testClientID, key.Public())

	now := time.Now()
	base := func() jwt.MapClaims {
		return jwt.MapClaims{
			"iss": testIssuer, "aud": testClientID, "sub": "uid-42",
			"iat": now.Unix(), "exp": now.Add(time.Hour).Unix(),
		}
	}

	wrongAud := base()
	wrongAud["aud"] = "someone-else"
	expired := base()
	expired["exp"] = now.Add(-time.Hour).Unix()

	for name, raw := range map[string]string{
		"wrong key":      signIDToken(t, stranger, base()),
		"wrong audience": signIDToken(t, key, wrongAud),
		"expired":        signIDToken(t, key, expired),
		"garbage":        "not-a-token",
	} {
		_, err := v.Verify(context.Background(), raw)
		assert.Error(t, err, name)
	}
}
