package identity

import (
	"context"
	"crypto"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
)

// Claims are the parts of an identity provider ID token a restaurant
// account is built from.
type Claims struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// IDTokenVerifier checks ID tokens minted by the external identity provider.
type IDTokenVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewIDTokenVerifier discovers the issuer's keys.
func NewIDTokenVerifier(ctx context.Context, issuer, clientID string) (*IDTokenVerifier, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("init oidc provider %s: %w", issuer, err)
	}
	return &IDTokenVerifier{verifier: provider.Verifier(&oidc.Config{ClientID: clientID})}, nil
}

// NewStaticVerifier verifies against fixed public keys, without discovery.
func NewStaticVerifier(issuer, clientID string, keys ...crypto.PublicKey) *IDTokenVerifier {
	keySet := &oidc.StaticKeySet{PublicKeys: keys}
	return &IDTokenVerifier{verifier: oidc.NewVerifier(issuer, keySet, &oidc.Config{ClientID: clientID})}
}

func (v *IDTokenVerifier) Verify(ctx context.Context, rawIDToken string) (Claims, error) {
	idToken, err := v.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return Claims{}, fmt.Errorf("invalid id_token: %w", err)
	}

	var claims Claims
	if err := idToken.Claims(&claims); err != nil {
		return Claims{}, errors.New("failed to decode token claims")
	}
	if claims.Subject == "" {
		return Claims{}, errors.New("token missing required claims")
	}
	return claims, nil
}
