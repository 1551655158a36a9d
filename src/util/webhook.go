package util

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/plaid/plaid-go/v41/plaid"
)

// Webhook verification follows the scheme from
// https://plaid.com/docs/api/webhooks/webhook-verification/

const webhookMaxAge = 5 * time.Minute

var jwkCache = struct {
	sync.Mutex
	m map[string]*plaid.JWKPublicKey
}{m: make(map[string]*plaid.JWKPublicKey)}

// VerifyPlaidWebhook checks the Plaid-Verification JWT on an incoming
// webhook: ES256 signature against the key Plaid publishes for the kid,
// freshness, and the SHA-256 of the body.
func VerifyPlaidWebhook(ctx context.Context, client *plaid.APIClient, body []byte, verificationHeader string) error {
	if verificationHeader == "" {
		return errors.New("missing Plaid-Verification header")
	}

	parser := jwt.NewParser(jwt.WithLeeway(30 * time.Second))

	unverified, _, err := parser.ParseUnverified(verificationHeader, jwt.MapClaims{})
	if err != nil {
		return fmt.Errorf("parse unverified token: %w", err)
	}
	if unverified.Method.Alg() != jwt.SigningMethodES256.Alg() {
		return fmt.Errorf("unexpected alg %q (want ES256)", unverified.Method.Alg())
	}
	kid, _ := unverified.Header["kid"].(string)
	if kid == "" {
		return errors.New("missing kid in JWT header")
	}

	pubKey, err := verificationKey(ctx, client, kid)
	if err != nil {
		return fmt.Errorf("get verification key: %w", err)
	}

	claims := jwt.MapClaims{}
	token, err := parser.ParseWithClaims(verificationHeader, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodES256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return pubKey, nil
	})
	if err != nil || !token.Valid {
		return fmt.Errorf("invalid token: %w", err)
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return errors.New("missing iat")
	}
	if time.Since(time.Unix(int64(iat), 0)) > webhookMaxAge {
		return errors.New("token too old (>5m)")
	}

	wantHash, ok := claims["request_body_sha256"].(string)
	if !ok || wantHash == "" {
		return errors.New("missing request_body_sha256")
	}
	sum := sha256.Sum256(body)
	gotHex := strings.ToLower(hex.EncodeToString(sum[:]))
	if subtle.ConstantTimeCompare([]byte(gotHex), []byte(strings.ToLower(wantHash))) != 1 {
		return errors.New("body hash mismatch")
	}

	return nil
}

func verificationKey(ctx context.Context, client *plaid.APIClient, kid string) (*ecdsa.PublicKey, error) {
	jwkCache.Lock()
	cached := jwkCache.m[kid]
	jwkCache.Unlock()
	if cached != nil {
		return jwkToECDSA(cached)
	}

	req := *plaid.NewWebhookVerificationKeyGetRequest(kid)
	resp, _, err := client.PlaidApi.WebhookVerificationKeyGet(ctx).
		WebhookVerificationKeyGetRequest(req).
		Execute()
	if err != nil {
		return nil, err
	}
	key := resp.GetKey()
	if key.Kid == kid {
		jwkCache.Lock()
		jwkCache.m[kid] = &key
		jwkCache.Unlock()
	}
	return jwkToECDSA(&key)
}

func jwkToECDSA(jwk *plaid.JWKPublicKey) (*ecdsa.PublicKey, error) {
	if jwk == nil || jwk.X == "" || jwk.Y == "" || jwk.Kty != "EC" || jwk.Crv != "P-256" {
		return nil, errors.New("invalid/unsupported JWK")
	}
	xBytes, err := base64.RawURLEncoding.DecodeString(jwk.X)
	if err != nil {
		return nil, fmt.Errorf("decode x: %w", err)
	}
	yBytes, err := base64.RawURLEncoding.DecodeString(jwk.Y)
	if err != nil {
		return nil, fmt.Errorf("decode y: %w", err)
	}
	return &ecdsa.PublicKey{
		Curve: elliptic.P256(),
		X:     new(big.Int).SetBytes(xBytes),
		Y:     new(big.Int).SetBytes(yBytes),
	}, nil
}
