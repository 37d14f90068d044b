package app

import (
	"fmt"
	"testing"

	"github.com/form3tech-oss/jwt-go"
)

func parseVoiceClaims(t *testing.T, tokenString, secret string) jwt.MapClaims {
	t.Helper()
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		t.Fatalf("parse token error: %v", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		t.Fatalf("token claims invalid")
	}
	return claims
}

func stringClaim(t *testing.T, claims jwt.MapClaims, key string) string {
	t.Helper()
	value, ok := claims[key].(string)
	if !ok {
		t.Fatalf("claim %q missing or not a string", key)
	}
	return value
}

func TestVoiceServiceGenerateLoginToken(t *testing.T) {
	secret := "test-secret"
	issuer := "issuer"
	domain := "example.com"
	user := "user123"

	svc := NewVoiceService(secret, issuer, domain)
	tokenString, err := svc.GenerateToken(user, VoiceTokenActionLogin, "")
	if err != nil {
		t.Fatalf("generate login token error: %v", err)
	}

	claims := parseVoiceClaims(t, tokenString, secret)
	userURI := fmt.Sprintf("sip:.%s.%s.@%s", issuer, user, domain)

	if got := stringClaim(t, claims, "vxa"); got != VoiceTokenActionLogin {
		t.Fatalf("vxa = %s, want %s", got, VoiceTokenActionLogin)
	}
	if got := stringClaim(t, claims, "f"); got != userURI {
		t.Fatalf("f = %s, want %s", got, userURI)
	}
	if got := stringClaim(t, claims, "t"); got != userURI {
		t.Fatalf("t = %s, want %s", got, userURI)
	}
	if got := stringClaim(t, claims, "sub"); got != user {
		t.Fatalf("sub = %s, want %s", got, user)
	}
}

func TestVoiceServiceGenerateJoinToken(t *testing.T) {
	secret := "test-secret"
	issuer := "issuer"
	domain := "example.com"
	user := "user123"
	channel := "match-456"

	svc := NewVoiceService(secret, issuer, domain)
	tokenString, err := svc.GenerateToken(user, VoiceTokenActionJoin, channel)
	if err != nil {
		t.Fatalf("generate join token error: %v", err)
	}

	claims := parseVoiceClaims(t, tokenString, secret)
	channelURI := fmt.Sprintf("sip:confctl-g-%s@%s", channel, domain)

	if got := stringClaim(t, claims, "vxa"); got != VoiceTokenActionJoin {
		t.Fatalf("vxa = %s, want %s", got, VoiceTokenActionJoin)
	}
	if got := stringClaim(t, claims, "t"); got != channelURI {
		t.Fatalf("t = %s, want %s", got, channelURI)
	}
}

func TestVoiceServiceRejectsBadInput(t *testing.T) {
	svc := NewVoiceService("secret", "issuer", "example.com")

	if _, err := svc.GenerateToken("", VoiceTokenActionLogin, ""); err == nil {
		t.Error("expected error for empty user")
	}
	if _, err := svc.GenerateToken("user", VoiceTokenActionJoin, ""); err == nil {
		t.Error("expected error for join without channel")
	}
	if _, err := svc.GenerateToken("user", "publish", ""); err == nil {
		t.Error("expected error for unknown action")
	}

	incomplete := NewVoiceService("", "issuer", "example.com")
	if _, err := incomplete.GenerateToken("user", VoiceTokenActionLogin, ""); err == nil {
		t.Error("expected error for incomplete config")
	}
}
