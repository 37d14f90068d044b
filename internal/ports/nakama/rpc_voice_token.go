package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"spades/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

// rpcVoiceToken signs a voice chat access token for the calling user.
// Payload: {"action": "login" | "join", "channel": "..."}
func rpcVoiceToken(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return "", runtime.NewError("No user session", 16) // UNAUTHENTICATED
	}

	var req struct {
		Action  string `json:"action"`
		Channel string `json:"channel"`
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", 3) // INVALID_ARGUMENT
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	secret := env["voice_secret"]
	issuer := env["voice_issuer"]
	domain := env["voice_domain"]

	if secret == "" || issuer == "" {
		secret = "test-secret"
		issuer = "test-issuer"
		logger.Warn("rpcVoiceToken: Voice credentials missing from env, using test defaults.")
	}
	if domain == "" {
		domain = "voice.example.com"
	}

	token, err := app.NewVoiceService(secret, issuer, domain).GenerateToken(userID, req.Action, req.Channel)
	if err != nil {
		logger.Warn("rpcVoiceToken [User:%s]: %v", userID, err)
		return "", runtime.NewError("Token generation failed", 3)
	}

	res := map[string]string{"token": token}
	resBytes, _ := json.Marshal(res)
	return string(resBytes), nil
}
