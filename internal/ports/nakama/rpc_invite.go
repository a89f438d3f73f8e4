package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"bridge/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

// TableInviteRequest asks for an invite token to a private table.
type TableInviteRequest struct {
	MatchID string `json:"match_id"`
}

// TableInviteResponse carries the signed invite token. Guests present it in
// the join metadata under "invite_token".
type TableInviteResponse struct {
	Token string `json:"token"`
}

func rpcTableInvite(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var request TableInviteRequest
	if err := json.Unmarshal([]byte(payload), &request); err != nil || request.MatchID == "" {
		return "", runtime.NewError("invalid payload", 3) // INVALID_ARGUMENT
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	secret := env["bridge_invite_secret"]
	if secret == "" {
		return "", runtime.NewError("invites are not configured", 9) // FAILED_PRECONDITION
	}

	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	invites := app.NewInviteService(secret, "bridge", 0)
	token, err := invites.GenerateToken(request.MatchID, userID)
	if err != nil {
		logger.Error("TableInvite: Failed to sign token: %v", err)
		return "", err
	}

	b, _ := json.Marshal(TableInviteResponse{Token: token})
	return string(b), nil
}
