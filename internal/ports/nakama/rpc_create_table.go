package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/heroiclabs/nakama-common/runtime"
)

// CreateTableRequest is the optional payload for RpcCreateTable.
type CreateTableRequest struct {
	Private bool `json:"private"`
}

// CreateTableResponse carries the id of the freshly created table.
type CreateTableResponse struct {
	MatchID string `json:"match_id"`
	Private bool   `json:"private"`
}

func rpcCreateTable(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var request CreateTableRequest
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &request); err != nil {
			return "", runtime.NewError("invalid payload", 3) // INVALID_ARGUMENT
		}
	}

	matchID, err := nk.MatchCreate(ctx, MatchNameBridge, map[string]interface{}{"private": request.Private})
	if err != nil {
		logger.Error("CreateTable: MatchCreate error: %v", err)
		return "", err
	}

	resp := CreateTableResponse{MatchID: matchID, Private: request.Private}
	b, _ := json.Marshal(resp)
	return string(b), nil
}
