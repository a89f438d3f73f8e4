package nakama

const (
	// RpcQuickMatch finds an open public table or creates one.
	RpcQuickMatch = "quick_match"
	// RpcCreateTable creates a fresh table, optionally private.
	RpcCreateTable = "create_table"
	// RpcTableInvite mints an invite token for a private table.
	RpcTableInvite = "table_invite"

	// MatchNameBridge is the authoritative match handler name registered with Nakama.
	MatchNameBridge = "bridge_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame int64 = 1
	OpSubmitBid int64 = 2
	OpPlayCard  int64 = 3

	// Server -> Client events
	OpPlayerJoined     int64 = 101
	OpPlayerLeft       int64 = 102
	OpAllPlayersJoined int64 = 103
	OpGameStarted      int64 = 104
	OpGameUpdated      int64 = 105
	OpGameFinished     int64 = 106
	OpGameError        int64 = 107
)
