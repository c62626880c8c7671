package coresdk

import (
	"context"
)

// Client talks to the core process over its local JSON-RPC endpoint.
//
// All calls are synchronous request/response exchanges. In the default
// dial-per-call mode every call opens a fresh connection, so there is no
// connect step: create the client, call it, close it. The core must already
// be listening for calls to succeed; see Supervisor and WithCore.
//
// Lifecycle: Clients are single-use. After Close(), create a new client with NewClient().
//
// Example usage:
//
//	client := NewClient(
//	    WithLogger(slog.Default()),
//	)
//	defer client.Close()
//
//	if _, err := client.InitSteam(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	lobby, err := client.CreateLobby(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("lobby id:", lobby.LobbyID)
type Client interface {
	// InitSteam initializes the Steam layer inside the core.
	// Call it once before any lobby operation.
	InitSteam(ctx context.Context) (*AckResult, error)

	// CreateLobby creates a Steam lobby and returns its id.
	CreateLobby(ctx context.Context) (*CreateLobbyResult, error)

	// JoinLobby joins an existing lobby.
	// Lobby ids are decimal strings; 64-bit ids do not survive JSON numbers.
	JoinLobby(ctx context.Context, lobbyID string) (*AckResult, error)

	// LeaveLobby leaves the current lobby, if any.
	LeaveLobby(ctx context.Context) (*AckResult, error)

	// GetLobbyInfo returns the current lobby and its members.
	GetLobbyInfo(ctx context.Context) (*LobbyInfo, error)

	// GetFriendLobbies lists joinable lobbies owned by Steam friends.
	GetFriendLobbies(ctx context.Context) ([]FriendLobby, error)

	// InviteFriend sends a lobby invite to a friend by Steam id.
	InviteFriend(ctx context.Context, steamID string) (*AckResult, error)

	// StartVPN brings up the virtual network with the given address and mask.
	StartVPN(ctx context.Context, ip, mask string) (*AckResult, error)

	// StopVPN tears the virtual network down.
	StopVPN(ctx context.Context) (*AckResult, error)

	// GetVPNStatus reports whether the virtual network is up.
	GetVPNStatus(ctx context.Context) (*VPNStatus, error)

	// GetVPNRoutingTable returns the routes installed by the virtual network.
	GetVPNRoutingTable(ctx context.Context) ([]RouteEntry, error)

	// GetVersion returns the core's version.
	GetVersion(ctx context.Context) (*VersionInfo, error)

	// Call performs a raw JSON-RPC exchange with the core.
	// Prefer the typed methods; Call is the escape hatch for methods this
	// SDK does not know about. Pass a nil result to discard the response.
	Call(ctx context.Context, method string, params, result any) error

	// Endpoint returns the endpoint this client dials.
	Endpoint() string

	// Close releases the client and any cached connection.
	// After Close(), the client cannot be reused. Safe to call multiple times.
	Close() error
}

// NewClient creates a client for the core's local endpoint.
//
// The client never spawns the core; pair it with a Supervisor, or use
// WithCore for combined lifecycle management:
//
//	client := NewClient(
//	    WithLogger(slog.Default()),
//	    WithChannelMode(ChannelPersistent),
//	)
//	defer client.Close()
func NewClient(opts ...Option) Client {
	return newClientImpl(opts)
}
