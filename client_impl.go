package coresdk

import (
	"context"

	"github.com/connect-tool/coresdk-go/internal/client"
	"github.com/connect-tool/coresdk-go/internal/rpc"
)

// clientWrapper wraps the internal client to adapt it to the public interface.
type clientWrapper struct {
	impl *client.Client
}

// Compile-time check that *clientWrapper implements the Client interface.
var _ Client = (*clientWrapper)(nil)

// newClientImpl creates the internal client implementation.
func newClientImpl(opts []Option) Client {
	return &clientWrapper{impl: client.New(applyOptions(opts))}
}

// InitSteam initializes the Steam layer inside the core.
func (c *clientWrapper) InitSteam(ctx context.Context) (*AckResult, error) {
	var result AckResult
	if err := c.impl.Call(ctx, rpc.MethodInitSteam, nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// CreateLobby creates a Steam lobby and returns its id.
func (c *clientWrapper) CreateLobby(ctx context.Context) (*CreateLobbyResult, error) {
	var result CreateLobbyResult
	if err := c.impl.Call(ctx, rpc.MethodCreateLobby, nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// JoinLobby joins an existing lobby.
func (c *clientWrapper) JoinLobby(ctx context.Context, lobbyID string) (*AckResult, error) {
	var result AckResult
	params := JoinLobbyParams{LobbyID: lobbyID}
	if err := c.impl.Call(ctx, rpc.MethodJoinLobby, params, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// LeaveLobby leaves the current lobby, if any.
func (c *clientWrapper) LeaveLobby(ctx context.Context) (*AckResult, error) {
	var result AckResult
	if err := c.impl.Call(ctx, rpc.MethodLeaveLobby, nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// GetLobbyInfo returns the current lobby and its members.
func (c *clientWrapper) GetLobbyInfo(ctx context.Context) (*LobbyInfo, error) {
	var result LobbyInfo
	if err := c.impl.Call(ctx, rpc.MethodGetLobbyInfo, nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// GetFriendLobbies lists joinable lobbies owned by Steam friends.
func (c *clientWrapper) GetFriendLobbies(ctx context.Context) ([]FriendLobby, error) {
	var result FriendLobbiesResult
	if err := c.impl.Call(ctx, rpc.MethodGetFriendLobbies, nil, &result); err != nil {
		return nil, err
	}

	return result.Lobbies, nil
}

// InviteFriend sends a lobby invite to a friend by Steam id.
func (c *clientWrapper) InviteFriend(ctx context.Context, steamID string) (*AckResult, error) {
	var result AckResult
	params := InviteFriendParams{SteamID: steamID}
	if err := c.impl.Call(ctx, rpc.MethodInviteFriend, params, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// StartVPN brings up the virtual network with the given address and mask.
func (c *clientWrapper) StartVPN(ctx context.Context, ip, mask string) (*AckResult, error) {
	var result AckResult
	params := StartVPNParams{IP: ip, Mask: mask}
	if err := c.impl.Call(ctx, rpc.MethodStartVPN, params, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// StopVPN tears the virtual network down.
func (c *clientWrapper) StopVPN(ctx context.Context) (*AckResult, error) {
	var result AckResult
	if err := c.impl.Call(ctx, rpc.MethodStopVPN, nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// GetVPNStatus reports whether the virtual network is up.
func (c *clientWrapper) GetVPNStatus(ctx context.Context) (*VPNStatus, error) {
	var result VPNStatus
	if err := c.impl.Call(ctx, rpc.MethodGetVPNStatus, nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// GetVPNRoutingTable returns the routes installed by the virtual network.
func (c *clientWrapper) GetVPNRoutingTable(ctx context.Context) ([]RouteEntry, error) {
	var result RoutingTableResult
	if err := c.impl.Call(ctx, rpc.MethodGetVPNRoutingTable, nil, &result); err != nil {
		return nil, err
	}

	return result.Routes, nil
}

// GetVersion returns the core's version.
func (c *clientWrapper) GetVersion(ctx context.Context) (*VersionInfo, error) {
	var result VersionInfo
	if err := c.impl.Call(ctx, rpc.MethodGetVersion, nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Call performs a raw JSON-RPC exchange with the core.
func (c *clientWrapper) Call(ctx context.Context, method string, params, result any) error {
	return c.impl.Call(ctx, method, params, result)
}

// Endpoint returns the endpoint this client dials.
func (c *clientWrapper) Endpoint() string {
	return c.impl.Endpoint()
}

// Close releases the client and any cached connection.
func (c *clientWrapper) Close() error {
	return c.impl.Close()
}
