// Package message defines the request and response payload shapes of
// the core's RPC surface.
//
// The shapes are fixed by the core's API contract and consumed opaquely
// here: fields pass through as-is, and nothing in this SDK interprets
// them beyond JSON encoding. Lobby and Steam identifiers are carried as
// strings because they are 64-bit values that would lose precision in
// JSON numbers.
package message

// AckResult is the plain acknowledgment most mutating calls return.
type AckResult struct {
	// Success reports whether the core accepted and performed the call.
	Success bool `json:"success"`

	// Message optionally elaborates, for display to the user.
	Message string `json:"message,omitempty"`
}

// CreateLobbyResult is the result of create_lobby.
type CreateLobbyResult struct {
	// LobbyID identifies the newly created lobby.
	LobbyID string `json:"lobby_id"`
}

// JoinLobbyParams are the parameters of join_lobby.
type JoinLobbyParams struct {
	LobbyID string `json:"lobby_id"`
}

// InviteFriendParams are the parameters of invite_friend.
type InviteFriendParams struct {
	SteamID string `json:"steam_id"`
}

// LobbyMember is one participant of a lobby.
type LobbyMember struct {
	SteamID string `json:"steam_id"`
	Name    string `json:"name,omitempty"`
}

// LobbyInfo is the result of get_lobby_info: the lobby the frontend is
// currently in.
type LobbyInfo struct {
	LobbyID string        `json:"lobby_id"`
	OwnerID string        `json:"owner_id,omitempty"`
	Members []LobbyMember `json:"members,omitempty"`
}

// FriendLobby is one joinable lobby hosted by a friend.
type FriendLobby struct {
	LobbyID     string `json:"lobby_id"`
	OwnerID     string `json:"owner_id"`
	OwnerName   string `json:"owner_name,omitempty"`
	MemberCount int    `json:"member_count,omitempty"`
}

// FriendLobbiesResult is the result of get_friend_lobbies.
type FriendLobbiesResult struct {
	Lobbies []FriendLobby `json:"lobbies"`
}

// StartVPNParams are the parameters of start_vpn.
type StartVPNParams struct {
	IP   string `json:"ip"`
	Mask string `json:"mask"`
}

// VPNStatus is the result of get_vpn_status.
type VPNStatus struct {
	IsRunning bool   `json:"is_running"`
	IP        string `json:"ip,omitempty"`
	Mask      string `json:"mask,omitempty"`
}

// RouteEntry is one row of the VPN routing table.
type RouteEntry struct {
	Destination string `json:"destination"`
	Gateway     string `json:"gateway,omitempty"`
	Mask        string `json:"mask,omitempty"`
	Interface   string `json:"interface,omitempty"`
}

// RoutingTableResult is the result of get_vpn_routing_table.
type RoutingTableResult struct {
	Routes []RouteEntry `json:"routes"`
}

// VersionInfo is the result of get_version.
type VersionInfo struct {
	Version string `json:"version"`
}
