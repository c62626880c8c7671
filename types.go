package coresdk

import (
	"github.com/connect-tool/coresdk-go/internal/config"
	"github.com/connect-tool/coresdk-go/internal/message"
	"github.com/connect-tool/coresdk-go/internal/platform"
	"github.com/connect-tool/coresdk-go/internal/supervisor"
)

// Re-export types from internal packages

// ===== Options and Configuration =====

// Options configures clients and supervisors.
// Prefer the With* functional options over filling this struct directly.
type Options = config.Options

// ChannelMode selects how the rpc channel manages connections to the core.
type ChannelMode = config.ChannelMode

const (
	// ChannelDialPerCall opens a fresh connection for every call.
	// This is the default and matches the core's one-request-per-connection
	// serving model.
	ChannelDialPerCall = config.ChannelDialPerCall

	// ChannelPersistent keeps one connection open across calls and redials
	// after a transport or decode failure.
	ChannelPersistent = config.ChannelPersistent
)

// Defaults applied when the corresponding option is unset.
const (
	DefaultDialTimeout      = config.DefaultDialTimeout
	DefaultStartGracePeriod = config.DefaultStartGracePeriod
	DefaultStopTimeout      = config.DefaultStopTimeout
)

// ===== Process Supervision =====

// Status reports the outcome of a supervisor operation.
// Operational failures are reported here, not as Go errors.
type Status = supervisor.Status

// CoreExecutableName is the base name of the core executable, without the
// platform suffix.
const CoreExecutableName = supervisor.CoreExecutableName

// ===== RPC Payloads =====

// AckResult acknowledges a command that returns no data.
type AckResult = message.AckResult

// CreateLobbyResult carries the id of a newly created lobby.
type CreateLobbyResult = message.CreateLobbyResult

// JoinLobbyParams identifies the lobby to join.
type JoinLobbyParams = message.JoinLobbyParams

// InviteFriendParams identifies the friend to invite.
type InviteFriendParams = message.InviteFriendParams

// LobbyMember is one member of a lobby.
type LobbyMember = message.LobbyMember

// LobbyInfo describes the current lobby and its members.
type LobbyInfo = message.LobbyInfo

// FriendLobby is a joinable lobby owned by a Steam friend.
type FriendLobby = message.FriendLobby

// FriendLobbiesResult is the wire shape of a get_friend_lobbies response.
type FriendLobbiesResult = message.FriendLobbiesResult

// StartVPNParams carries the address configuration for start_vpn.
type StartVPNParams = message.StartVPNParams

// VPNStatus reports whether the virtual network is up and its address.
type VPNStatus = message.VPNStatus

// RouteEntry is one route installed by the virtual network.
type RouteEntry = message.RouteEntry

// RoutingTableResult is the wire shape of a get_vpn_routing_table response.
type RoutingTableResult = message.RoutingTableResult

// VersionInfo reports the core's version.
type VersionInfo = message.VersionInfo

// ===== Platform =====

// Ops abstracts the platform-specific pieces: endpoint naming, dialing, and
// process creation. Replace it with WithPlatformOps to fake the core's
// environment in tests.
type Ops = platform.Ops

// Stream is a flushable byte stream connected to the core.
type Stream = platform.Stream
