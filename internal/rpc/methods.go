package rpc

// Method names of the core's RPC surface. The schemas behind them belong
// to the core; this SDK forwards fixed-shape requests and responses.
const (
	MethodInitSteam          = "init_steam"
	MethodCreateLobby        = "create_lobby"
	MethodJoinLobby          = "join_lobby"
	MethodLeaveLobby         = "leave_lobby"
	MethodGetLobbyInfo       = "get_lobby_info"
	MethodGetFriendLobbies   = "get_friend_lobbies"
	MethodInviteFriend       = "invite_friend"
	MethodStartVPN           = "start_vpn"
	MethodStopVPN            = "stop_vpn"
	MethodGetVPNStatus       = "get_vpn_status"
	MethodGetVPNRoutingTable = "get_vpn_routing_table"
	MethodGetVersion         = "get_version"
)
