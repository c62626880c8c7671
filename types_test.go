package coresdk

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestStatusJSONShape pins the wire shape frontends serialize for their UI.
func TestStatusJSONShape(t *testing.T) {
	pid := 4242
	st := Status{Success: true, IsRunning: true, PID: &pid, Message: "core started (pid 4242)"}

	data, err := json.Marshal(st)
	require.NoError(t, err)
	require.JSONEq(t, `{"success":true,"is_running":true,"pid":4242,"message":"core started (pid 4242)"}`, string(data))
}

// TestStatusJSONShape_NoPID checks the pid field is omitted when absent.
func TestStatusJSONShape_NoPID(t *testing.T) {
	st := Status{Success: true, Message: "core not running"}

	data, err := json.Marshal(st)
	require.NoError(t, err)
	require.JSONEq(t, `{"success":true,"is_running":false,"message":"core not running"}`, string(data))
}

// TestParamsJSONFieldNames pins the request field names the core expects.
func TestParamsJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(JoinLobbyParams{LobbyID: "109775250"})
	require.NoError(t, err)
	require.JSONEq(t, `{"lobby_id":"109775250"}`, string(data))

	data, err = json.Marshal(StartVPNParams{IP: "10.0.0.2", Mask: "255.255.255.0"})
	require.NoError(t, err)
	require.JSONEq(t, `{"ip":"10.0.0.2","mask":"255.255.255.0"}`, string(data))

	data, err = json.Marshal(InviteFriendParams{SteamID: "76561198000000009"})
	require.NoError(t, err)
	require.JSONEq(t, `{"steam_id":"76561198000000009"}`, string(data))
}

// TestVPNStatusDecoding checks a core status payload decodes into the alias.
func TestVPNStatusDecoding(t *testing.T) {
	var status VPNStatus
	err := json.Unmarshal([]byte(`{"is_running":true,"ip":"10.0.0.2","mask":"255.255.255.0"}`), &status)
	require.NoError(t, err)
	require.True(t, status.IsRunning)
	require.Equal(t, "10.0.0.2", status.IP)
	require.Equal(t, "255.255.255.0", status.Mask)
}
