package config

// ChannelMode selects how the RPC channel manages its transport streams.
type ChannelMode string

const (
	// ChannelDialPerCall dials a fresh stream for every call and discards
	// it afterwards. This is the default: a call can never land on a stream
	// left over from an earlier core process.
	ChannelDialPerCall ChannelMode = "dial-per-call"

	// ChannelPersistent dials lazily on first use and reuses the stream
	// across calls. A transport or decode failure tears the stream down;
	// the next call redials.
	ChannelPersistent ChannelMode = "persistent"
)

// NormalizeChannelMode maps the empty mode to the default and reports
// whether the result is a known mode.
func NormalizeChannelMode(mode ChannelMode) (ChannelMode, bool) {
	switch mode {
	case "":
		return ChannelDialPerCall, true
	case ChannelDialPerCall, ChannelPersistent:
		return mode, true
	default:
		return mode, false
	}
}
