package config

import "testing"

func TestNormalizeChannelMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     ChannelMode
		want   ChannelMode
		wantOK bool
	}{
		{name: "empty selects default", in: "", want: ChannelDialPerCall, wantOK: true},
		{name: "dial-per-call unchanged", in: ChannelDialPerCall, want: ChannelDialPerCall, wantOK: true},
		{name: "persistent unchanged", in: ChannelPersistent, want: ChannelPersistent, wantOK: true},
		{name: "unknown mode rejected", in: "pooled", want: "pooled", wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := NormalizeChannelMode(tc.in)
			if got != tc.want || ok != tc.wantOK {
				t.Fatalf("NormalizeChannelMode(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}
