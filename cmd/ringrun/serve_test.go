package main

import "testing"

func TestSSHPort(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"[::1]:2022", "2022"},
		{"2222", "2222"},
	}
	for _, tt := range tests {
		if got := sshPort(tt.addr); got != tt.want {
			t.Errorf("sshPort(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}
