package main

import (
	"fmt"
	"net"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ring-runner/internal/audio"
	"github.com/vovakirdan/ring-runner/internal/games/ringrun"
	"github.com/vovakirdan/ring-runner/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Ring Runner SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own run, sized to its terminal. Sound cues
become terminal bells on the player's side. All players share one
leaderboard, kept in memory until the server stops.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.ringrun/host_key

Examples:
  ringrun serve                           # Listen on :23234 with auto-generated key
  ringrun serve --ssh :2222               # Listen on port 2222
  ringrun serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := newLogger("ringrun-ssh")
	if err != nil {
		return err
	}

	runnerCfg, err := loadConfig()
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
	}

	factory := func(ssh.Session) (tui.Game, tui.Bell) {
		if !runnerCfg.Sound.Enabled {
			return ringrun.New(runnerCfg, ringrun.Silent), nil
		}
		bell := audio.NewBell()
		return ringrun.New(runnerCfg, bell), bell
	}

	server, err := tui.NewSSHServer(cfg, factory, logger)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	fmt.Printf("Starting Ring Runner SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", sshPort(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}

// sshPort returns the port of a listen address, or the address itself when
// it has no port.
func sshPort(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil || port == "" {
		return addr
	}
	return port
}
