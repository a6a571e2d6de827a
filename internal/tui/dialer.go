package tui

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Dialer hands a phone number to whatever places calls on this machine.
type Dialer interface {
	Dial(ctx context.Context, phone string) error
}

// SystemDialer opens a tel: URI with the desktop's URL opener.
type SystemDialer struct{}

// Dial implements Dialer.
func (SystemDialer) Dial(ctx context.Context, phone string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	uri := "tel:" + phone

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", uri)
	default:
		cmd = exec.Command("xdg-open", uri)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open dialer: %w", err)
	}
	// the opener hands off and exits; don't leave a zombie behind
	go func() { _ = cmd.Wait() }()
	return nil
}
