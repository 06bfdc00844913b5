// Package open hands URLs to the host's default handler or to a named application.
package open

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/vidgrab/vidgrab/constant"
)

// ErrUnsupported is returned on platforms without a known launcher.
var ErrUnsupported = errors.New("no launcher for " + runtime.GOOS)

// Start launches target without waiting for the handler to exit.
// An empty app selects the system default handler.
func Start(target, app string) error {
	cmd, err := Command(runtime.GOOS, target, app)
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", cmd.Path, err)
	}

	// the handler outlives us; reap it in the background
	go func() { _ = cmd.Wait() }()
	return nil
}

// Command builds the launcher invocation for goos.
func Command(goos, target, app string) (*exec.Cmd, error) {
	if app == "" {
		switch goos {
		case constant.Windows:
			rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
			return exec.Command(rundll, "url.dll,FileProtocolHandler", target), nil
		case constant.Darwin:
			return exec.Command("open", target), nil
		case constant.Linux:
			return exec.Command("xdg-open", target), nil
		case constant.Android:
			return exec.Command("termux-open", target), nil
		}
		return nil, ErrUnsupported
	}

	switch goos {
	case constant.Windows:
		// cmd's start treats & as a separator
		return exec.Command("cmd", "/C", "start", "", app, strings.ReplaceAll(target, "&", "^&")), nil
	case constant.Darwin:
		return exec.Command("open", "-a", app, target), nil
	case constant.Linux:
		return exec.Command(app, target), nil
	case constant.Android:
		return exec.Command("termux-open", "--choose", target), nil
	}
	return nil, ErrUnsupported
}
