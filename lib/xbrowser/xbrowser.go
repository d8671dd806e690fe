// Package xbrowser opens the watch page in the user's browser.
package xbrowser

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/pkg/browser"

	"oss.terrastruct.com/xos"
)

// OpenURL runs $BROWSER with url when set and otherwise defers to the
// platform's default browser.
func OpenURL(ctx context.Context, env *xos.Env, url string) error {
	browserEnv := env.Getenv("BROWSER")
	if browserEnv == "" {
		return browser.OpenURL(url)
	}
	if browserEnv == "none" {
		return nil
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", browserEnv+` "$1"`, "--", url)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to run %v (out: %q): %w", cmd.Args, out, err)
	}
	return nil
}
