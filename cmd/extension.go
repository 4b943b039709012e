package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"github.com/etnz/wealthdesk/logging"
)

const (
	EnvCurrency = "WD_CURRENCY"
	EnvHideZero = "WD_HIDE_ZERO"
)

// RunExtension attempts to find and execute an external wd-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
//
// Extensions inherit the environment, so they read the same WD_API_URL and
// WD_API_TOKEN as wd itself; the display flags are passed as WD_CURRENCY and
// WD_HIDE_ZERO.
func RunExtension(logger *slog.Logger, subcommand string, args []string) (bool, int) {
	if logger == nil {
		logger = logging.Discard()
	}
	externalCmdName := "wd-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		logger.Debug("external command not found", "command", externalCmdName, "error", err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvCurrency+"="+*currency)
	cmd.Env = append(cmd.Env, EnvHideZero+"="+strconv.FormatBool(*hideZero))

	logger.Debug("running external command", "path", lp, "args", len(args))
	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
