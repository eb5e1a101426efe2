//go:build !windows
// +build !windows

// pkg/process/runner_other.go - non-Windows backend. Installers run
// directly, without elevation; this keeps the install state machine
// exercisable in development and CI environments.

package process

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/windowsadmins/appsetup/pkg/logging"
)

type plainRunner struct{}

// NewRunner returns a backend that launches installers directly.
func NewRunner() Runner {
	return &plainRunner{}
}

func (r *plainRunner) RunElevated(path string, arguments string) error {
	cmd := exec.Command(path, strings.Fields(arguments)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		logging.Error("Installer process failed", "path", path, "error", err)
		return fmt.Errorf("command execution failed: %w | output: %s", err, string(output))
	}
	logging.Debug("Installer process finished", "path", path)
	return nil
}

func (r *plainRunner) InstallMSI(path string, arguments string) error {
	return fmt.Errorf("MSI installation is only supported on windows")
}

func (r *plainRunner) InstallAppPackage(path string) error {
	return fmt.Errorf("app package installation is only supported on windows")
}
