//go:build windows
// +build windows

// pkg/process/runner_windows.go - Windows installer process launching.
//
// Elevation goes through PowerShell's Start-Process -Verb RunAs, which
// raises the UAC prompt when needed and, with -Wait, blocks until the
// launched installer exits.

package process

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/windowsadmins/appsetup/pkg/logging"
)

var (
	commandMsi = filepath.Join(os.Getenv("WINDIR"), "system32", "msiexec.exe")
	commandPs1 = filepath.Join(os.Getenv("WINDIR"), "system32", "WindowsPowershell", "v1.0", "powershell.exe")
)

type windowsRunner struct{}

// NewRunner returns the Windows installer process backend.
func NewRunner() Runner {
	return &windowsRunner{}
}

// runCMD executes a command and its arguments with a hidden window.
func runCMD(command string, arguments []string) (string, error) {
	cmd := exec.Command(command, arguments...)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow: true,
	}

	var out bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return out.String(), fmt.Errorf("command execution failed: %w | stderr: %s", err, stderr.String())
	}
	return out.String(), nil
}

// psQuote single-quotes a string for embedding in a PowerShell command.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// RunElevated launches path elevated via Start-Process and waits for exit.
func (r *windowsRunner) RunElevated(path string, arguments string) error {
	psCmd := fmt.Sprintf("Start-Process -FilePath %s -Verb RunAs -Wait", psQuote(path))
	if strings.TrimSpace(arguments) != "" {
		psCmd = fmt.Sprintf("Start-Process -FilePath %s -ArgumentList %s -Verb RunAs -Wait",
			psQuote(path), psQuote(arguments))
	}

	output, err := runCMD(commandPs1, []string{
		"-NoProfile", "-NonInteractive", "-ExecutionPolicy", "Bypass", "-Command", psCmd,
	})
	if err != nil {
		logging.Error("Elevated process failed", "path", path, "error", err)
		return err
	}
	logging.Debug("Elevated process finished", "path", path, "output", output)
	return nil
}

// InstallMSI hands the package to msiexec, elevated, and waits for exit.
func (r *windowsRunner) InstallMSI(path string, arguments string) error {
	msiArgs := fmt.Sprintf(`/I "%s" %s`, path, arguments)
	return r.RunElevated(commandMsi, strings.TrimSpace(msiArgs))
}

// InstallAppPackage installs an .msix via Add-AppxPackage. The app-package
// installer takes no caller arguments.
func (r *windowsRunner) InstallAppPackage(path string) error {
	output, err := runCMD(commandPs1, []string{
		"-NoProfile", "-NonInteractive", "-ExecutionPolicy", "Bypass",
		"-Command", "Add-AppxPackage -Path " + psQuote(path),
	})
	if err != nil {
		logging.Error("App package install failed", "path", path, "error", err)
		return err
	}
	logging.Debug("App package installed", "path", path, "output", output)
	return nil
}
