// pkg/blocking/blocking.go - pre-install check for running applications
// that would conflict with the installer.

package blocking

import (
	"strings"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/windowsadmins/appsetup/pkg/logging"
	"github.com/windowsadmins/appsetup/pkg/manifest"
)

// IsAppRunning checks if a specific application is currently running.
func IsAppRunning(appName string) bool {
	logging.Debug("Checking if application is running", "app", appName)

	processes, err := process.Processes()
	if err != nil {
		logging.Error("Failed to get process list", "error", err)
		return false
	}

	cleanAppName := strings.ToLower(appName)

	for _, proc := range processes {
		name, err := proc.Name()
		if err != nil {
			continue
		}
		processName := strings.ToLower(name)

		// Three match modes: full executable path, exe file name, bare name.
		if strings.HasPrefix(cleanAppName, "/") || strings.HasPrefix(cleanAppName, `c:\`) {
			exe, err := proc.Exe()
			if err != nil {
				continue
			}
			if strings.EqualFold(exe, appName) {
				logging.Debug("Found running app by exact path", "app", appName, "process", exe)
				return true
			}
		} else if strings.HasSuffix(cleanAppName, ".exe") {
			if processName == cleanAppName {
				logging.Debug("Found running app by exe name", "app", appName, "process", processName)
				return true
			}
		} else {
			if processName == cleanAppName || processName == cleanAppName+".exe" {
				logging.Debug("Found running app by name", "app", appName, "process", processName)
				return true
			}
		}
	}

	return false
}

// RunningBlockingApps returns which of the request's blocking applications
// are currently running. Empty means the install may proceed.
func RunningBlockingApps(req manifest.InstallRequest) []string {
	if len(req.BlockingApps) == 0 {
		return nil
	}

	var running []string
	for _, appName := range req.BlockingApps {
		if IsAppRunning(appName) {
			running = append(running, appName)
		}
	}

	if len(running) > 0 {
		logging.Info("Blocking applications are running", "program", req.Name, "running_apps", running)
	}
	return running
}
