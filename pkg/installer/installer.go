// pkg/installer/installer.go - the per-request install state machine:
// resolve download name, fetch if absent, dispatch by format, verify via
// the filesystem marker, clean up temp artifacts on every exit path.

package installer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/windowsadmins/appsetup/pkg/blocking"
	"github.com/windowsadmins/appsetup/pkg/config"
	"github.com/windowsadmins/appsetup/pkg/download"
	"github.com/windowsadmins/appsetup/pkg/extract"
	"github.com/windowsadmins/appsetup/pkg/logging"
	"github.com/windowsadmins/appsetup/pkg/manifest"
	"github.com/windowsadmins/appsetup/pkg/process"
)

// Outcome is the terminal result of processing one install request.
type Outcome int

const (
	Failed Outcome = iota
	Success
	AlreadyInstalled
)

// String returns the string representation of the Outcome.
func (o Outcome) String() string {
	switch o {
	case Success:
		return "Success"
	case AlreadyInstalled:
		return "AlreadyInstalled"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Format identifies the packaging of a downloaded artifact.
type Format int

const (
	FormatUnknown Format = iota
	FormatExe
	FormatMsi
	FormatMsix
	FormatZip
)

// ErrUnsupportedFormat marks artifacts whose extension has no install
// procedure. It surfaces as a Failed outcome, never a silent no-op.
var ErrUnsupportedFormat = errors.New("unsupported installer format")

// formatForPath maps a file extension to its Format. The match is
// case-sensitive: repositories serve lowercase extensions, and a ".EXE"
// artifact is treated as unsupported rather than guessed at.
func formatForPath(path string) Format {
	switch filepath.Ext(path) {
	case ".exe":
		return FormatExe
	case ".msi":
		return FormatMsi
	case ".msix":
		return FormatMsix
	case ".zip":
		return FormatZip
	default:
		return FormatUnknown
	}
}

// fileExists checks if a file exists on the filesystem.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Install processes one request to a terminal outcome. Every error past the
// already-installed gate is caught here, logged, and converted to Failed;
// nothing propagates to the batch level.
func Install(req manifest.InstallRequest, cfg *config.Configuration, runner process.Runner) Outcome {
	req = manifest.ApplyDefaults(req)
	url := download.NormalizeURL(req.URL)

	// Already-installed gate comes before any network traffic or filesystem
	// write: if the marker exists there is nothing to do and nothing to
	// clean up.
	if fileExists(req.VerificationPath) {
		logging.Info("Already installed", "program", req.Name, "marker", req.VerificationPath)
		return AlreadyInstalled
	}

	if running := blocking.RunningBlockingApps(req); len(running) > 0 {
		logging.Warn("Skipping install, blocking applications running",
			"program", req.Name, "running_apps", running)
		return Failed
	}

	downloadFileName, err := download.ResolveFileName(url, cfg)
	if err != nil {
		logging.Error("Failed to resolve download name", "program", req.Name, "error", err)
		return Failed
	}

	if err := os.MkdirAll(cfg.CachePath, 0755); err != nil {
		logging.Error("Failed to create cache directory", "path", cfg.CachePath, "error", err)
		return Failed
	}

	downloadPath := filepath.Join(cfg.CachePath, downloadFileName)

	// From here an artifact may exist on disk; cleanup runs on every exit
	// path, success or failure, including mid-dispatch errors.
	var extractedDir string
	defer func() {
		cleanupArtifacts(downloadPath, extractedDir, cfg)
	}()

	if !fileExists(downloadPath) {
		if err := download.DownloadFile(url, downloadPath, cfg); err != nil {
			logging.Error("Download failed", "program", req.Name, "url", url, "error", err)
			return Failed
		}
	} else {
		logging.Debug("Using cached artifact", "program", req.Name, "file", downloadPath)
	}

	if err := dispatch(req, downloadPath, &extractedDir, runner); err != nil {
		logging.Error("Install step failed", "program", req.Name, "file", downloadPath, "error", err)
		return Failed
	}

	if fileExists(req.VerificationPath) {
		logging.Info("Install verified", "program", req.Name, "marker", req.VerificationPath)
		return Success
	}

	logging.Error("Install verification failed, marker not found",
		"program", req.Name, "marker", req.VerificationPath)
	return Failed
}

// dispatch runs the install procedure matching the artifact's format. For
// archives it extracts to a sibling directory and re-dispatches the nested
// installer; nested archives are not supported.
func dispatch(req manifest.InstallRequest, artifactPath string, extractedDir *string, runner process.Runner) error {
	format := formatForPath(artifactPath)

	if format == FormatZip {
		destDir := strings.TrimSuffix(artifactPath, filepath.Ext(artifactPath))
		if err := extract.ExtractZip(artifactPath, destDir); err != nil {
			return err
		}
		*extractedDir = destDir

		if req.NestedInstaller == "" {
			return fmt.Errorf("archive artifact %s has no nested installer path", filepath.Base(artifactPath))
		}
		nestedPath := filepath.Join(destDir, filepath.FromSlash(req.NestedInstaller))

		nestedFormat := formatForPath(nestedPath)
		if nestedFormat == FormatZip || nestedFormat == FormatUnknown {
			return fmt.Errorf("%w: nested installer %s", ErrUnsupportedFormat, req.NestedInstaller)
		}
		logging.Info("Running nested installer", "program", req.Name, "installer", req.NestedInstaller)
		return runFormat(nestedFormat, nestedPath, req.Arguments, runner)
	}

	if format == FormatUnknown {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(artifactPath))
	}
	return runFormat(format, artifactPath, req.Arguments, runner)
}

// runFormat launches the installer for one concrete format and blocks until
// it exits.
func runFormat(format Format, path string, arguments string, runner process.Runner) error {
	switch format {
	case FormatExe:
		return runner.RunElevated(path, arguments)
	case FormatMsi:
		return runner.InstallMSI(path, arguments)
	case FormatMsix:
		return runner.InstallAppPackage(path)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}
