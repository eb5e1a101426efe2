// pkg/installer/cleanup.go - removal of downloaded artifacts and extraction
// directories after an install attempt.

package installer

import (
	"os"
	"time"

	"github.com/windowsadmins/appsetup/pkg/config"
	"github.com/windowsadmins/appsetup/pkg/logging"
)

// cleanupArtifacts removes the downloaded installer file and, if an archive
// was extracted, the extraction directory. A short grace period lets a
// just-exited installer release its file locks first. Cleanup problems are
// logged warnings only; they never change the install outcome.
func cleanupArtifacts(artifactPath, extractedDir string, cfg *config.Configuration) {
	if artifactPath == "" && extractedDir == "" {
		return
	}

	if cfg.CleanupDelaySeconds > 0 {
		time.Sleep(time.Duration(cfg.CleanupDelaySeconds) * time.Second)
	}

	if artifactPath != "" {
		if err := os.Remove(artifactPath); err != nil && !os.IsNotExist(err) {
			logging.Warn("Failed to remove downloaded artifact", "file", artifactPath, "error", err)
		} else {
			logging.Debug("Removed downloaded artifact", "file", artifactPath)
		}
	}

	if extractedDir != "" {
		if err := os.RemoveAll(extractedDir); err != nil {
			logging.Warn("Failed to remove extraction directory", "directory", extractedDir, "error", err)
		} else {
			logging.Debug("Removed extraction directory", "directory", extractedDir)
		}
	}
}
