// pkg/download/download.go - functions for fetching installer artifacts.

package download

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/windowsadmins/appsetup/pkg/config"
	"github.com/windowsadmins/appsetup/pkg/logging"
)

// NormalizeURL applies the SharePoint point-fix: direct-download links need a
// download=1 query parameter or the share page is served instead of the file.
// The parameter is appended exactly once; non-SharePoint URLs pass through.
func NormalizeURL(url string) string {
	if !strings.Contains(url, "sharepoint") {
		return url
	}
	if strings.Contains(url, "download=1") {
		return url
	}
	if strings.Contains(url, "?") {
		return url + "&download=1"
	}
	return url + "?download=1"
}

// ResolveFileName issues a HEAD request, follows redirects, and returns the
// final path segment of the resolved URL. Hosts that hand out opaque share
// links redirect to the real artifact name, which decides the local file name
// and the format dispatch.
func ResolveFileName(url string, cfg *config.Configuration) (string, error) {
	client := &http.Client{Timeout: httpTimeout(cfg)}

	resp, err := client.Head(url)
	if err != nil {
		return "", fmt.Errorf("failed to resolve download name for %s: %w", url, err)
	}
	defer resp.Body.Close()

	finalURL := resp.Request.URL
	name := path.Base(finalURL.Path)
	if name == "." || name == "/" || name == "" {
		return "", fmt.Errorf("could not derive a file name from %s", finalURL.String())
	}

	logging.Debug("Resolved download name", "url", url, "final_url", finalURL.String(), "name", name)
	return name, nil
}

// DownloadFile downloads url to dest. The destination directory is created
// if absent. Single attempt: a failed fetch surfaces to the caller.
func DownloadFile(url, dest string, cfg *config.Configuration) error {
	if url == "" {
		return fmt.Errorf("invalid parameters: url cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("failed to create directory structure: %v", err)
	}

	logging.Info("Starting download", "url", url, "destination", dest)

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to open destination file: %v", err)
	}
	defer out.Close()

	client := &http.Client{Timeout: httpTimeout(cfg)}
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to perform HTTP request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected HTTP status code: %d", resp.StatusCode)
	}

	if _, err = io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write downloaded data: %v", err)
	}

	logging.Info("Download completed successfully", "file", dest)
	return nil
}

func httpTimeout(cfg *config.Configuration) time.Duration {
	if cfg != nil && cfg.HTTPTimeoutSeconds > 0 {
		return time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	}
	return 10 * time.Minute
}
