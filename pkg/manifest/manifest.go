// pkg/manifest/manifest.go - the install batch: an ordered list of
// installation requests loaded from YAML.

package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/windowsadmins/appsetup/pkg/logging"
)

// InstallRequest describes one program to install. Blank fields are filled
// from defaultRequest by ApplyDefaults, so a partially specified entry never
// fails at parse time.
type InstallRequest struct {
	Name             string   `yaml:"name"`
	URL              string   `yaml:"url"`
	NestedInstaller  string   `yaml:"nested_installer,omitempty"`
	Arguments        string   `yaml:"arguments,omitempty"`
	VerificationPath string   `yaml:"verification_path"`
	BlockingApps     []string `yaml:"blocking_applications,omitempty"`
}

// defaultRequest is the constant record merged over blank fields.
var defaultRequest = InstallRequest{
	Name:             "7-Zip",
	URL:              "https://www.7-zip.org/a/7z2409-x64.exe",
	NestedInstaller:  "",
	Arguments:        "/S",
	VerificationPath: `C:\Program Files\7-Zip\7z.exe`,
}

// ApplyDefaults merges the constant default record over any blank fields.
// NestedInstaller stays empty when blank: the default artifact is not an
// archive, so there is nothing sensible to default it to.
func ApplyDefaults(req InstallRequest) InstallRequest {
	if req.Name == "" {
		req.Name = defaultRequest.Name
	}
	if req.URL == "" {
		req.URL = defaultRequest.URL
	}
	if req.Arguments == "" {
		req.Arguments = defaultRequest.Arguments
	}
	if req.VerificationPath == "" {
		req.VerificationPath = defaultRequest.VerificationPath
	}
	return req
}

// DefaultRequests returns the built-in batch used when no batch file is
// configured.
func DefaultRequests() []InstallRequest {
	return []InstallRequest{
		{
			Name:             "7-Zip",
			URL:              "https://www.7-zip.org/a/7z2409-x64.exe",
			Arguments:        "/S",
			VerificationPath: `C:\Program Files\7-Zip\7z.exe`,
		},
		{
			Name:             "PuTTY",
			URL:              "https://the.earth.li/~sgtatham/putty/latest/w64/putty-64bit-0.83-installer.msi",
			Arguments:        "/quiet /norestart",
			VerificationPath: `C:\Program Files\PuTTY\putty.exe`,
		},
	}
}

// Load reads an ordered list of install requests from a YAML file and applies
// the defaults merge to each entry. A missing file is a hard error: the
// caller asked for that specific batch, so nothing should be processed.
func Load(path string) ([]InstallRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file %s: %w", path, err)
	}

	var requests []InstallRequest
	if err := yaml.Unmarshal(data, &requests); err != nil {
		return nil, fmt.Errorf("failed to parse batch file %s: %w", path, err)
	}

	for i := range requests {
		requests[i] = ApplyDefaults(requests[i])
	}

	logging.Debug("Loaded batch file", "path", path, "items", len(requests))
	return requests, nil
}
