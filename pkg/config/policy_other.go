//go:build !windows
// +build !windows

package config

import "fmt"

// loadPolicyOverrides is a no-op outside Windows; there is no registry.
func loadPolicyOverrides(*Configuration) error {
	return fmt.Errorf("registry policy settings are only available on windows")
}
