//go:build !windows
// +build !windows

package status

import "fmt"

// InstalledProducts requires WMI and is only available on windows.
func InstalledProducts() ([]InstalledProduct, error) {
	return nil, fmt.Errorf("installed-product enumeration is only available on windows")
}
