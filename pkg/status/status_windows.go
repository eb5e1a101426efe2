//go:build windows
// +build windows

package status

import (
	"sort"
	"strings"

	"github.com/yusufpapurcu/wmi"

	"github.com/windowsadmins/appsetup/pkg/logging"
)

// Win32_Product maps the WMI product class. Field names must match the WMI
// property names for the query decoder.
type Win32_Product struct {
	Name    string
	Version string
	Vendor  string
}

// InstalledProducts queries WMI for MSI-registered products, sorted by name.
func InstalledProducts() ([]InstalledProduct, error) {
	var entries []Win32_Product

	err := wmi.Query("SELECT Name, Version, Vendor FROM Win32_Product", &entries)
	if err != nil {
		logging.Warn("Failed to query installed products", "error", err)
		return nil, err
	}

	products := make([]InstalledProduct, 0, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			continue
		}
		products = append(products, InstalledProduct{
			Name:    e.Name,
			Version: e.Version,
			Vendor:  e.Vendor,
		})
	}

	sort.Slice(products, func(i, j int) bool {
		return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
	})
	return products, nil
}
