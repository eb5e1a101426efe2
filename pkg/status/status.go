// pkg/status/status.go - reporting of installed software on the machine.

package status

import (
	"fmt"
	"os"
	"text/tabwriter"
)

// InstalledProduct is one MSI-registered product on the system.
type InstalledProduct struct {
	Name    string
	Version string
	Vendor  string
}

// PrintInstalledProducts writes a table of installed products to stdout.
func PrintInstalledProducts() error {
	products, err := InstalledProducts()
	if err != nil {
		return fmt.Errorf("failed to enumerate installed products: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSION\tVENDOR")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.Version, p.Vendor)
	}
	return w.Flush()
}
