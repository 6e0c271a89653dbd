package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/roadfleet/roadfleet/internal/console/syncstore"
)

// newTable returns a tabwriter for aligned column output.
func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

// reportStatus prints a banner for non-ready stores. Callers render their
// snapshot regardless; stale data is still shown on failure.
func reportStatus(status syncstore.Status, errMsg string) {
	switch status {
	case syncstore.Loading:
		printlnFn("Loading...")
	case syncstore.Failed:
		printlnFn(fmt.Sprintf("Error: %s (showing last known data)", errMsg))
	}
}
