// pkg/installer/batch.go - the batch orchestration loop.

package installer

import (
	"github.com/windowsadmins/appsetup/pkg/config"
	"github.com/windowsadmins/appsetup/pkg/logging"
	"github.com/windowsadmins/appsetup/pkg/manifest"
	"github.com/windowsadmins/appsetup/pkg/process"
)

// RunBatch processes requests strictly in order, one at a time, each to a
// terminal outcome before the next starts. Best-effort: a failed item never
// blocks the items after it. Installs share the cache path and artifact
// naming scheme, so invocations must never overlap.
func RunBatch(requests []manifest.InstallRequest, cfg *config.Configuration, runner process.Runner) []Outcome {
	outcomes := make([]Outcome, 0, len(requests))

	for i, req := range requests {
		name := req.Name
		if name == "" {
			name = "(unnamed)"
		}
		logging.Info("Installing", "program", name, "item", i+1, "total", len(requests))

		outcome := Install(req, cfg, runner)
		logging.Info("Install finished", "program", name, "outcome", outcome.String())
		outcomes = append(outcomes, outcome)
	}

	return outcomes
}
