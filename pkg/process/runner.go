// pkg/process/runner.go - capability interface for launching installer
// processes. The install state machine only sees this interface, so tests
// never spawn real processes.

package process

// Runner launches installer child processes. Every method blocks until the
// child exits. Exit codes are deliberately not surfaced: installation success
// is judged by the verification marker, not by installer-reported status.
type Runner interface {
	// RunElevated launches an executable with elevated privileges and the
	// given argument string passed verbatim.
	RunElevated(path string, arguments string) error

	// InstallMSI hands an MSI package to the system installer engine with
	// elevated privileges.
	InstallMSI(path string, arguments string) error

	// InstallAppPackage installs an app package (.msix). The app-package
	// installer accepts no caller arguments.
	InstallAppPackage(path string) error
}
