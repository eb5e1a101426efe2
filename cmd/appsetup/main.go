// cmd/appsetup/main.go

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/windowsadmins/appsetup/pkg/config"
	"github.com/windowsadmins/appsetup/pkg/installer"
	"github.com/windowsadmins/appsetup/pkg/logging"
	"github.com/windowsadmins/appsetup/pkg/manifest"
	"github.com/windowsadmins/appsetup/pkg/process"
	"github.com/windowsadmins/appsetup/pkg/status"
	"github.com/windowsadmins/appsetup/pkg/version"
)

// Exit codes: per-item failures are best-effort and reported at the end;
// a bad batch source stops everything before any item runs.
const (
	exitOK         = 0
	exitItemFailed = 1
	exitInputError = 2
)

func main() {
	enableANSIConsole()

	batchPath := pflag.String("batch", "", "Path to a YAML batch file of install requests.")
	showConfig := pflag.Bool("show-config", false, "Display the current configuration and exit.")
	showInstalled := pflag.Bool("show-installed", false, "List installed products and exit.")
	versionFlag := pflag.Bool("version", false, "Print the version and exit.")

	var verbosity int
	pflag.CountVarP(&verbosity, "verbose", "v", "Increase verbosity (e.g. -v, -vv, -vvv)")
	pflag.Parse()

	if *versionFlag {
		version.Print()
		os.Exit(exitOK)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(exitInputError)
	}

	// 0 => WARN and worse, 1 => INFO, 2+ => DEBUG.
	switch verbosity {
	case 0:
		cfg.LogLevel = "WARN"
	case 1:
		cfg.LogLevel = "INFO"
	default:
		cfg.LogLevel = "DEBUG"
		cfg.Debug = true
	}
	if verbosity > 0 {
		cfg.Verbose = true
	}

	if err := logging.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(exitInputError)
	}
	defer logging.CloseLogger()

	if *showConfig {
		printConfig(cfg)
		os.Exit(exitOK)
	}

	if *showInstalled {
		if err := status.PrintInstalledProducts(); err != nil {
			logging.Error("Failed to list installed products", "error", err)
			os.Exit(exitInputError)
		}
		os.Exit(exitOK)
	}

	if admin, adminErr := adminCheck(); adminErr != nil || !admin {
		logging.Error("Administrative access required", "error", adminErr, "admin", admin)
		os.Exit(exitInputError)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		logging.Error("Failed to create working directories", "error", err)
		os.Exit(exitInputError)
	}

	requests, err := loadBatch(*batchPath, cfg)
	if err != nil {
		logging.Error("Failed to load batch", "error", err)
		os.Exit(exitInputError)
	}

	runner := process.NewRunner()
	outcomes := installer.RunBatch(requests, cfg, runner)

	exitCode := exitOK
	for i, outcome := range outcomes {
		if outcome == installer.Failed {
			logging.Warn("Item did not install", "program", requests[i].Name)
			exitCode = exitItemFailed
		}
	}
	os.Exit(exitCode)
}

// loadBatch resolves the batch source: explicit flag, configured path, or
// the built-in default list. A named batch file that cannot be read is a
// hard error; nothing gets processed.
func loadBatch(flagPath string, cfg *config.Configuration) ([]manifest.InstallRequest, error) {
	path := flagPath
	if path == "" {
		path = cfg.BatchPath
	}
	if path == "" {
		logging.Info("No batch file configured, using built-in request list")
		return manifest.DefaultRequests(), nil
	}
	return manifest.Load(path)
}

func printConfig(cfg *config.Configuration) {
	fmt.Printf("BatchPath:           %s\n", cfg.BatchPath)
	fmt.Printf("CachePath:           %s\n", cfg.CachePath)
	fmt.Printf("LogPath:             %s\n", cfg.LogPath)
	fmt.Printf("LogLevel:            %s\n", cfg.LogLevel)
	fmt.Printf("CleanupDelaySeconds: %d\n", cfg.CleanupDelaySeconds)
	fmt.Printf("HTTPTimeoutSeconds:  %d\n", cfg.HTTPTimeoutSeconds)
}
