// Package cli implements the coursectl command-line interface with cobra.
// Services are injected by main through SetPorts; commands fail cleanly
// when a required service is missing.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/edustack-labs/coursectl/internal/core/ports/driven"
	"github.com/edustack-labs/coursectl/internal/core/ports/driving"
	"github.com/edustack-labs/coursectl/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// Injected services. Tests swap these for mocks.
var (
	catalogService driving.CatalogService
	publishService driving.PublishService
	draftService   driving.DraftService
	configStore    driven.ConfigStore
)

// Ports bundles everything the CLI needs from the core.
type Ports struct {
	Catalog driving.CatalogService
	Publish driving.PublishService
	Drafts  driving.DraftService
	Config  driven.ConfigStore
}

// SetPorts installs the services the commands run against.
func SetPorts(p Ports) {
	catalogService = p.Catalog
	publishService = p.Publish
	draftService = p.Drafts
	configStore = p.Config
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "coursectl",
	Short: "Author video-course content from the terminal",
	Long: `coursectl is an admin tool for composing and publishing video-course
chapters against the content-management API.

Pick a subject through the department → year → subject cascade, compose a
chapter's video parts, and publish — interactively or from a batch manifest.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
