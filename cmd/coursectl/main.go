// Command coursectl composes and publishes video-course chapters against
// the content-management API.
package main

import (
	"fmt"
	"os"

	"github.com/edustack-labs/coursectl/internal/adapters/driven/auth"
	"github.com/edustack-labs/coursectl/internal/adapters/driven/config/file"
	"github.com/edustack-labs/coursectl/internal/adapters/driven/contentapi"
	"github.com/edustack-labs/coursectl/internal/adapters/driven/storage/sqlite"
	"github.com/edustack-labs/coursectl/internal/adapters/driving/cli"
	"github.com/edustack-labs/coursectl/internal/core/ports/driven"
	"github.com/edustack-labs/coursectl/internal/core/services"
	"github.com/edustack-labs/coursectl/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

// envToken overrides the stored API token, mainly for CI use.
const envToken = "COURSECTL_TOKEN"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}

	var tokenProvider driven.TokenProvider = auth.NewConfigTokenProvider(configStore)
	if token := os.Getenv(envToken); token != "" {
		tokenProvider = auth.NewStaticTokenProvider(token)
	}

	baseURL := configStore.GetString(driven.ConfigKeyAPIBaseURL)
	apiClient := contentapi.NewClient(baseURL, tokenProvider)

	store, err := sqlite.NewStore("")
	if err != nil {
		// Drafts are a convenience; the tool still works without them.
		logger.Warn("draft storage unavailable: %v", err)
	} else {
		defer store.Close()
	}

	ports := cli.Ports{
		Catalog: services.NewCatalogService(apiClient),
		Publish: services.NewPublishService(apiClient),
		Config:  configStore,
	}
	if store != nil {
		ports.Drafts = services.NewDraftService(store.DraftStore())
	}

	cli.SetPorts(ports)
	cli.SetVersion(version)
	return cli.Execute()
}
