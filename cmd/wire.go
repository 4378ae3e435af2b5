package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/viper"

	"github.com/avenk/nixdev-cli/internal/adapters/procs"
	tomlrepo "github.com/avenk/nixdev-cli/internal/adapters/repo/toml"
	"github.com/avenk/nixdev-cli/internal/application"
	"github.com/avenk/nixdev-cli/internal/domain"
	"github.com/avenk/nixdev-cli/internal/ports"
)

type app struct {
	service      *application.Service
	watchService *application.WatchService
	repo         ports.ShellRepository
	hostSystem   domain.System
}

func wireApp() (*app, error) {
	repo, err := tomlrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire shell repository: %w", err)
	}

	scanner := procs.NewScanner(envOrDefault("NIXDEV_BUILD_GROUP", "nixbld"))

	return &app{
		service:      application.NewService(repo, ports.SystemClock{}),
		watchService: application.NewWatchService(scanner, ports.SystemClock{}),
		repo:         repo,
		hostSystem:   domain.System(envOrDefault("NIXDEV_SYSTEM", detectHostSystem())),
	}, nil
}

// detectHostSystem maps the Go runtime platform onto a nix system double.
func detectHostSystem() string {
	arch := runtime.GOARCH
	switch arch {
	case "amd64":
		arch = "x86_64"
	case "arm64":
		arch = "aarch64"
	case "386":
		arch = "i686"
	}

	return arch + "-" + runtime.GOOS
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
