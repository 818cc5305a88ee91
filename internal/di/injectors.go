//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"cpstat/internal"
	"cpstat/internal/cli"
	"cpstat/internal/fetchers"
	"cpstat/internal/providers"
	"cpstat/internal/services"
	"cpstat/internal/store"
	"cpstat/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewHTTPClientProvider,

		store.NewZstdCompressor,
		store.NewAccountStore,
		store.NewRatingLog,
		store.NewArchiver,
		services.NewRatingService,
		fetchers.NewFetchers,
		cli.NewReporter,
		cli.NewSetupPrompt,
		internal.NewApp,
	)

	return nil, nil
}
