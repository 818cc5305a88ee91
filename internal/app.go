package internal

import (
	"fmt"

	"cpstat/internal/cli"
	"cpstat/internal/fetchers"
	"cpstat/internal/models"
	"cpstat/internal/providers"
	"cpstat/internal/services"
	"cpstat/internal/store"
	"cpstat/internal/structures"
)

type App struct {
	flags    *structures.CliFlags
	conf     *structures.Config
	logger   providers.Logger
	accounts store.AccountStoreInterface
	ratings  store.RatingLogInterface
	archiver store.ArchiverInterface
	service  services.RatingServiceInterface
	fetchers []fetchers.FetcherInterface
	reporter *cli.Reporter
	prompt   *cli.SetupPrompt
}

func NewApp(flags *structures.CliFlags, conf *structures.Config, logger providers.Logger, accounts store.AccountStoreInterface, ratings store.RatingLogInterface, archiver store.ArchiverInterface, service services.RatingServiceInterface, fetchers []fetchers.FetcherInterface, reporter *cli.Reporter, prompt *cli.SetupPrompt) (*App, error) {
	logger.Infof(providers.TypeApp, "Starting %s", conf.AppName)
	return &App{
		flags:    flags,
		conf:     conf,
		logger:   logger,
		accounts: accounts,
		ratings:  ratings,
		archiver: archiver,
		service:  service,
		fetchers: fetchers,
		reporter: reporter,
		prompt:   prompt,
	}, nil
}

func (a *App) Run() error {
	switch {
	case a.flags.Remove != "":
		return a.runRemove(a.flags.Remove)
	case a.flags.Setup:
		return a.runSetup()
	case a.flags.ShowHistory:
		return a.runHistory()
	default:
		return a.runFetch()
	}
}

func (a *App) Close() {
	a.logger.Close()
}

func (a *App) runRemove(target string) error {
	switch target {
	case "accounts":
		if err := a.accounts.Clear(); err != nil {
			return fmt.Errorf("clearing accounts: %w", err)
		}
		a.logger.Infof(providers.TypeApp, "Accounts cleared")
	case "logs":
		if err := a.ratings.Clear(); err != nil {
			return fmt.Errorf("clearing ratings log: %w", err)
		}
		if err := a.archiver.Clear(); err != nil {
			return fmt.Errorf("clearing ratings archive: %w", err)
		}
		a.logger.Infof(providers.TypeApp, "Ratings log cleared")
	default:
		a.reporter.Usage("unknown remove target %q: want accounts or logs", target)
	}
	return nil
}

func (a *App) runSetup() error {
	accounts, err := a.prompt.Run()
	if err != nil {
		return fmt.Errorf("reading usernames: %w", err)
	}
	if err := a.accounts.Save(accounts); err != nil {
		return fmt.Errorf("saving accounts: %w", err)
	}
	a.logger.Infof(providers.TypeApp, "Accounts saved for %d platforms", len(accounts))
	return nil
}

func (a *App) runHistory() error {
	records, err := a.service.History(a.flags.History)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}
	a.reporter.History(records)
	return nil
}

// runFetch is the default pipeline: for each configured platform, answer from
// the ratings log while the cache policy allows it, otherwise fetch, display
// and append. One platform failing never blocks the others.
func (a *App) runFetch() error {
	if !a.accounts.Exists() {
		a.logger.Infof(providers.TypeApp, "No accounts configured yet, starting setup")
		if err := a.runSetup(); err != nil {
			return err
		}
	}

	accounts, err := a.accounts.Load()
	if err != nil {
		return fmt.Errorf("loading accounts: %w", err)
	}
	byPlatform := make(map[string]models.Account, len(accounts))
	for _, account := range accounts {
		byPlatform[account.Platform] = account
	}

	for _, fetcher := range a.fetchers {
		platform := fetcher.Platform()
		account, ok := byPlatform[platform]
		if !ok || account.Username == "" {
			a.logger.Debugf(providers.TypeFetch, "No username for %s, skipping", platform)
			continue
		}

		if !a.flags.Update {
			if record, hit := a.service.Lookup(platform, account.SetupTime); hit {
				a.logger.Debugf(providers.TypeFetch, "Cache hit for %s", platform)
				a.reporter.Rating(platform, record.Rating, 0, false)
				continue
			}
		}

		rating, err := fetcher.Fetch(account.Username)
		if err != nil {
			// Silent for the user, diagnostics go to the fetch log only.
			a.logger.Warnf(providers.TypeFetch, "%s fetch for %q failed: %s", platform, account.Username, err)
			continue
		}

		previous, hasPrevious := a.service.Previous(platform)
		if _, err := a.service.Record(platform, rating); err != nil {
			a.logger.Errorf(providers.TypeApp, "Recording %s rating: %s", platform, err)
		}
		a.reporter.Rating(platform, rating, rating-previous.Rating, hasPrevious)
	}
	return nil
}
