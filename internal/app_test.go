package internal

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpstat/internal/cli"
	"cpstat/internal/fetchers"
	"cpstat/internal/models"
	"cpstat/internal/services"
	"cpstat/internal/store"
	"cpstat/internal/structures"
	"cpstat/internal/testutil"
)

type appFixture struct {
	app      *App
	out      *bytes.Buffer
	accounts store.AccountStoreInterface
	ratings  store.RatingLogInterface
	archiver store.ArchiverInterface
	cf       *testutil.MockFetcher
	cc       *testutil.MockFetcher
	ac       *testutil.MockFetcher
}

func newAppFixture(t *testing.T, flags *structures.CliFlags, stdin string) *appFixture {
	t.Helper()
	dir := t.TempDir()
	conf := &structures.Config{
		AppName: "cpstat",
		Storage: structures.StorageConfig{
			AccountsPath: filepath.Join(dir, "accounts.conf"),
			RatingsPath:  filepath.Join(dir, "ratings.log"),
			ArchivePath:  filepath.Join(dir, "ratings.archive.zst"),
		},
		Cache: structures.CacheConfig{
			Freshness:  172800 * time.Second,
			MaxRecords: 1000,
		},
	}

	logger := &testutil.MockLogger{}
	accounts := store.NewAccountStore(conf, logger)
	ratings := store.NewRatingLog(conf, logger)

	compressor, err := store.NewZstdCompressor()
	require.NoError(t, err)
	t.Cleanup(compressor.Close)
	archiver := store.NewArchiver(conf, compressor, logger)

	service := services.NewRatingService(conf, ratings, archiver, logger)

	cf := &testutil.MockFetcher{Name: models.PlatformCodeforces, Ratings: map[string]int{"alice": 1537}}
	cc := &testutil.MockFetcher{Name: models.PlatformCodechef, Ratings: map[string]int{"bob": 1733}}
	ac := &testutil.MockFetcher{Name: models.PlatformAtcoder, Ratings: map[string]int{"carol": 812}}

	var out bytes.Buffer
	reporter := cli.NewReporterWithWriter(&out, flags.NumbersOnly)
	prompt := cli.NewSetupPromptWithIO(strings.NewReader(stdin), &bytes.Buffer{})

	app, err := NewApp(flags, conf, logger, accounts, ratings, archiver, service,
		[]fetchers.FetcherInterface{cf, cc, ac}, reporter, prompt)
	require.NoError(t, err)

	return &appFixture{
		app:      app,
		out:      &out,
		accounts: accounts,
		ratings:  ratings,
		archiver: archiver,
		cf:       cf,
		cc:       cc,
		ac:       ac,
	}
}

func saveAccounts(t *testing.T, fx *appFixture, accounts ...models.Account) {
	t.Helper()
	require.NoError(t, fx.accounts.Save(accounts))
}

func TestApp_CachedRatingShownWithoutFetch(t *testing.T) {
	fx := newAppFixture(t, &structures.CliFlags{}, "")
	now := time.Now().Unix()

	saveAccounts(t, fx, models.Account{Platform: models.PlatformCodeforces, Username: "alice", SetupTime: now - 1000})
	require.NoError(t, fx.ratings.Append(models.RatingRecord{Platform: models.PlatformCodeforces, Rating: 1500, FetchTime: now - 100}))

	require.NoError(t, fx.app.Run())

	assert.Equal(t, "Codeforces: 1500\n", fx.out.String())
	assert.Empty(t, fx.cf.Calls)
}

func TestApp_ExpiredCacheTriggersFetch(t *testing.T) {
	fx := newAppFixture(t, &structures.CliFlags{}, "")
	now := time.Now().Unix()

	saveAccounts(t, fx, models.Account{Platform: models.PlatformCodeforces, Username: "alice", SetupTime: now - 300000})
	require.NoError(t, fx.ratings.Append(models.RatingRecord{Platform: models.PlatformCodeforces, Rating: 1500, FetchTime: now - 200000}))

	require.NoError(t, fx.app.Run())

	assert.Equal(t, []string{"alice"}, fx.cf.Calls)
	assert.Equal(t, "Codeforces: 1537 (+37)\n", fx.out.String())
}

func TestApp_ForceUpdateBypassesCache(t *testing.T) {
	fx := newAppFixture(t, &structures.CliFlags{Update: true}, "")
	now := time.Now().Unix()

	saveAccounts(t, fx,
		models.Account{Platform: models.PlatformCodeforces, Username: "alice", SetupTime: now - 1000},
		models.Account{Platform: models.PlatformCodechef, Username: "bob", SetupTime: now - 1000},
	)
	require.NoError(t, fx.ratings.Append(models.RatingRecord{Platform: models.PlatformCodeforces, Rating: 1537, FetchTime: now - 100}))

	require.NoError(t, fx.app.Run())

	assert.Equal(t, []string{"alice"}, fx.cf.Calls)
	assert.Equal(t, []string{"bob"}, fx.cc.Calls)
}

func TestApp_SetupAfterFetchInvalidatesCache(t *testing.T) {
	fx := newAppFixture(t, &structures.CliFlags{}, "")
	now := time.Now().Unix()

	// Username re-entered after the last fetch: the fresh-looking record
	// belongs to the old username.
	saveAccounts(t, fx, models.Account{Platform: models.PlatformCodeforces, Username: "alice", SetupTime: now - 50})
	require.NoError(t, fx.ratings.Append(models.RatingRecord{Platform: models.PlatformCodeforces, Rating: 1500, FetchTime: now - 100}))

	require.NoError(t, fx.app.Run())

	assert.Equal(t, []string{"alice"}, fx.cf.Calls)
}

func TestApp_BlankUsernameSkipped(t *testing.T) {
	fx := newAppFixture(t, &structures.CliFlags{}, "")
	now := time.Now().Unix()

	saveAccounts(t, fx,
		models.Account{Platform: models.PlatformCodeforces, Username: "", SetupTime: now - 1000},
		models.Account{Platform: models.PlatformAtcoder, Username: "carol", SetupTime: now - 1000},
	)

	require.NoError(t, fx.app.Run())

	assert.Empty(t, fx.cf.Calls)
	assert.Equal(t, "Atcoder: 812\n", fx.out.String())

	records, err := fx.ratings.All()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.PlatformAtcoder, records[0].Platform)
}

func TestApp_BlankUsernameSkippedUnderForceUpdate(t *testing.T) {
	fx := newAppFixture(t, &structures.CliFlags{Update: true}, "")
	now := time.Now().Unix()

	saveAccounts(t, fx, models.Account{Platform: models.PlatformCodeforces, Username: "", SetupTime: now - 1000})

	require.NoError(t, fx.app.Run())

	assert.Empty(t, fx.cf.Calls)
	assert.Empty(t, fx.out.String())
}

func TestApp_FetchFailureIsSilentAndNonBlocking(t *testing.T) {
	fx := newAppFixture(t, &structures.CliFlags{}, "")
	now := time.Now().Unix()

	fx.cf.Err = errors.New("connection refused")
	saveAccounts(t, fx,
		models.Account{Platform: models.PlatformCodeforces, Username: "alice", SetupTime: now - 1000},
		models.Account{Platform: models.PlatformAtcoder, Username: "carol", SetupTime: now - 1000},
	)

	require.NoError(t, fx.app.Run())

	// The failing platform prints nothing; the others still run.
	assert.Equal(t, "Atcoder: 812\n", fx.out.String())
}

func TestApp_FetchRecordsToLog(t *testing.T) {
	fx := newAppFixture(t, &structures.CliFlags{}, "")
	now := time.Now().Unix()

	saveAccounts(t, fx, models.Account{Platform: models.PlatformCodechef, Username: "bob", SetupTime: now - 1000})

	require.NoError(t, fx.app.Run())

	record, ok := fx.ratings.Last(models.PlatformCodechef)
	require.True(t, ok)
	assert.Equal(t, 1733, record.Rating)
	assert.GreaterOrEqual(t, record.FetchTime, now)
}

func TestApp_NumbersOnlyOutput(t *testing.T) {
	fx := newAppFixture(t, &structures.CliFlags{NumbersOnly: true}, "")
	now := time.Now().Unix()

	saveAccounts(t, fx, models.Account{Platform: models.PlatformCodeforces, Username: "alice", SetupTime: now - 1000})

	require.NoError(t, fx.app.Run())

	assert.Equal(t, "1537\n", fx.out.String())
}

func TestApp_MissingAccountsFileTriggersSetup(t *testing.T) {
	fx := newAppFixture(t, &structures.CliFlags{}, "alice\n\n\n")

	require.NoError(t, fx.app.Run())

	assert.True(t, fx.accounts.Exists())
	accounts, err := fx.accounts.Load()
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, "alice", accounts[0].Username)

	assert.Equal(t, []string{"alice"}, fx.cf.Calls)
	assert.Equal(t, "Codeforces: 1537\n", fx.out.String())
}

func TestApp_SetupMode(t *testing.T) {
	fx := newAppFixture(t, &structures.CliFlags{Setup: true}, "alice\nbob\ncarol\n")

	require.NoError(t, fx.app.Run())

	accounts, err := fx.accounts.Load()
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, "bob", accounts[1].Username)

	// Setup mode never fetches.
	assert.Empty(t, fx.cf.Calls)
	assert.Empty(t, fx.cc.Calls)
}

func TestApp_RemoveAccountsLeavesLogs(t *testing.T) {
	fx := newAppFixture(t, &structures.CliFlags{Remove: "accounts"}, "")
	now := time.Now().Unix()

	saveAccounts(t, fx, models.Account{Platform: models.PlatformCodeforces, Username: "alice", SetupTime: now})
	require.NoError(t, fx.ratings.Append(models.RatingRecord{Platform: models.PlatformCodeforces, Rating: 1500, FetchTime: now}))

	require.NoError(t, fx.app.Run())

	assert.False(t, fx.accounts.Exists())
	records, err := fx.ratings.All()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestApp_RemoveLogsLeavesAccounts(t *testing.T) {
	fx := newAppFixture(t, &structures.CliFlags{Remove: "logs"}, "")
	now := time.Now().Unix()

	saveAccounts(t, fx, models.Account{Platform: models.PlatformCodeforces, Username: "alice", SetupTime: now})
	require.NoError(t, fx.ratings.Append(models.RatingRecord{Platform: models.PlatformCodeforces, Rating: 1500, FetchTime: now}))

	require.NoError(t, fx.app.Run())

	assert.True(t, fx.accounts.Exists())
	records, err := fx.ratings.All()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestApp_RemoveInvalidTargetPrintsUsage(t *testing.T) {
	fx := newAppFixture(t, &structures.CliFlags{Remove: "cache"}, "")

	require.NoError(t, fx.app.Run())

	assert.Contains(t, fx.out.String(), "unknown remove target")
}

func TestApp_HistoryMode(t *testing.T) {
	fx := newAppFixture(t, &structures.CliFlags{ShowHistory: true}, "")

	require.NoError(t, fx.ratings.Append(models.RatingRecord{Platform: models.PlatformCodeforces, Rating: 1500, FetchTime: 1050}))
	require.NoError(t, fx.ratings.Append(models.RatingRecord{Platform: models.PlatformAtcoder, Rating: 812, FetchTime: 1060}))

	require.NoError(t, fx.app.Run())

	assert.Contains(t, fx.out.String(), "Codeforces: 1500")
	assert.Contains(t, fx.out.String(), "Atcoder: 812")
	assert.Empty(t, fx.cf.Calls)
}

func TestApp_HistoryModeFilteredByPlatform(t *testing.T) {
	fx := newAppFixture(t, &structures.CliFlags{ShowHistory: true, History: models.PlatformAtcoder}, "")

	require.NoError(t, fx.ratings.Append(models.RatingRecord{Platform: models.PlatformCodeforces, Rating: 1500, FetchTime: 1050}))
	require.NoError(t, fx.ratings.Append(models.RatingRecord{Platform: models.PlatformAtcoder, Rating: 812, FetchTime: 1060}))

	require.NoError(t, fx.app.Run())

	assert.NotContains(t, fx.out.String(), "Codeforces")
	assert.Contains(t, fx.out.String(), "Atcoder: 812")
}
