package providers

import (
	"cpstat/internal/structures"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

func defaultBaseDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "cpstat")
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	baseDir := defaultBaseDir()
	viper.SetDefault("storage.accountsPath", filepath.Join(baseDir, "accounts.conf"))
	viper.SetDefault("storage.ratingsPath", filepath.Join(baseDir, "ratings.log"))
	viper.SetDefault("storage.archivePath", filepath.Join(baseDir, "ratings.archive.zst"))
	viper.SetDefault("cache.freshness", "48h")
	viper.SetDefault("cache.maxRecords", 1000)
	viper.SetDefault("fetch.timeout", "10s")
	viper.SetDefault("fetch.userAgent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.114 Safari/537.36")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", 0o644)
	viper.SetDefault("logger.dir", filepath.Join(baseDir, "logs"))

	if flags.ConfigPath != "" {
		filename := filepath.Base(flags.ConfigPath)
		viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
		viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	} else {
		viper.AddConfigPath(baseDir)
		viper.SetConfigName("config")
	}
	viper.SetConfigType("yaml")

	viper.BindEnv("cache.freshness", "CPSTAT_CACHE_FRESHNESS")
	viper.BindEnv("cache.maxRecords", "CPSTAT_CACHE_MAX_RECORDS")
	viper.BindEnv("fetch.timeout", "CPSTAT_FETCH_TIMEOUT")
	viper.BindEnv("logger.level", "CPSTAT_LOG_LEVEL")

	err := viper.ReadInConfig()
	if err != nil {
		// A missing config file is fine, built-in defaults apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	for _, dir := range []string{filepath.Dir(conf.Storage.AccountsPath), filepath.Dir(conf.Storage.RatingsPath), conf.Logger.Dir} {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("unable to create directory %s: %w", dir, err)
		}
	}

	conf.AppName = "cpstat"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
