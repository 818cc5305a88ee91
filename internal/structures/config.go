package structures

import "time"

type StorageConfig struct {
	AccountsPath string `yaml:"accountsPath" validate:"required|unixPath"`
	RatingsPath  string `yaml:"ratingsPath" validate:"required|unixPath"`
	ArchivePath  string `yaml:"archivePath" validate:"required|unixPath"`
}

type CacheConfig struct {
	Freshness  time.Duration `yaml:"freshness" validate:"required|min:1"`
	MaxRecords int           `yaml:"maxRecords"`
}

type FetchConfig struct {
	Timeout   time.Duration `yaml:"timeout" validate:"required|min:1"`
	UserAgent string        `yaml:"userAgent"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type Config struct {
	AppName string
	Debug   bool
	Path    string
	Storage StorageConfig `yaml:"storage"`
	Cache   CacheConfig   `yaml:"cache"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Logger  LoggerConfig  `yaml:"logger"`
}
