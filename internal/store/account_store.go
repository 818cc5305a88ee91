package store

import (
	"bufio"
	"os"
	"strings"

	"cpstat/internal/models"
	"cpstat/internal/providers"
	"cpstat/internal/structures"
)

type AccountStoreInterface interface {
	Exists() bool
	Load() ([]models.Account, error)
	Save(accounts []models.Account) error
	Clear() error
}

// AccountStore persists platform usernames as one line per platform.
// Save always rewrites the whole file; there is no partial update.
type AccountStore struct {
	path   string
	logger providers.Logger
}

func NewAccountStore(conf *structures.Config, logger providers.Logger) AccountStoreInterface {
	return &AccountStore{
		path:   conf.Storage.AccountsPath,
		logger: logger,
	}
}

func (s *AccountStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

func (s *AccountStore) Load() ([]models.Account, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var accounts []models.Account
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		account, err := models.ParseAccountLine(line)
		if err != nil {
			s.logger.Warnf(providers.TypeApp, "Skipping account line: %s", err)
			continue
		}
		accounts = append(accounts, account)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *AccountStore) Save(accounts []models.Account) error {
	var sb strings.Builder
	for _, account := range accounts {
		sb.WriteString(account.MarshalLine())
		sb.WriteByte('\n')
	}
	return writeFileAtomic(s.path, []byte(sb.String()))
}

func (s *AccountStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
