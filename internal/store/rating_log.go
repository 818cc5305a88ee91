package store

import (
	"bufio"
	"os"
	"strings"

	"cpstat/internal/models"
	"cpstat/internal/providers"
	"cpstat/internal/structures"
)

type RatingLogInterface interface {
	Append(record models.RatingRecord) error
	Last(platform string) (models.RatingRecord, bool)
	All() ([]models.RatingRecord, error)
	Rewrite(records []models.RatingRecord) error
	Clear() error
}

// RatingLog is the append-only fetch history. Lookups scan the whole file;
// the last line for a platform wins. Malformed lines are skipped, not fatal.
type RatingLog struct {
	path   string
	logger providers.Logger
}

func NewRatingLog(conf *structures.Config, logger providers.Logger) RatingLogInterface {
	return &RatingLog{
		path:   conf.Storage.RatingsPath,
		logger: logger,
	}
}

func (l *RatingLog) Append(record models.RatingRecord) error {
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(record.MarshalLine() + "\n")
	return err
}

func (l *RatingLog) Last(platform string) (models.RatingRecord, bool) {
	records, err := l.All()
	if err != nil {
		l.logger.Warnf(providers.TypeApp, "Reading ratings log: %s", err)
		return models.RatingRecord{}, false
	}

	var last models.RatingRecord
	found := false
	for _, record := range records {
		if record.Platform == platform {
			last = record
			found = true
		}
	}
	return last, found
}

func (l *RatingLog) All() ([]models.RatingRecord, error) {
	file, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var records []models.RatingRecord
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		record, err := models.ParseRatingLine(line)
		if err != nil {
			l.logger.Warnf(providers.TypeApp, "Skipping rating line: %s", err)
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (l *RatingLog) Rewrite(records []models.RatingRecord) error {
	var sb strings.Builder
	for _, record := range records {
		sb.WriteString(record.MarshalLine())
		sb.WriteByte('\n')
	}
	return writeFileAtomic(l.path, []byte(sb.String()))
}

func (l *RatingLog) Clear() error {
	err := os.Remove(l.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
