package services

import (
	"time"

	"cpstat/internal/models"
	"cpstat/internal/providers"
	"cpstat/internal/store"
	"cpstat/internal/structures"
)

type RatingServiceInterface interface {
	Lookup(platform string, setupTime int64) (models.RatingRecord, bool)
	Record(platform string, rating int) (models.RatingRecord, error)
	Previous(platform string) (models.RatingRecord, bool)
	History(platform string) ([]models.RatingRecord, error)
}

// RatingService implements the cache policy: a logged rating serves as the
// answer while it is younger than the freshness threshold and not older than
// the platform's setup time. Everything else is a miss and forces a fetch.
type RatingService struct {
	freshness time.Duration
	log       store.RatingLogInterface
	archiver  store.ArchiverInterface
	logger    providers.Logger
	clock     func() time.Time
}

func NewRatingService(conf *structures.Config, log store.RatingLogInterface, archiver store.ArchiverInterface, logger providers.Logger) RatingServiceInterface {
	return &RatingService{
		freshness: conf.Cache.Freshness,
		log:       log,
		archiver:  archiver,
		logger:    logger,
		clock:     time.Now,
	}
}

func (rs *RatingService) Lookup(platform string, setupTime int64) (models.RatingRecord, bool) {
	record, ok := rs.log.Last(platform)
	if !ok {
		return models.RatingRecord{}, false
	}

	now := rs.clock().Unix()
	if now-record.FetchTime >= int64(rs.freshness.Seconds()) {
		rs.logger.Debugf(providers.TypeApp, "Cache expired for %s (age %ds)", platform, now-record.FetchTime)
		return models.RatingRecord{}, false
	}
	// A username re-entered after the fetch invalidates the record.
	if setupTime > record.FetchTime {
		rs.logger.Debugf(providers.TypeApp, "Cache predates setup for %s", platform)
		return models.RatingRecord{}, false
	}
	return record, true
}

func (rs *RatingService) Record(platform string, rating int) (models.RatingRecord, error) {
	record := models.RatingRecord{
		Platform:  platform,
		Rating:    rating,
		FetchTime: rs.clock().Unix(),
	}
	if err := rs.log.Append(record); err != nil {
		return models.RatingRecord{}, err
	}

	if err := rs.archiver.Compact(rs.log); err != nil {
		// Compaction is opportunistic; the appended record is already safe.
		rs.logger.Warnf(providers.TypeApp, "Log compaction failed: %s", err)
	}
	return record, nil
}

// Previous returns the latest logged record for the platform, regardless of
// freshness. Used for the delta annotation on fresh fetches.
func (rs *RatingService) Previous(platform string) (models.RatingRecord, bool) {
	return rs.log.Last(platform)
}

func (rs *RatingService) History(platform string) ([]models.RatingRecord, error) {
	records, err := rs.log.All()
	if err != nil {
		return nil, err
	}
	if platform == "" {
		return records, nil
	}
	var filtered []models.RatingRecord
	for _, record := range records {
		if record.Platform == platform {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}
