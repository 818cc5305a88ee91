package store

import (
	"os"

	json "github.com/goccy/go-json"

	"cpstat/internal/models"
	"cpstat/internal/providers"
	"cpstat/internal/structures"
)

// ArchiveFile is the on-disk format of the compacted history: JSON, zstd
// compressed, written atomically.
type ArchiveFile struct {
	Records []models.RatingRecord `json:"records"`
}

type ArchiverInterface interface {
	Compact(log RatingLogInterface) error
	Load() ([]models.RatingRecord, error)
	Clear() error
}

// Archiver moves old ratings-log entries into a compressed archive once the
// live log grows past maxRecords lines. The latest record per platform always
// stays live so cache lookups never touch the archive.
type Archiver struct {
	path       string
	maxRecords int
	compressor CompressorInterface
	logger     providers.Logger
}

func NewArchiver(conf *structures.Config, compressor CompressorInterface, logger providers.Logger) ArchiverInterface {
	return &Archiver{
		path:       conf.Storage.ArchivePath,
		maxRecords: conf.Cache.MaxRecords,
		compressor: compressor,
		logger:     logger,
	}
}

func (a *Archiver) Compact(log RatingLogInterface) error {
	if a.maxRecords <= 0 {
		return nil
	}

	records, err := log.All()
	if err != nil {
		return err
	}
	if len(records) <= a.maxRecords {
		return nil
	}

	// Latest record per platform stays in the live log, in original order.
	lastIdx := make(map[string]int, len(records))
	for i, record := range records {
		lastIdx[record.Platform] = i
	}

	var keep, archive []models.RatingRecord
	for i, record := range records {
		if lastIdx[record.Platform] == i {
			keep = append(keep, record)
		} else {
			archive = append(archive, record)
		}
	}
	if len(archive) == 0 {
		return nil
	}

	existing, err := a.Load()
	if err != nil {
		a.logger.Warnf(providers.TypeApp, "Unreadable archive, rebuilding: %s", err)
		existing = nil
	}

	jsonData, err := json.Marshal(&ArchiveFile{Records: append(existing, archive...)})
	if err != nil {
		return err
	}
	data, err := a.compressor.Compress(jsonData)
	if err != nil {
		return err
	}
	if err = writeFileAtomic(a.path, data); err != nil {
		return err
	}

	if err = log.Rewrite(keep); err != nil {
		return err
	}
	a.logger.Infof(providers.TypeApp, "Archived %d rating records, %d kept live", len(archive), len(keep))
	return nil
}

func (a *Archiver) Load() ([]models.RatingRecord, error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	jsonData, err := a.compressor.Decompress(data)
	if err != nil {
		return nil, err
	}
	var file ArchiveFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, err
	}
	return file.Records, nil
}

func (a *Archiver) Clear() error {
	err := os.Remove(a.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
