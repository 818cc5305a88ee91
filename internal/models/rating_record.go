package models

import (
	"fmt"
	"strconv"
	"strings"
)

// RatingRecord is one logged fetch result. The ratings log holds them
// append-only; the latest record per platform is the cache entry.
type RatingRecord struct {
	Platform  string `json:"platform"`
	Rating    int    `json:"rating"`
	FetchTime int64  `json:"fetch_time"`
}

// MarshalLine renders the ratings-log format: Platform rating unixTimestamp
func (r RatingRecord) MarshalLine() string {
	return fmt.Sprintf("%s %d %d", r.Platform, r.Rating, r.FetchTime)
}

func ParseRatingLine(line string) (RatingRecord, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return RatingRecord{}, fmt.Errorf("malformed rating line %q", line)
	}
	rating, err := strconv.Atoi(fields[1])
	if err != nil {
		return RatingRecord{}, fmt.Errorf("malformed rating in %q: %w", line, err)
	}
	fetchTime, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return RatingRecord{}, fmt.Errorf("malformed fetch time in %q: %w", line, err)
	}
	return RatingRecord{Platform: fields[0], Rating: rating, FetchTime: fetchTime}, nil
}
