package fetchers

import (
	"fmt"
	"io"
	"net/http"

	"cpstat/internal/providers"
	"cpstat/internal/structures"
)

const maxResponseBodySize = 2 << 20 // 2 MB

// FetcherInterface extracts the current rating for one username on one
// platform. Implementations issue exactly one request per call.
type FetcherInterface interface {
	Platform() string
	Fetch(username string) (int, error)
}

// get performs a single GET with the configured User-Agent. Some platforms
// reject Go's default agent string outright.
func get(client providers.HTTPClientInterface, conf *structures.Config, url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", conf.Fetch.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
}

// NewFetchers returns all platform fetchers in display order.
func NewFetchers(client providers.HTTPClientInterface, conf *structures.Config, logger providers.Logger) []FetcherInterface {
	return []FetcherInterface{
		NewCodeforcesFetcher(client, conf, logger),
		NewCodechefFetcher(client, conf, logger),
		NewAtcoderFetcher(client, conf, logger),
	}
}
