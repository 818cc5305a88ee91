package providers

import (
	"cpstat/internal/structures"
	"net/http"
)

// HTTPClientInterface is the slice of http.Client the fetchers need; tests
// substitute a recording implementation.
type HTTPClientInterface interface {
	Do(req *http.Request) (*http.Response, error)
}

func NewHTTPClientProvider(conf *structures.Config) HTTPClientInterface {
	return &http.Client{
		Timeout: conf.Fetch.Timeout,
	}
}
