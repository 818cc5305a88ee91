package fetchers

import (
	"fmt"

	json "github.com/goccy/go-json"

	"cpstat/internal/models"
	"cpstat/internal/providers"
	"cpstat/internal/structures"
)

const codeforcesURL = "https://codeforces.com/api/user.info?handles=%s"

type codeforcesResponse struct {
	Status string `json:"status"`
	Result []struct {
		Handle string `json:"handle"`
		Rating *int   `json:"rating"`
	} `json:"result"`
}

type CodeforcesFetcher struct {
	client  providers.HTTPClientInterface
	conf    *structures.Config
	logger  providers.Logger
	baseURL string
}

func NewCodeforcesFetcher(client providers.HTTPClientInterface, conf *structures.Config, logger providers.Logger) *CodeforcesFetcher {
	return &CodeforcesFetcher{
		client:  client,
		conf:    conf,
		logger:  logger,
		baseURL: codeforcesURL,
	}
}

func (f *CodeforcesFetcher) Platform() string {
	return models.PlatformCodeforces
}

func (f *CodeforcesFetcher) Fetch(username string) (int, error) {
	body, err := get(f.client, f.conf, fmt.Sprintf(f.baseURL, username))
	if err != nil {
		return 0, err
	}

	var payload codeforcesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, err
	}
	if payload.Status != "OK" || len(payload.Result) == 0 {
		return 0, fmt.Errorf("no user info for %q", username)
	}
	// Unrated users have no rating field at all.
	if payload.Result[0].Rating == nil {
		return 0, fmt.Errorf("no rating for %q", username)
	}
	return *payload.Result[0].Rating, nil
}
