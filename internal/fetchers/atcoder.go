package fetchers

import (
	"fmt"
	"regexp"
	"strconv"

	"cpstat/internal/models"
	"cpstat/internal/providers"
	"cpstat/internal/structures"
)

const atcoderURL = "https://atcoder.jp/users/%s"

// The profile table renders the current rating as a colored span inside the
// Rating row.
var atcoderRatingPattern = regexp.MustCompile(`(?s)<th class="no-break">Rating</th>\s*<td><span[^>]*>(\d+)</span>`)

type AtcoderFetcher struct {
	client  providers.HTTPClientInterface
	conf    *structures.Config
	logger  providers.Logger
	baseURL string
}

func NewAtcoderFetcher(client providers.HTTPClientInterface, conf *structures.Config, logger providers.Logger) *AtcoderFetcher {
	return &AtcoderFetcher{
		client:  client,
		conf:    conf,
		logger:  logger,
		baseURL: atcoderURL,
	}
}

func (f *AtcoderFetcher) Platform() string {
	return models.PlatformAtcoder
}

func (f *AtcoderFetcher) Fetch(username string) (int, error) {
	body, err := get(f.client, f.conf, fmt.Sprintf(f.baseURL, username))
	if err != nil {
		return 0, err
	}

	match := atcoderRatingPattern.FindSubmatch(body)
	if match == nil {
		return 0, fmt.Errorf("no rating on profile page of %q", username)
	}
	return strconv.Atoi(string(match[1]))
}
