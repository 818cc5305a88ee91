package fetchers

import (
	"fmt"
	"regexp"
	"strconv"

	"cpstat/internal/models"
	"cpstat/internal/providers"
	"cpstat/internal/structures"
)

const codechefURL = "https://www.codechef.com/users/%s"

var codechefRatingPattern = regexp.MustCompile(`class="rating-number">(\d+)`)

type CodechefFetcher struct {
	client  providers.HTTPClientInterface
	conf    *structures.Config
	logger  providers.Logger
	baseURL string
}

func NewCodechefFetcher(client providers.HTTPClientInterface, conf *structures.Config, logger providers.Logger) *CodechefFetcher {
	return &CodechefFetcher{
		client:  client,
		conf:    conf,
		logger:  logger,
		baseURL: codechefURL,
	}
}

func (f *CodechefFetcher) Platform() string {
	return models.PlatformCodechef
}

func (f *CodechefFetcher) Fetch(username string) (int, error) {
	body, err := get(f.client, f.conf, fmt.Sprintf(f.baseURL, username))
	if err != nil {
		return 0, err
	}

	match := codechefRatingPattern.FindSubmatch(body)
	if match == nil {
		return 0, fmt.Errorf("no rating on profile page of %q", username)
	}
	return strconv.Atoi(string(match[1]))
}
