package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Account is one configured platform username. Username may be blank,
// meaning the platform is skipped entirely. SetupTime is the unix time the
// username was last (re)entered; cached ratings older than it are unusable.
type Account struct {
	Platform  string `json:"platform"`
	Username  string `json:"username"`
	SetupTime int64  `json:"setup_time"`
}

// MarshalLine renders the accounts-file format: Platform=username|setupUnixTimestamp
func (a Account) MarshalLine() string {
	return fmt.Sprintf("%s=%s|%d", a.Platform, a.Username, a.SetupTime)
}

func ParseAccountLine(line string) (Account, error) {
	platform, rest, ok := strings.Cut(line, "=")
	if !ok {
		return Account{}, fmt.Errorf("malformed account line %q", line)
	}
	username, ts, ok := strings.Cut(rest, "|")
	if !ok {
		return Account{}, fmt.Errorf("malformed account line %q", line)
	}
	setupTime, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return Account{}, fmt.Errorf("malformed setup time in %q: %w", line, err)
	}
	return Account{Platform: platform, Username: username, SetupTime: setupTime}, nil
}
