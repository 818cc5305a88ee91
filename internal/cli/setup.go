package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cpstat/internal/models"
)

// SetupPrompt asks for every platform username in one pass. All entries get
// the same setup timestamp, which invalidates any cached rating fetched
// before it.
type SetupPrompt struct {
	in    *bufio.Reader
	out   io.Writer
	clock func() time.Time
}

func NewSetupPrompt() *SetupPrompt {
	return NewSetupPromptWithIO(os.Stdin, os.Stdout)
}

func NewSetupPromptWithIO(in io.Reader, out io.Writer) *SetupPrompt {
	return &SetupPrompt{
		in:    bufio.NewReader(in),
		out:   out,
		clock: time.Now,
	}
}

func (p *SetupPrompt) Run() ([]models.Account, error) {
	now := p.clock().Unix()
	accounts := make([]models.Account, 0, len(models.Platforms()))
	for _, platform := range models.Platforms() {
		fmt.Fprintf(p.out, "%s username (leave blank to skip): ", platform)
		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		accounts = append(accounts, models.Account{
			Platform:  platform,
			Username:  strings.TrimSpace(line),
			SetupTime: now,
		})
	}
	return accounts, nil
}
