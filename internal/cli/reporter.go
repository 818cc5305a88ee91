package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"cpstat/internal/models"
	"cpstat/internal/structures"
)

// Reporter owns stdout. Annotated output is the default; numbers-only mode
// prints the bare value so the tool stays scriptable.
type Reporter struct {
	out         io.Writer
	numbersOnly bool
}

func NewReporter(flags *structures.CliFlags) *Reporter {
	return NewReporterWithWriter(os.Stdout, flags.NumbersOnly)
}

func NewReporterWithWriter(out io.Writer, numbersOnly bool) *Reporter {
	return &Reporter{
		out:         out,
		numbersOnly: numbersOnly,
	}
}

func (r *Reporter) Rating(platform string, rating, delta int, hasDelta bool) {
	if r.numbersOnly {
		fmt.Fprintf(r.out, "%d\n", rating)
		return
	}
	if hasDelta && delta != 0 {
		fmt.Fprintf(r.out, "%s: %d (%+d)\n", platform, rating, delta)
		return
	}
	fmt.Fprintf(r.out, "%s: %d\n", platform, rating)
}

func (r *Reporter) History(records []models.RatingRecord) {
	for _, record := range records {
		if r.numbersOnly {
			fmt.Fprintf(r.out, "%s\n", record.MarshalLine())
			continue
		}
		ts := time.Unix(record.FetchTime, 0).Format("2006-01-02 15:04")
		fmt.Fprintf(r.out, "%s: %d (%s)\n", record.Platform, record.Rating, ts)
	}
}

func (r *Reporter) Usage(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format+"\n", args...)
}
