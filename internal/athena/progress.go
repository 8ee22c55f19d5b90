package athena

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

const (
	StateQueued    = "QUEUED"
	StateRunning   = "RUNNING"
	StateSucceeded = "SUCCEEDED"
	StateFailed    = "FAILED"
	StateCancelled = "CANCELLED"

	// DollarsPerTB is the on-demand price of scanned data.
	DollarsPerTB = 5.0
)

type Progress struct {
	State        string
	BytesScanned int64
	// ExecDuration is the engine execution time in seconds.
	ExecDuration float64
	Finished     bool
}

type ProgressFunc func(p Progress)

func (f ProgressFunc) Report(p Progress) { f(p) }

func IsTerminal(state string) bool {
	switch state {
	case StateSucceeded, StateFailed, StateCancelled:
		return true
	}
	return false
}

func StateColor(state string) string {
	switch state {
	case StateQueued:
		return color.New(color.FgHiBlack).Sprint(state)
	case StateRunning:
		return color.BlueString(state)
	case StateSucceeded:
		return color.GreenString(state)
	case StateFailed, StateCancelled:
		return color.RedString(state)
	default:
		return state
	}
}

// Cost is the price in dollars of scanning bytes.
func Cost(bytes int64) float64 {
	return float64(bytes) / 1e12 * DollarsPerTB
}

// ConsoleProgress prints one line per report:
//
//	[RUNNING] scanned 1.2 GB (1,234,567,890 bytes | $0.01) in 3.2s
type ConsoleProgress struct {
	Out io.Writer
}

func (c *ConsoleProgress) Report(p Progress) {
	fmt.Fprintln(c.Out, FormatProgress(p))
}

func FormatProgress(p Progress) string {
	exec := time.Duration(p.ExecDuration * float64(time.Second)).Round(time.Millisecond)
	return fmt.Sprintf("[%s] scanned %s (%s bytes | $%s) in %s",
		StateColor(p.State),
		color.YellowString(humanize.Bytes(uint64(max(p.BytesScanned, 0)))),
		color.MagentaString(humanize.Comma(p.BytesScanned)),
		color.GreenString("%.2f", Cost(p.BytesScanned)),
		color.BlueString(exec.String()),
	)
}
