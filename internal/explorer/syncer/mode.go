package syncer

import "fmt"

// Mode selects what a sync run does.
type Mode string

const (
	// ModeUpdate rewinds orphaned heights and indexes up to the node tip.
	ModeUpdate Mode = "update"
	// ModeReindex drops the index and rebuilds it from the start height.
	ModeReindex Mode = "reindex"
	// ModeReindexRich rebuilds only the rich lists.
	ModeReindexRich Mode = "reindex-rich"
	// ModeFollow repeats ModeUpdate on every new block until stopped.
	ModeFollow Mode = "follow"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeUpdate, ModeReindex, ModeReindexRich, ModeFollow:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}
