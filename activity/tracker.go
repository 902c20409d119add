package activity

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"sync"

	"github.com/CSCI-GA-2820-FA22-001/shopcarts/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// ActionCount is the per-action tally kept by Tracker.
type ActionCount struct {
	Action    string
	Successes int64
	Failures  int64
}

// Tracker tallies console action events. Safe for concurrent use.
type Tracker struct {
	mu          sync.Mutex
	totalEvents int64
	counts      map[string]*ActionCount
	lastFailure map[string]string
}

func NewTracker() *Tracker {
	return &Tracker{
		counts:      make(map[string]*ActionCount),
		lastFailure: make(map[string]string),
	}
}

// Record adds one event to the tally.
func (t *Tracker) Record(event models.ActionEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.totalEvents++
	c, ok := t.counts[event.Action]
	if !ok {
		c = &ActionCount{Action: event.Action}
		t.counts[event.Action] = c
	}
	if event.Outcome == models.OutcomeFailure {
		c.Failures++
		t.lastFailure[event.Action] = event.Message
		return
	}
	c.Successes++
}

// Summary returns the tallies sorted by action name.
func (t *Tracker) Summary() []ActionCount {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]ActionCount, 0, len(t.counts))
	for _, c := range t.counts {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Action < out[j].Action })
	return out
}

func (t *Tracker) TotalEvents() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totalEvents
}

// LastFailure returns the flash message of the most recent failed event
// for action.
func (t *Tracker) LastFailure(action string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	msg, ok := t.lastFailure[action]
	return msg, ok
}

// PrintSummary writes the shutdown report.
func (t *Tracker) PrintSummary(w io.Writer) {
	summary := t.Summary()
	rows := make([][]string, 0, len(summary))
	for _, c := range summary {
		last, _ := t.LastFailure(c.Action)
		rows = append(rows, []string{
			c.Action,
			strconv.FormatInt(c.Successes, 10),
			strconv.FormatInt(c.Failures, 10),
			last,
		})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Action", "Succeeded", "Failed", "Last failure").
		Rows(rows...)

	fmt.Fprintln(w, lipgloss.NewStyle().Bold(true).Render("CONSOLE ACTIVITY SUMMARY"))
	fmt.Fprintf(w, "Total Events Processed: %d\n", t.TotalEvents())
	fmt.Fprintln(w, tbl.Render())
}
