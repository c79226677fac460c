package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"

	"github.com/unkn0wn-root/restpad/internal/history"
	"github.com/unkn0wn-root/restpad/internal/theme"
)

// historyItem adapts a history entry to the bubbles list item interface.
type historyItem struct {
	entry history.Entry
}

func (i historyItem) Title() string { return i.entry.DisplayName() }

func (i historyItem) Description() string {
	e := i.entry
	if e.Error != "" {
		return fmt.Sprintf("failed: %s", e.Error)
	}
	return fmt.Sprintf("%s  %s  %s",
		e.Status,
		e.Duration.Round(time.Millisecond),
		e.ExecutedAt.Local().Format("Jan 02 15:04:05"),
	)
}

func (i historyItem) FilterValue() string {
	return i.entry.Method + " " + i.entry.URL
}

func newHistoryDelegate(th theme.Theme) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.Foreground(th.HistoryTime.GetForeground())
	return d
}

func historyItems(entries []history.Entry) []list.Item {
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, historyItem{entry: e})
	}
	return items
}
