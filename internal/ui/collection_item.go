package ui

import (
	"github.com/charmbracelet/bubbles/list"

	"github.com/unkn0wn-root/restpad/internal/workspace"
)

// collectionItem adapts a saved request to the bubbles list item interface.
type collectionItem struct {
	collection string
	req        workspace.Request
}

func (i collectionItem) Title() string { return i.req.DisplayName() }

func (i collectionItem) Description() string {
	desc := i.collection
	if i.req.URL != "" {
		desc += "  " + i.req.Method + " " + i.req.URL
	}
	return desc
}

func (i collectionItem) FilterValue() string {
	return i.collection + " " + i.req.Method + " " + i.req.Name + " " + i.req.URL
}

// collectionItems flattens every collection's requests, preserving workspace
// order.
func collectionItems(ws *workspace.Workspace) []list.Item {
	if ws == nil {
		return nil
	}
	var items []list.Item
	for _, c := range ws.Collections {
		for _, req := range c.Requests {
			items = append(items, collectionItem{collection: c.Name, req: req})
		}
	}
	return items
}
