package chat

import "fmt"

type helpItem struct {
	Prefix string
	Text   string
}

type help struct {
	items []helpItem
}

// newCommandsHelp creates a help container from a commands container.
func newCommandsHelp(c *Commands) *help {
	h := help{
		items: []helpItem{},
	}
	for _, kind := range c.order {
		for _, usage := range c.lookup[kind].Usage {
			h.add(helpItem{usage.Syntax, usage.Text})
		}
	}
	return &h
}

func (h *help) add(item helpItem) {
	h.items = append(h.items, item)
}

func (h help) lines() []string {
	r := make([]string, 0, len(h.items))
	for _, item := range h.items {
		r = append(r, fmt.Sprintf("%s: %s", item.Prefix, item.Text))
	}
	return r
}
