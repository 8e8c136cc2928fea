package genkan

import (
	"fmt"
	"strings"

	"github.com/alnah/go-genkan/config"
)

// BuildLinks validates and normalizes the ordered link list, preserving
// order. Violations return an error wrapping config.ErrInvalidConfig that
// names the offending entry.
//
// Blocks require a title; url, icon, and description are optional. A block
// without a url renders as static text, one without an icon gets no icon
// slot at all. Spacers require a height and carry nothing else.
func BuildLinks(links []config.Link) ([]LinkEntry, error) {
	if len(links) == 0 {
		return nil, fmt.Errorf("%w: at least one link must be defined", config.ErrInvalidConfig)
	}

	entries := make([]LinkEntry, 0, len(links))
	for i := range links {
		link := &links[i]
		switch link.Type() {
		case config.LinkTypeBlock:
			if strings.TrimSpace(link.Title) == "" {
				return nil, fmt.Errorf("%w: links[%d]: block entry requires a title", config.ErrInvalidConfig, i)
			}
			entries = append(entries, LinkEntry{
				Kind:        config.LinkTypeBlock,
				Title:       link.Title,
				URL:         link.URL,
				Icon:        link.Icon,
				Description: link.Description,
			})
		case config.LinkTypeSpace:
			if link.Height == "" {
				return nil, fmt.Errorf("%w: links[%d]: space entry requires a height", config.ErrInvalidConfig, i)
			}
			if link.URL != "" || link.Icon != "" || link.Description != "" {
				return nil, fmt.Errorf("%w: links[%d]: space entry cannot have url, icon, or description", config.ErrInvalidConfig, i)
			}
			entries = append(entries, LinkEntry{
				Kind:   config.LinkTypeSpace,
				Height: link.Height,
			})
		default:
			return nil, fmt.Errorf("%w: links[%d]: unknown link_type %q (must be block or space)", config.ErrInvalidConfig, i, link.LinkType)
		}
	}
	return entries, nil
}
