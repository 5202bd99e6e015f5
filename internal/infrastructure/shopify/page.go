package shopify

import (
	"net/http"
	"strconv"
	"strings"
)

// DefaultPageSize mirrors the Admin REST default when no limit is sent.
const DefaultPageSize = 50

// Page is a window of a list endpoint's results. HasMore is a heuristic:
// the platform never states it outright, so a full window is read as "there
// is probably another one". NextCursor carries the page_info token for the
// follow-up call when the platform advertised one.
type Page struct {
	Items      []any  `json:"items"`
	Count      int    `json:"count"`
	HasMore    bool   `json:"hasMore"`
	NextCursor string `json:"nextCursor,omitempty"`
}

func newPage(items []any, requested int, header http.Header) *Page {
	return &Page{
		Items:      items,
		Count:      len(items),
		HasMore:    len(items) == requested,
		NextCursor: nextPageInfo(header),
	}
}

// requestedLimit recovers the page size the caller asked for, falling back
// to the platform default. Tool arguments arrive as float64, internal
// callers may pass int, and cursors copied from query strings are strings.
func requestedLimit(opts map[string]any) int {
	raw, ok := opts["limit"]
	if !ok {
		return DefaultPageSize
	}
	switch v := raw.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return DefaultPageSize
}

// nextPageInfo extracts the page_info cursor from the Link header's
// rel="next" entry, if any.
func nextPageInfo(header http.Header) string {
	link := header.Get("Link")
	if link == "" {
		return ""
	}
	for _, part := range strings.Split(link, ",") {
		if !strings.Contains(part, `rel="next"`) {
			continue
		}
		start := strings.Index(part, "page_info=")
		if start == -1 {
			continue
		}
		cursor := part[start+len("page_info="):]
		for _, stop := range []string{">", "&", ";"} {
			if i := strings.Index(cursor, stop); i != -1 {
				cursor = cursor[:i]
			}
		}
		return cursor
	}
	return ""
}
