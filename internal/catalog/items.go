package catalog

// Kind distinguishes folders from leaves.
type Kind string

const (
	KindFolder Kind = "folder"
	KindMedia  Kind = "media"
)

// ProtocolHTTP is the only media source protocol produced.
const ProtocolHTTP = "http"

// MaxPageSize caps the number of items returned per listing.
const MaxPageSize = 50

// MediaSource describes one playable stream of a leaf.
type MediaSource struct {
	ID       string `json:"id"`
	Path     string `json:"path"`
	Protocol string `json:"protocol"`
	Bitrate  int    `json:"bitrate"`
}

// Item is one catalog entry. ID is the token to list next; informational leaves have
// no media sources.
type Item struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Kind         Kind          `json:"kind"`
	IsLiveStream bool          `json:"isLiveStream"`
	MediaSources []MediaSource `json:"mediaSources,omitempty"`
}

// Playable reports whether the item carries a stream.
func (i Item) Playable() bool {
	return i.Kind == KindMedia && len(i.MediaSources) > 0
}

// Query asks for one page of the listing under Token.
type Query struct {
	Token      string
	StartIndex int
	Limit      int
}

// Result is a page of items. TotalRecordCount is the size of the unpaged listing.
type Result struct {
	Items            []Item `json:"items"`
	TotalRecordCount int    `json:"totalRecordCount"`
}

// page slices items per q. A Limit of zero or above MaxPageSize is treated as MaxPageSize.
func page(items []Item, q Query) Result {
	total := len(items)
	start := q.StartIndex
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	limit := q.Limit
	if limit <= 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}
	end := start + limit
	if end > total {
		end = total
	}
	out := make([]Item, end-start)
	copy(out, items[start:end])
	return Result{Items: out, TotalRecordCount: total}
}
