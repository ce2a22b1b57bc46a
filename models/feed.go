package models

import "time"

// FeedStatus is the primary state of the food feed.
type FeedStatus int

const (
	// FeedIdle means no load has been started yet.
	FeedIdle FeedStatus = iota

	// FeedLoading means a full load or refresh is in flight.
	FeedLoading

	// FeedReady means the feed holds a displayable collection,
	// possibly stale when offline.
	FeedReady

	// FeedError means the last load failed and there is no cached
	// collection to fall back to.
	FeedError
)

// String returns a short lowercase label for logs and the TUI status line.
func (s FeedStatus) String() string {
	switch s {
	case FeedIdle:
		return "idle"
	case FeedLoading:
		return "loading"
	case FeedReady:
		return "ready"
	case FeedError:
		return "error"
	default:
		return "unknown"
	}
}

// FeedState is a snapshot of the sync engine's observable state.
//
// The engine publishes a fresh snapshot to every subscriber after each state
// mutation. Items is a copy owned by the receiver; mutating it does not
// affect the engine.
type FeedState struct {
	// Status is the primary feed state.
	Status FeedStatus

	// Items is the collection in display order, with queued like intents
	// already applied on top of the server snapshots.
	Items []FoodItem

	// TotalCount is the server-reported catalog size.
	TotalCount int

	// CanLoadMore is true while fewer items are loaded than TotalCount.
	CanLoadMore bool

	// LoadingMore is true while a next-page fetch is in flight.
	LoadingMore bool

	// Offline is true after a connectivity loss or after a refresh failed
	// and the feed fell back to cached data.
	Offline bool

	// Message is the feed-level failure message when Status is FeedError.
	Message string

	// PageMessage is the dismissable message of a failed page load.
	// The already-loaded collection stays visible while it is set.
	PageMessage string

	// LastSyncedAt is when the collection was last persisted after a
	// successful fetch, nil if never.
	LastSyncedAt *time.Time
}
