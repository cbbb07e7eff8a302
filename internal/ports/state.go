package ports

// StateStore persists search-dock UI state between runs. Implementations
// must tolerate a fresh store (empty results, no error). The source index is
// never stored here, only operator preferences.
type StateStore interface {
	SaveSelection(scope, typeFilter string) error
	LoadSelection() (scope, typeFilter string, err error)

	AddRecentSearch(query string) error
	RecentSearches(limit int) ([]string, error)
}
