package model

// SearchResult groups matches across the searchable collections. Each slice
// preserves collection insertion order and may be empty, never null on the
// server side.
type SearchResult struct {
	Users    []User    `json:"users"`
	Posts    []Post    `json:"posts"`
	Products []Product `json:"products"`
}
