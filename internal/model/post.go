package model

// Post represents a post record authored by a user. UserID is a loose
// reference: deleting the user does not cascade to posts.
type Post struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	UserID    int64  `json:"userId"`
	Likes     int    `json:"likes,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
