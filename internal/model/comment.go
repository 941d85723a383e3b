package model

// Comment represents a comment on a post. PostID is a loose reference.
type Comment struct {
	ID        int64  `json:"id"`
	PostID    int64  `json:"postId"`
	Author    string `json:"author,omitempty"`
	Content   string `json:"content,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}
