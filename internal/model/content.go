package model

import "time"

// NewsStatus tracks whether a news item is visible in the app.
type NewsStatus string

const (
	// NewsDraft indicates an unpublished news item.
	NewsDraft NewsStatus = "draft"
	// NewsPublished indicates a news item live in the app.
	NewsPublished NewsStatus = "published"
)

// NewsItem represents one entry in the in-app news feed.
type NewsItem struct {
	PublishedAt time.Time  `json:"publishedAt"`
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Author      string     `json:"author"`
	Status      NewsStatus `json:"status"`
}

// FunFact represents one rotating fun-fact shown on the home screen.
type FunFact struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Category  string    `json:"category"`
}
