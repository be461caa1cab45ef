package entities

import "time"

// Post representa uma publicação do blog
type Post struct {
	ID        uint
	Title     string
	Content   string
	ImageURL  *string
	AuthorID  uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPost cria um post com created_at = updated_at = now
func NewPost(title, content string, imageURL *string, authorID uint, now time.Time) *Post {
	return &Post{
		Title:     title,
		Content:   content,
		ImageURL:  imageURL,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch renova updated_at garantindo que ele sempre avance,
// mesmo quando o relógio não avançou desde a última escrita
func (p *Post) Touch(now time.Time) {
	if !now.After(p.UpdatedAt) {
		now = p.UpdatedAt.Add(time.Microsecond)
	}
	p.UpdatedAt = now
}
