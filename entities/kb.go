package entities

import "time"

type KBArticle struct {
	ArticleID uint      `gorm:"primaryKey" json:"article_id"`
	Title     string    `json:"title"`
	SourceURL string    `json:"source_url"`
	Tags      string    `json:"tags"`
	Text      string    `json:"-"`
	CreatedAt time.Time
}

type ArticleRef struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
