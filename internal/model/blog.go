package model

import "time"

type BlogDTO struct {
	BlogID       int64   `json:"blogId"`
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	ThumbnailURL *string `json:"thumbnailurl"`
	AuthorID     int64   `json:"authorId"`
	AuthorName   string  `json:"authorname"`
	PublishedAt  string  `json:"publishedAt"`
	IsActive     *bool   `json:"isactive"`
}

type Blog struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	ThumbnailURL *string    `json:"thumbnailUrl"`
	AuthorID     int64      `json:"authorId"`
	AuthorName   string     `json:"authorName"`
	PublishedAt  *time.Time `json:"publishedAt"`
	IsActive     bool       `json:"isActive"`
}

type BlogCreateDTO struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	ThumbnailURL string `json:"thumbnailurl"`
	IsActive     bool   `json:"isactive"`
}
