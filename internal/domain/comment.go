package domain

import "time"

type Comment struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	ItemID     int64     `json:"itemId"`
	AuthorID   int64     `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}
