package model

import "time"

type ReviewDTO struct {
	ReviewID  int64   `json:"reviewId"`
	CourtID   int64   `json:"courtId"`
	AccountID int64   `json:"accountId"`
	FullName  string  `json:"fullname"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment"`
	CreatedAt string  `json:"createdAt"`
}

type Review struct {
	ID        int64      `json:"id"`
	CourtID   int64      `json:"courtId"`
	AccountID int64      `json:"accountId"`
	FullName  string     `json:"fullName"`
	Rating    int        `json:"rating"`
	Comment   *string    `json:"comment"`
	CreatedAt *time.Time `json:"createdAt"`
}

type ReviewCreateDTO struct {
	CourtID int64  `json:"courtId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
