package model

import "time"

type PlaymatePostDTO struct {
	PostID        int64   `json:"postId"`
	AccountID     int64   `json:"accountId"`
	AuthorName    string  `json:"authorname"`
	CourtID       int64   `json:"courtId"`
	CourtName     string  `json:"courtname"`
	PlayDate      string  `json:"playdate"`
	StartTime     string  `json:"starttime"`
	EndTime       string  `json:"endtime"`
	NeededPlayers int     `json:"neededplayers"`
	SkillLevel    *string `json:"skilllevel"`
	Description   *string `json:"description"`
	Status        string  `json:"status"`
}

type PlaymatePost struct {
	ID            int64      `json:"id"`
	AccountID     int64      `json:"accountId"`
	AuthorName    string     `json:"authorName"`
	CourtID       int64      `json:"courtId"`
	CourtName     string     `json:"courtName"`
	PlayDate      *time.Time `json:"playDate"`
	StartTime     string     `json:"startTime"`
	EndTime       string     `json:"endTime"`
	NeededPlayers int        `json:"neededPlayers"`
	SkillLevel    *string    `json:"skillLevel"`
	Description   *string    `json:"description"`
	Status        string     `json:"status"`
}

type PlaymatePostCreateDTO struct {
	CourtID       int64  `json:"courtId"`
	PlayDate      string `json:"playdate"`
	StartTime     string `json:"starttime"`
	EndTime       string `json:"endtime"`
	NeededPlayers int    `json:"neededplayers"`
	SkillLevel    string `json:"skilllevel"`
	Description   string `json:"description"`
}

type PlaymateJoinDTO struct {
	JoinID    int64  `json:"joinId"`
	PostID    int64  `json:"postId"`
	AccountID int64  `json:"accountId"`
	FullName  string `json:"fullname"`
	Status    string `json:"status"`
	JoinedAt  string `json:"joinedAt"`
}

type PlaymateJoin struct {
	ID        int64      `json:"id"`
	PostID    int64      `json:"postId"`
	AccountID int64      `json:"accountId"`
	FullName  string     `json:"fullName"`
	Status    string     `json:"status"`
	JoinedAt  *time.Time `json:"joinedAt"`
}
