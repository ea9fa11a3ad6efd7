package model

import "time"

type NotificationDTO struct {
	NotificationID int64  `json:"notificationId"`
	AccountID      int64  `json:"accountId"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	Type           string `json:"type"`
	IsRead         *bool  `json:"isread"`
	CreatedAt      string `json:"createdAt"`
}

type Notification struct {
	ID        int64      `json:"id"`
	AccountID int64      `json:"accountId"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Type      string     `json:"type"`
	IsRead    bool       `json:"isRead"`
	CreatedAt *time.Time `json:"createdAt"`
}
