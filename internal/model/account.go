package model

import "time"

// AccountDTO is the wire shape the backend uses for accounts. Field naming
// follows the backend convention (compound lowercase keys, prefixed id).
type AccountDTO struct {
	AccountID   int64  `json:"accountId"`
	FullName    string `json:"fullname"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phonenumber"`
	Role        string `json:"role"`
	IsActive    *bool  `json:"isactive"`
	CreatedAt   string `json:"createdAt"`
}

// Account is the camelCased model the rest of the client consumes.
type Account struct {
	ID          int64      `json:"id"`
	FullName    string     `json:"fullName"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phoneNumber"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   *time.Time `json:"createdAt"`
}

type AccountUpdateDTO struct {
	FullName    string `json:"fullname"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phonenumber"`
	Role        string `json:"role"`
	IsActive    bool   `json:"isactive"`
}
