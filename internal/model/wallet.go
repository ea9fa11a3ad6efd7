package model

import "time"

// WalletDTO carries monetary amounts as strings on the wire; the mapper
// coerces them to float64.
type WalletDTO struct {
	WalletID  int64  `json:"walletId"`
	AccountID int64  `json:"accountId"`
	Balance   string `json:"balance"`
	UpdatedAt string `json:"updatedAt"`
}

type Wallet struct {
	ID        int64      `json:"id"`
	AccountID int64      `json:"accountId"`
	Balance   float64    `json:"balance"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

type WalletTransactionDTO struct {
	TransactionID int64   `json:"transactionId"`
	WalletID      int64   `json:"walletId"`
	Amount        string  `json:"amount"`
	Type          string  `json:"type"`
	Description   *string `json:"description"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
}

type WalletTransaction struct {
	ID          int64      `json:"id"`
	WalletID    int64      `json:"walletId"`
	Amount      float64    `json:"amount"`
	Type        string     `json:"type"`
	Description *string    `json:"description"`
	Status      string     `json:"status"`
	CreatedAt   *time.Time `json:"createdAt"`
}
