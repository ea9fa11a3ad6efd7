package model

type CourtDTO struct {
	CourtID      int64    `json:"courtId"`
	CourtName    string   `json:"courtname"`
	Address      string   `json:"address"`
	Description  *string  `json:"description"`
	PricePerHour float64  `json:"priceperhour"`
	OpeningHour  string   `json:"openinghour"`
	ClosingHour  string   `json:"closinghour"`
	ImageURL     *string  `json:"imageurl"`
	OwnerID      int64    `json:"ownerId"`
	IsActive     *bool    `json:"isactive"`
	Rating       *float64 `json:"rating"`
}

type Court struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Description  *string  `json:"description"`
	PricePerHour float64  `json:"pricePerHour"`
	OpeningHour  string   `json:"openingHour"`
	ClosingHour  string   `json:"closingHour"`
	ImageURL     *string  `json:"imageUrl"`
	OwnerID      int64    `json:"ownerId"`
	IsActive     bool     `json:"isActive"`
	Rating       *float64 `json:"rating"`
}

type CourtCreateDTO struct {
	CourtName    string  `json:"courtname"`
	Address      string  `json:"address"`
	Description  string  `json:"description"`
	PricePerHour float64 `json:"priceperhour"`
	OpeningHour  string  `json:"openinghour"`
	ClosingHour  string  `json:"closinghour"`
	ImageURL     string  `json:"imageurl"`
	IsActive     bool    `json:"isactive"`
}
