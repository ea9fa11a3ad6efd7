package model

type PackageDTO struct {
	PackageID    int64   `json:"packageId"`
	PackageName  string  `json:"packagename"`
	Description  *string `json:"description"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"durationdays"`
	SessionCount int     `json:"sessioncount"`
	IsActive     *bool   `json:"isactive"`
}

type Package struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"durationDays"`
	SessionCount int     `json:"sessionCount"`
	IsActive     bool    `json:"isActive"`
}

type PackageCreateDTO struct {
	PackageName  string  `json:"packagename"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"durationdays"`
	SessionCount int     `json:"sessioncount"`
	IsActive     bool    `json:"isactive"`
}
