package model

import "time"

type CourtBookingDTO struct {
	BookingID     int64   `json:"bookingId"`
	CourtID       int64   `json:"courtId"`
	CourtName     string  `json:"courtname"`
	AccountID     int64   `json:"accountId"`
	BookingDate   string  `json:"bookingdate"`
	StartTime     string  `json:"starttime"`
	EndTime       string  `json:"endtime"`
	TotalPrice    float64 `json:"totalprice"`
	PaymentStatus *string `json:"paymentstatus"`
	Status        string  `json:"status"`
}

type CourtBooking struct {
	ID            int64      `json:"id"`
	CourtID       int64      `json:"courtId"`
	CourtName     string     `json:"courtName"`
	AccountID     int64      `json:"accountId"`
	BookingDate   *time.Time `json:"bookingDate"`
	StartTime     string     `json:"startTime"`
	EndTime       string     `json:"endTime"`
	TotalPrice    float64    `json:"totalPrice"`
	PaymentStatus *string    `json:"paymentStatus"`
	Status        string     `json:"status"`
}

type CourtBookingCreateDTO struct {
	CourtID     int64   `json:"courtId"`
	BookingDate string  `json:"bookingdate"`
	StartTime   string  `json:"starttime"`
	EndTime     string  `json:"endtime"`
	TotalPrice  float64 `json:"totalprice"`
}
