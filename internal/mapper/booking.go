package mapper

import (
	"time"

	"github.com/courtbook/booking-client-go/internal/model"
)

func CourtBooking(dto model.CourtBookingDTO) (model.CourtBooking, error) {
	if dto.BookingID == 0 {
		return model.CourtBooking{}, missingID("court booking")
	}
	return model.CourtBooking{
		ID:            dto.BookingID,
		CourtID:       dto.CourtID,
		CourtName:     dto.CourtName,
		AccountID:     dto.AccountID,
		BookingDate:   parseTime(dto.BookingDate),
		StartTime:     dto.StartTime,
		EndTime:       dto.EndTime,
		TotalPrice:    dto.TotalPrice,
		PaymentStatus: dto.PaymentStatus,
		Status:        dto.Status,
	}, nil
}

func CourtBookingCreate(u model.CourtBooking) model.CourtBookingCreateDTO {
	bookingDate := ""
	if u.BookingDate != nil {
		bookingDate = u.BookingDate.UTC().Format(time.RFC3339)
	}
	return model.CourtBookingCreateDTO{
		CourtID:     u.CourtID,
		BookingDate: bookingDate,
		StartTime:   u.StartTime,
		EndTime:     u.EndTime,
		TotalPrice:  u.TotalPrice,
	}
}
