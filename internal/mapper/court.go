package mapper

import "github.com/courtbook/booking-client-go/internal/model"

func Court(dto model.CourtDTO) (model.Court, error) {
	if dto.CourtID == 0 {
		return model.Court{}, missingID("court")
	}
	return model.Court{
		ID:           dto.CourtID,
		Name:         dto.CourtName,
		Address:      dto.Address,
		Description:  dto.Description,
		PricePerHour: dto.PricePerHour,
		OpeningHour:  dto.OpeningHour,
		ClosingHour:  dto.ClosingHour,
		ImageURL:     dto.ImageURL,
		OwnerID:      dto.OwnerID,
		IsActive:     boolValue(dto.IsActive),
		Rating:       dto.Rating,
	}, nil
}

func CourtCreate(u model.Court) model.CourtCreateDTO {
	return model.CourtCreateDTO{
		CourtName:    u.Name,
		Address:      u.Address,
		Description:  stringValue(u.Description),
		PricePerHour: u.PricePerHour,
		OpeningHour:  u.OpeningHour,
		ClosingHour:  u.ClosingHour,
		ImageURL:     stringValue(u.ImageURL),
		IsActive:     u.IsActive,
	}
}
