package mapper

import "github.com/courtbook/booking-client-go/internal/model"

func Review(dto model.ReviewDTO) (model.Review, error) {
	if dto.ReviewID == 0 {
		return model.Review{}, missingID("review")
	}
	return model.Review{
		ID:        dto.ReviewID,
		CourtID:   dto.CourtID,
		AccountID: dto.AccountID,
		FullName:  dto.FullName,
		Rating:    dto.Rating,
		Comment:   dto.Comment,
		CreatedAt: parseTime(dto.CreatedAt),
	}, nil
}

func ReviewCreate(u model.Review) model.ReviewCreateDTO {
	return model.ReviewCreateDTO{
		CourtID: u.CourtID,
		Rating:  u.Rating,
		Comment: stringValue(u.Comment),
	}
}
