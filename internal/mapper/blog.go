package mapper

import "github.com/courtbook/booking-client-go/internal/model"

func Blog(dto model.BlogDTO) (model.Blog, error) {
	if dto.BlogID == 0 {
		return model.Blog{}, missingID("blog")
	}
	return model.Blog{
		ID:           dto.BlogID,
		Title:        dto.Title,
		Content:      dto.Content,
		ThumbnailURL: dto.ThumbnailURL,
		AuthorID:     dto.AuthorID,
		AuthorName:   dto.AuthorName,
		PublishedAt:  parseTime(dto.PublishedAt),
		IsActive:     boolValue(dto.IsActive),
	}, nil
}

func BlogCreate(u model.Blog) model.BlogCreateDTO {
	return model.BlogCreateDTO{
		Title:        u.Title,
		Content:      u.Content,
		ThumbnailURL: stringValue(u.ThumbnailURL),
		IsActive:     u.IsActive,
	}
}
