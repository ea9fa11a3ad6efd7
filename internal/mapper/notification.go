package mapper

import "github.com/courtbook/booking-client-go/internal/model"

func Notification(dto model.NotificationDTO) (model.Notification, error) {
	if dto.NotificationID == 0 {
		return model.Notification{}, missingID("notification")
	}
	return model.Notification{
		ID:        dto.NotificationID,
		AccountID: dto.AccountID,
		Title:     dto.Title,
		Content:   dto.Content,
		Type:      dto.Type,
		IsRead:    boolValue(dto.IsRead),
		CreatedAt: parseTime(dto.CreatedAt),
	}, nil
}
