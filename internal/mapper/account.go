package mapper

import "github.com/courtbook/booking-client-go/internal/model"

func Account(dto model.AccountDTO) (model.Account, error) {
	if dto.AccountID == 0 {
		return model.Account{}, missingID("account")
	}
	return model.Account{
		ID:          dto.AccountID,
		FullName:    dto.FullName,
		Email:       dto.Email,
		PhoneNumber: dto.PhoneNumber,
		Role:        dto.Role,
		IsActive:    boolValue(dto.IsActive),
		CreatedAt:   parseTime(dto.CreatedAt),
	}, nil
}

func AccountUpdate(u model.Account) model.AccountUpdateDTO {
	return model.AccountUpdateDTO{
		FullName:    u.FullName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		IsActive:    u.IsActive,
	}
}
