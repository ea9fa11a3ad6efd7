package mapper

import "github.com/courtbook/booking-client-go/internal/model"

func Wallet(dto model.WalletDTO) (model.Wallet, error) {
	if dto.WalletID == 0 {
		return model.Wallet{}, missingID("wallet")
	}
	return model.Wallet{
		ID:        dto.WalletID,
		AccountID: dto.AccountID,
		Balance:   parseMoney(dto.Balance),
		UpdatedAt: parseTime(dto.UpdatedAt),
	}, nil
}

func WalletTransaction(dto model.WalletTransactionDTO) (model.WalletTransaction, error) {
	if dto.TransactionID == 0 {
		return model.WalletTransaction{}, missingID("wallet transaction")
	}
	return model.WalletTransaction{
		ID:          dto.TransactionID,
		WalletID:    dto.WalletID,
		Amount:      parseMoney(dto.Amount),
		Type:        dto.Type,
		Description: dto.Description,
		Status:      dto.Status,
		CreatedAt:   parseTime(dto.CreatedAt),
	}, nil
}
