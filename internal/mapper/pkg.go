package mapper

import "github.com/courtbook/booking-client-go/internal/model"

func Package(dto model.PackageDTO) (model.Package, error) {
	if dto.PackageID == 0 {
		return model.Package{}, missingID("package")
	}
	return model.Package{
		ID:           dto.PackageID,
		Name:         dto.PackageName,
		Description:  dto.Description,
		Price:        dto.Price,
		DurationDays: dto.DurationDays,
		SessionCount: dto.SessionCount,
		IsActive:     boolValue(dto.IsActive),
	}, nil
}

func PackageCreate(u model.Package) model.PackageCreateDTO {
	return model.PackageCreateDTO{
		PackageName:  u.Name,
		Description:  stringValue(u.Description),
		Price:        u.Price,
		DurationDays: u.DurationDays,
		SessionCount: u.SessionCount,
		IsActive:     u.IsActive,
	}
}
