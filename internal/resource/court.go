package resource

import (
	"context"

	"github.com/courtbook/booking-client-go/internal/envelope"
	"github.com/courtbook/booking-client-go/internal/gateway"
	"github.com/courtbook/booking-client-go/internal/mapper"
	"github.com/courtbook/booking-client-go/internal/model"
	"github.com/courtbook/booking-client-go/internal/registry"
)

type Courts struct {
	*registry.Resource[model.CourtDTO, model.Court]
}

func NewCourts(gw *gateway.Client, cache *registry.Cache) *Courts {
	return &Courts{registry.New(gw, cache, registry.Spec[model.CourtDTO, model.Court]{
		Type:     "Court",
		Path:     "/Court",
		FromDTO:  mapper.Court,
		ID:       func(c model.Court) int64 { return c.ID },
		ToCreate: func(c model.Court) any { return mapper.CourtCreate(c) },
		ToUpdate: func(c model.Court) any { return mapper.CourtCreate(c) },
	})}
}

// CreateWithImage creates a court with an image attachment. Multipart is
// declared here, not inferred from the payload.
func (c *Courts) CreateWithImage(ctx context.Context, court model.Court, image gateway.File) (*envelope.Envelope[model.Court], error) {
	dto := mapper.CourtCreate(court)
	return c.CreateMultipart(ctx, &gateway.MultipartBody{
		Fields: map[string]string{
			"courtname":    dto.CourtName,
			"address":      dto.Address,
			"description":  dto.Description,
			"openinghour":  dto.OpeningHour,
			"closinghour":  dto.ClosingHour,
			"priceperhour": formatMoney(dto.PricePerHour),
		},
		Files: []gateway.File{image},
	})
}
