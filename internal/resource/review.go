package resource

import (
	"context"

	"github.com/courtbook/booking-client-go/internal/envelope"
	"github.com/courtbook/booking-client-go/internal/gateway"
	"github.com/courtbook/booking-client-go/internal/mapper"
	"github.com/courtbook/booking-client-go/internal/model"
	"github.com/courtbook/booking-client-go/internal/registry"
)

type Reviews struct {
	*registry.Resource[model.ReviewDTO, model.Review]
}

func NewReviews(gw *gateway.Client, cache *registry.Cache) *Reviews {
	return &Reviews{registry.New(gw, cache, registry.Spec[model.ReviewDTO, model.Review]{
		Type:     "Review",
		Path:     "/Review",
		FromDTO:  mapper.Review,
		ID:       func(r model.Review) int64 { return r.ID },
		ToCreate: func(r model.Review) any { return mapper.ReviewCreate(r) },
	})}
}

// ForCourt lists the reviews of one court.
func (r *Reviews) ForCourt(ctx context.Context, courtID int64) (*envelope.Envelope[envelope.Collection[model.Review]], error) {
	return r.List(ctx, registry.Params{"courtId": courtID})
}
