package resource

import (
	"context"
	"fmt"
	"net/http"

	"github.com/courtbook/booking-client-go/internal/envelope"
	"github.com/courtbook/booking-client-go/internal/gateway"
	"github.com/courtbook/booking-client-go/internal/mapper"
	"github.com/courtbook/booking-client-go/internal/model"
	"github.com/courtbook/booking-client-go/internal/registry"
)

type Bookings struct {
	*registry.Resource[model.CourtBookingDTO, model.CourtBooking]
}

func NewBookings(gw *gateway.Client, cache *registry.Cache) *Bookings {
	return &Bookings{registry.New(gw, cache, registry.Spec[model.CourtBookingDTO, model.CourtBooking]{
		Type:     "CourtBooking",
		Path:     "/CourtBooking",
		FromDTO:  mapper.CourtBooking,
		ID:       func(b model.CourtBooking) int64 { return b.ID },
		ToCreate: func(b model.CourtBooking) any { return mapper.CourtBookingCreate(b) },
		ToUpdate: func(b model.CourtBooking) any { return mapper.CourtBookingCreate(b) },
		HasMine:  true,
	})}
}

// UpdatePaymentStatus flips a booking's payment state and invalidates the
// booking plus both collection views.
func (b *Bookings) UpdatePaymentStatus(ctx context.Context, id int64, status string) (*envelope.Envelope[model.CourtBooking], error) {
	return b.Mutate(ctx, http.MethodPut,
		fmt.Sprintf("%s/%d/payment-status", b.Path(), id),
		map[string]string{"paymentstatus": status},
		registry.ItemTag(b.Type(), id),
		registry.ListTag(b.Type()),
		registry.MyListTag(b.Type()),
	)
}
