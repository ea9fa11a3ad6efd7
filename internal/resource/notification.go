package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/courtbook/booking-client-go/internal/envelope"
	"github.com/courtbook/booking-client-go/internal/gateway"
	"github.com/courtbook/booking-client-go/internal/mapper"
	"github.com/courtbook/booking-client-go/internal/model"
	"github.com/courtbook/booking-client-go/internal/registry"
)

type Notifications struct {
	*registry.Resource[model.NotificationDTO, model.Notification]
}

func NewNotifications(gw *gateway.Client, cache *registry.Cache) *Notifications {
	return &Notifications{registry.New(gw, cache, registry.Spec[model.NotificationDTO, model.Notification]{
		Type:    "Notification",
		Path:    "/Notification",
		FromDTO: mapper.Notification,
		ID:      func(n model.Notification) int64 { return n.ID },
		HasMine: true,
	})}
}

// MarkRead acknowledges one notification.
func (n *Notifications) MarkRead(ctx context.Context, id int64) (*envelope.Envelope[json.RawMessage], error) {
	return n.MutateRaw(ctx, http.MethodPut,
		fmt.Sprintf("%s/%d/read", n.Path(), id), nil,
		registry.ItemTag(n.Type(), id),
		registry.MyListTag(n.Type()),
	)
}

// MarkAllRead acknowledges every notification of the caller.
func (n *Notifications) MarkAllRead(ctx context.Context) (*envelope.Envelope[json.RawMessage], error) {
	return n.MutateRaw(ctx, http.MethodPut, n.Path()+"/my/read-all", nil,
		registry.MyListTag(n.Type()),
	)
}
