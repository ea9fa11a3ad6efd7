package resource

import (
	"github.com/courtbook/booking-client-go/internal/gateway"
	"github.com/courtbook/booking-client-go/internal/mapper"
	"github.com/courtbook/booking-client-go/internal/model"
	"github.com/courtbook/booking-client-go/internal/registry"
)

type Accounts struct {
	*registry.Resource[model.AccountDTO, model.Account]
}

func NewAccounts(gw *gateway.Client, cache *registry.Cache) *Accounts {
	return &Accounts{registry.New(gw, cache, registry.Spec[model.AccountDTO, model.Account]{
		Type:     "Account",
		Path:     "/Account",
		FromDTO:  mapper.Account,
		ID:       func(a model.Account) int64 { return a.ID },
		ToUpdate: func(a model.Account) any { return mapper.AccountUpdate(a) },
	})}
}
