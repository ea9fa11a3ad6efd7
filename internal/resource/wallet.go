package resource

import (
	"context"
	"net/http"

	"github.com/courtbook/booking-client-go/internal/envelope"
	"github.com/courtbook/booking-client-go/internal/gateway"
	"github.com/courtbook/booking-client-go/internal/mapper"
	"github.com/courtbook/booking-client-go/internal/model"
	"github.com/courtbook/booking-client-go/internal/registry"
)

type Wallets struct {
	*registry.Resource[model.WalletDTO, model.Wallet]
	cache *registry.Cache
}

func NewWallets(gw *gateway.Client, cache *registry.Cache) *Wallets {
	return &Wallets{
		Resource: registry.New(gw, cache, registry.Spec[model.WalletDTO, model.Wallet]{
			Type:    "Wallet",
			Path:    "/Wallet",
			FromDTO: mapper.Wallet,
			ID:      func(w model.Wallet) int64 { return w.ID },
			HasMine: true,
		}),
		cache: cache,
	}
}

// My fetches the caller's wallet, cached under the MY_LIST sentinel.
func (w *Wallets) My(ctx context.Context) (*envelope.Envelope[model.Wallet], error) {
	return w.FetchOne(ctx, w.Path()+"/my", w.Type()+":mine", registry.MyListTag(w.Type()))
}

// Deposit credits the caller's wallet. The balance and the transaction
// history depend on each other, so both go stale.
func (w *Wallets) Deposit(ctx context.Context, amount float64) (*envelope.Envelope[model.Wallet], error) {
	env, err := w.Mutate(ctx, http.MethodPost, w.Path()+"/deposit",
		map[string]string{"amount": formatMoney(amount)},
		registry.MyListTag(w.Type()),
	)
	if err != nil {
		return nil, err
	}
	w.cache.Invalidate(registry.MyListTag("WalletTransaction"), registry.ListTag("WalletTransaction"))
	return env, nil
}

type WalletTransactions struct {
	*registry.Resource[model.WalletTransactionDTO, model.WalletTransaction]
}

func NewWalletTransactions(gw *gateway.Client, cache *registry.Cache) *WalletTransactions {
	return &WalletTransactions{registry.New(gw, cache, registry.Spec[model.WalletTransactionDTO, model.WalletTransaction]{
		Type:    "WalletTransaction",
		Path:    "/WalletTransaction",
		FromDTO: mapper.WalletTransaction,
		ID:      func(t model.WalletTransaction) int64 { return t.ID },
		HasMine: true,
	})}
}
