// Package resource binds each API resource to the generic registry: paths,
// tag types, mappers, and resource-specific sub-path operations.
package resource

import (
	"github.com/courtbook/booking-client-go/internal/gateway"
	"github.com/courtbook/booking-client-go/internal/registry"
)

// Registry aggregates every resource client over one shared cache, so tag
// invalidation crosses resource boundaries (a wallet deposit invalidates the
// transaction history).
type Registry struct {
	Cache *registry.Cache

	Accounts      *Accounts
	Blogs         *Blogs
	Courts        *Courts
	Bookings      *Bookings
	Packages      *Packages
	PlaymatePosts *PlaymatePosts
	PlaymateJoins *PlaymateJoins
	Notifications *Notifications
	Wallets       *Wallets
	Transactions  *WalletTransactions
	Reviews       *Reviews
}

func NewRegistry(gw *gateway.Client) *Registry {
	cache := registry.NewCache()
	return &Registry{
		Cache:         cache,
		Accounts:      NewAccounts(gw, cache),
		Blogs:         NewBlogs(gw, cache),
		Courts:        NewCourts(gw, cache),
		Bookings:      NewBookings(gw, cache),
		Packages:      NewPackages(gw, cache),
		PlaymatePosts: NewPlaymatePosts(gw, cache),
		PlaymateJoins: NewPlaymateJoins(gw, cache),
		Notifications: NewNotifications(gw, cache),
		Wallets:       NewWallets(gw, cache),
		Transactions:  NewWalletTransactions(gw, cache),
		Reviews:       NewReviews(gw, cache),
	}
}

// Reset discards every cached query result. Called on session teardown.
func (r *Registry) Reset() {
	r.Cache.Reset()
}
