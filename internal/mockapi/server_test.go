package mockapi_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtbook/booking-client-go/internal/apierr"
	"github.com/courtbook/booking-client-go/internal/auth"
	"github.com/courtbook/booking-client-go/internal/gateway"
	"github.com/courtbook/booking-client-go/internal/mockapi"
	"github.com/courtbook/booking-client-go/internal/model"
	"github.com/courtbook/booking-client-go/internal/resource"
	"github.com/courtbook/booking-client-go/internal/session"
)

// stack is the full client wired against one mock API instance, the way an
// embedding application assembles it.
type stack struct {
	store    *session.Store
	registry *resource.Registry
	auth     *auth.Client
}

func newStack(t *testing.T) *stack {
	t.Helper()

	api := mockapi.NewServer(mockapi.Options{
		JWTSecret:       "test-secret",
		TokenTTL:        time.Hour,
		RateLimitPerMin: 6000,
	})
	server := httptest.NewServer(api.Handler())
	t.Cleanup(server.Close)

	store := session.NewStore(session.NewMemoryTier(), session.NewMemoryTier(), session.Options{
		PersistToken: true,
		MaxTokenTTL:  24 * time.Hour,
	})
	gw := gateway.New(server.URL+"/api", store, gateway.WithOnUnauthorized(func(ctx context.Context) {
		store.Logout(ctx)
	}))

	return &stack{
		store:    store,
		registry: resource.NewRegistry(gw),
		auth:     auth.New(gw, store),
	}
}

func login(t *testing.T, s *stack) {
	t.Helper()
	_, err := s.auth.Login(context.Background(), auth.Credentials{
		Email:    "demo@courtbook.local",
		Password: "demo1234",
		Remember: true,
	})
	require.NoError(t, err)
}

func TestAuthFlow(t *testing.T) {
	t.Run("login populates the session", func(t *testing.T) {
		s := newStack(t)

		account, err := s.auth.Login(context.Background(), auth.Credentials{
			Email:    "demo@courtbook.local",
			Password: "demo1234",
			Remember: true,
		})
		require.NoError(t, err)

		assert.Equal(t, "Demo Player", account.FullName)
		assert.NotEmpty(t, s.store.Token())
		require.NotNil(t, s.store.User())
		assert.Equal(t, "Customer", s.store.User().Role)
		assert.True(t, s.store.Remember())
	})

	t.Run("wrong password is an unauthorized error", func(t *testing.T) {
		s := newStack(t)

		_, err := s.auth.Login(context.Background(), auth.Credentials{
			Email:    "demo@courtbook.local",
			Password: "wrong",
		})

		assert.True(t, apierr.IsUnauthorized(err))
		assert.Empty(t, s.store.Token())
	})

	t.Run("register then login", func(t *testing.T) {
		s := newStack(t)
		ctx := context.Background()

		account, err := s.auth.Register(ctx, auth.RegisterParams{
			FullName:    "New Player",
			Email:       "new@courtbook.local",
			PhoneNumber: "0900000002",
			Password:    "secret99",
		})
		require.NoError(t, err)
		assert.Equal(t, "Customer", account.Role)

		_, err = s.auth.Login(ctx, auth.Credentials{Email: "new@courtbook.local", Password: "secret99"})
		require.NoError(t, err)
	})

	t.Run("duplicate registration conflicts", func(t *testing.T) {
		s := newStack(t)

		_, err := s.auth.Register(context.Background(), auth.RegisterParams{
			Email:    "demo@courtbook.local",
			Password: "whatever",
		})

		apiErr, ok := apierr.As(err)
		require.True(t, ok)
		assert.Equal(t, 409, apiErr.StatusCode)
	})

	t.Run("logout clears the session", func(t *testing.T) {
		s := newStack(t)
		login(t, s)

		s.auth.Logout(context.Background())

		assert.Empty(t, s.store.Token())
		assert.Nil(t, s.store.User())
	})

	t.Run("invalid token tears the session down through the gateway hook", func(t *testing.T) {
		s := newStack(t)
		login(t, s)
		require.NoError(t, s.store.SetAccessToken(context.Background(), "Bearer-garbage"))

		_, err := s.registry.Wallets.My(context.Background())

		assert.True(t, apierr.IsUnauthorized(err))
		assert.Empty(t, s.store.Token())
		assert.Nil(t, s.store.User())
	})
}

func TestResponseShapeNormalization(t *testing.T) {
	t.Run("courts arrive enveloped and paged", func(t *testing.T) {
		s := newStack(t)

		env, err := s.registry.Courts.List(context.Background(), nil)
		require.NoError(t, err)

		assert.Equal(t, 200, env.StatusCode)
		assert.True(t, env.Data.Paged)
		assert.Equal(t, 2, env.Data.Total)
		require.Len(t, env.Data.Items, 2)
		assert.Equal(t, "Center Court", env.Data.Items[0].Name)
	})

	t.Run("blogs arrive as a bare array", func(t *testing.T) {
		s := newStack(t)

		env, err := s.registry.Blogs.List(context.Background(), nil)
		require.NoError(t, err)

		assert.False(t, env.Data.Paged)
		assert.Equal(t, 2, env.Data.Total)
		assert.Equal(t, "Grip basics", env.Data.Items[0].Title)
	})

	t.Run("packages arrive as a bare paged container", func(t *testing.T) {
		s := newStack(t)

		env, err := s.registry.Packages.List(context.Background(), nil)
		require.NoError(t, err)

		assert.True(t, env.Data.Paged)
		assert.Equal(t, 2, env.Data.Total)
		assert.Equal(t, "Starter", env.Data.Items[0].Name)
	})

	t.Run("single court get maps optionals", func(t *testing.T) {
		s := newStack(t)

		env, err := s.registry.Courts.Get(context.Background(), 2)
		require.NoError(t, err)

		assert.Equal(t, "Court B", env.Data.Name)
		assert.Nil(t, env.Data.Description)
		assert.Nil(t, env.Data.Rating)
		assert.True(t, env.Data.IsActive)
	})
}

func TestBookingFlow(t *testing.T) {
	t.Run("create booking then see it in my bookings", func(t *testing.T) {
		s := newStack(t)
		login(t, s)
		ctx := context.Background()

		date := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
		created, err := s.registry.Bookings.Create(ctx, model.CourtBooking{
			CourtID:     1,
			BookingDate: &date,
			StartTime:   "18:00",
			EndTime:     "20:00",
			TotalPrice:  30,
		})
		require.NoError(t, err)
		assert.Equal(t, "Center Court", created.Data.CourtName)
		assert.Equal(t, "Confirmed", created.Data.Status)

		mine, err := s.registry.Bookings.Mine(ctx, nil)
		require.NoError(t, err)
		require.Len(t, mine.Data.Items, 1)
		assert.Equal(t, created.Data.ID, mine.Data.Items[0].ID)
	})

	t.Run("payment status update refreshes my bookings", func(t *testing.T) {
		s := newStack(t)
		login(t, s)
		ctx := context.Background()

		created, err := s.registry.Bookings.Create(ctx, model.CourtBooking{CourtID: 1, StartTime: "18:00", EndTime: "19:00", TotalPrice: 15})
		require.NoError(t, err)

		// Prime the cached view, then mutate and read it again.
		_, err = s.registry.Bookings.Mine(ctx, nil)
		require.NoError(t, err)

		updated, err := s.registry.Bookings.UpdatePaymentStatus(ctx, created.Data.ID, "Paid")
		require.NoError(t, err)
		require.NotNil(t, updated.Data.PaymentStatus)
		assert.Equal(t, "Paid", *updated.Data.PaymentStatus)

		mine, err := s.registry.Bookings.Mine(ctx, nil)
		require.NoError(t, err)
		require.Len(t, mine.Data.Items, 1)
		require.NotNil(t, mine.Data.Items[0].PaymentStatus)
		assert.Equal(t, "Paid", *mine.Data.Items[0].PaymentStatus)
	})

	t.Run("booking an unknown court fails", func(t *testing.T) {
		s := newStack(t)
		login(t, s)

		_, err := s.registry.Bookings.Create(context.Background(), model.CourtBooking{CourtID: 999})

		apiErr, ok := apierr.As(err)
		require.True(t, ok)
		assert.Equal(t, apierr.KindAPI, apiErr.Kind)
	})
}

func TestNotificationFlow(t *testing.T) {
	t.Run("mark all read refreshes the unread state", func(t *testing.T) {
		s := newStack(t)
		login(t, s)
		ctx := context.Background()

		mine, err := s.registry.Notifications.Mine(ctx, nil)
		require.NoError(t, err)
		require.Len(t, mine.Data.Items, 1)
		assert.False(t, mine.Data.Items[0].IsRead)

		_, err = s.registry.Notifications.MarkAllRead(ctx)
		require.NoError(t, err)

		mine, err = s.registry.Notifications.Mine(ctx, nil)
		require.NoError(t, err)
		require.Len(t, mine.Data.Items, 1)
		assert.True(t, mine.Data.Items[0].IsRead)
	})
}

func TestWalletFlow(t *testing.T) {
	t.Run("deposit updates balance and transaction history", func(t *testing.T) {
		s := newStack(t)
		login(t, s)
		ctx := context.Background()

		wallet, err := s.registry.Wallets.My(ctx)
		require.NoError(t, err)
		assert.Equal(t, 50.0, wallet.Data.Balance)

		// Prime the history so the cross-resource invalidation is observable.
		history, err := s.registry.Transactions.Mine(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, history.Data.Items)

		deposited, err := s.registry.Wallets.Deposit(ctx, 25)
		require.NoError(t, err)
		assert.Equal(t, 75.0, deposited.Data.Balance)

		history, err = s.registry.Transactions.Mine(ctx, nil)
		require.NoError(t, err)
		require.Len(t, history.Data.Items, 1)
		assert.Equal(t, 25.0, history.Data.Items[0].Amount)
		assert.Equal(t, "Deposit", history.Data.Items[0].Type)
	})

	t.Run("wallet requires authentication", func(t *testing.T) {
		s := newStack(t)

		_, err := s.registry.Wallets.My(context.Background())

		assert.True(t, apierr.IsUnauthorized(err))
	})
}
