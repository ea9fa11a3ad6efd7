package mockapi

import (
	"sync"
	"time"

	"github.com/courtbook/booking-client-go/internal/model"
)

type accountRecord struct {
	model.AccountDTO
	password string
}

// store is the mock backend's in-memory state, seeded with enough data for
// every list endpoint to return something.
type store struct {
	mu            sync.Mutex
	nextID        int64
	accounts      map[string]*accountRecord // by email
	courts        map[int64]model.CourtDTO
	blogs         []model.BlogDTO
	packages      []model.PackageDTO
	reviews       []model.ReviewDTO
	bookings      map[int64]model.CourtBookingDTO
	notifications map[int64]model.NotificationDTO
	wallets       map[int64]model.WalletDTO // by account id
	transactions  []model.WalletTransactionDTO
}

func newStore() *store {
	now := time.Now().UTC().Format(time.RFC3339)
	active := true
	rating := 4.5
	desc := "Indoor court with wooden flooring"

	s := &store{
		nextID:        100,
		accounts:      make(map[string]*accountRecord),
		courts:        make(map[int64]model.CourtDTO),
		bookings:      make(map[int64]model.CourtBookingDTO),
		notifications: make(map[int64]model.NotificationDTO),
		wallets:       make(map[int64]model.WalletDTO),
	}

	s.accounts["demo@courtbook.local"] = &accountRecord{
		AccountDTO: model.AccountDTO{
			AccountID:   1,
			FullName:    "Demo Player",
			Email:       "demo@courtbook.local",
			PhoneNumber: "0900000001",
			Role:        "Customer",
			IsActive:    &active,
			CreatedAt:   now,
		},
		password: "demo1234",
	}

	s.courts[1] = model.CourtDTO{
		CourtID:      1,
		CourtName:    "Center Court",
		Address:      "12 Shuttle Lane",
		Description:  &desc,
		PricePerHour: 15,
		OpeningHour:  "06:00",
		ClosingHour:  "22:00",
		OwnerID:      2,
		IsActive:     &active,
		Rating:       &rating,
	}
	s.courts[2] = model.CourtDTO{
		CourtID:      2,
		CourtName:    "Court B",
		Address:      "34 Net Street",
		PricePerHour: 10,
		OpeningHour:  "07:00",
		ClosingHour:  "21:00",
		OwnerID:      2,
		IsActive:     &active,
	}

	s.blogs = []model.BlogDTO{
		{BlogID: 1, Title: "Grip basics", Content: "Hold it loose.", AuthorID: 2, AuthorName: "Coach Lin", PublishedAt: now, IsActive: &active},
		{BlogID: 2, Title: "Footwork drills", Content: "Six corners.", AuthorID: 2, AuthorName: "Coach Lin", PublishedAt: now, IsActive: &active},
	}

	s.packages = []model.PackageDTO{
		{PackageID: 1, PackageName: "Starter", Price: 49, DurationDays: 30, SessionCount: 5, IsActive: &active},
		{PackageID: 2, PackageName: "Regular", Price: 89, DurationDays: 30, SessionCount: 10, IsActive: &active},
	}

	s.reviews = []model.ReviewDTO{
		{ReviewID: 1, CourtID: 1, AccountID: 1, FullName: "Demo Player", Rating: 5, CreatedAt: now},
	}

	unread := false
	s.notifications[1] = model.NotificationDTO{
		NotificationID: 1, AccountID: 1,
		Title: "Welcome", Content: "Your account is ready.", Type: "System",
		IsRead: &unread, CreatedAt: now,
	}

	s.wallets[1] = model.WalletDTO{WalletID: 1, AccountID: 1, Balance: "50.00", UpdatedAt: now}

	return s
}

func (s *store) nextIDLocked() int64 {
	s.nextID++
	return s.nextID
}
