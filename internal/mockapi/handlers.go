package mockapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/courtbook/booking-client-go/internal/model"
)

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// Courts answer in the full envelope shape with paged data.
func (s *Server) handleCourtList(w http.ResponseWriter, r *http.Request) {
	p := parsePagination(r)

	s.data.mu.Lock()
	courts := make([]model.CourtDTO, 0, len(s.data.courts))
	for _, c := range s.data.courts {
		courts = append(courts, c)
	}
	s.data.mu.Unlock()

	sort.Slice(courts, func(i, j int) bool { return courts[i].CourtID < courts[j].CourtID })
	writeEnvelope(w, http.StatusOK, paged(courts, p))
}

func (s *Server) handleCourtGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid court id")
		return
	}

	s.data.mu.Lock()
	court, found := s.data.courts[id]
	s.data.mu.Unlock()

	if !found {
		writeError(w, http.StatusNotFound, "Court not found")
		return
	}
	writeEnvelope(w, http.StatusOK, court)
}

func (s *Server) handleCourtCreate(w http.ResponseWriter, r *http.Request) {
	var dto model.CourtCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if dto.CourtName == "" {
		writeError(w, http.StatusBadRequest, "courtname is required")
		return
	}

	account := accountFrom(r.Context())

	s.data.mu.Lock()
	id := s.data.nextIDLocked()
	active := dto.IsActive
	court := model.CourtDTO{
		CourtID:      id,
		CourtName:    dto.CourtName,
		Address:      dto.Address,
		PricePerHour: dto.PricePerHour,
		OpeningHour:  dto.OpeningHour,
		ClosingHour:  dto.ClosingHour,
		OwnerID:      account.AccountID,
		IsActive:     &active,
	}
	if dto.Description != "" {
		court.Description = &dto.Description
	}
	if dto.ImageURL != "" {
		court.ImageURL = &dto.ImageURL
	}
	s.data.courts[id] = court
	s.data.mu.Unlock()

	writeEnvelope(w, http.StatusCreated, court)
}

func (s *Server) handleCourtUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid court id")
		return
	}

	var dto model.CourtCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.data.mu.Lock()
	court, found := s.data.courts[id]
	if found {
		court.CourtName = dto.CourtName
		court.Address = dto.Address
		court.PricePerHour = dto.PricePerHour
		court.OpeningHour = dto.OpeningHour
		court.ClosingHour = dto.ClosingHour
		active := dto.IsActive
		court.IsActive = &active
		s.data.courts[id] = court
	}
	s.data.mu.Unlock()

	if !found {
		writeError(w, http.StatusNotFound, "Court not found")
		return
	}
	writeEnvelope(w, http.StatusOK, court)
}

func (s *Server) handleCourtDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid court id")
		return
	}

	s.data.mu.Lock()
	_, found := s.data.courts[id]
	delete(s.data.courts, id)
	s.data.mu.Unlock()

	if !found {
		writeError(w, http.StatusNotFound, "Court not found")
		return
	}
	writeEnvelope(w, http.StatusOK, nil)
}

// Blogs answer as a bare array, envelope-less, like the production endpoint.
func (s *Server) handleBlogList(w http.ResponseWriter, r *http.Request) {
	s.data.mu.Lock()
	blogs := append([]model.BlogDTO(nil), s.data.blogs...)
	s.data.mu.Unlock()

	writeJSON(w, http.StatusOK, blogs)
}

// Packages answer as a bare paged container, also envelope-less.
func (s *Server) handlePackageList(w http.ResponseWriter, r *http.Request) {
	p := parsePagination(r)

	s.data.mu.Lock()
	packages := append([]model.PackageDTO(nil), s.data.packages...)
	s.data.mu.Unlock()

	writeJSON(w, http.StatusOK, paged(packages, p))
}

func (s *Server) handleReviewList(w http.ResponseWriter, r *http.Request) {
	courtID, _ := strconv.ParseInt(r.URL.Query().Get("courtId"), 10, 64)

	s.data.mu.Lock()
	reviews := make([]model.ReviewDTO, 0, len(s.data.reviews))
	for _, review := range s.data.reviews {
		if courtID == 0 || review.CourtID == courtID {
			reviews = append(reviews, review)
		}
	}
	s.data.mu.Unlock()

	writeEnvelope(w, http.StatusOK, reviews)
}

func (s *Server) handleBookingCreate(w http.ResponseWriter, r *http.Request) {
	var dto model.CourtBookingCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account := accountFrom(r.Context())

	s.data.mu.Lock()
	court, courtFound := s.data.courts[dto.CourtID]
	var booking model.CourtBookingDTO
	if courtFound {
		pending := "Pending"
		booking = model.CourtBookingDTO{
			BookingID:     s.data.nextIDLocked(),
			CourtID:       court.CourtID,
			CourtName:     court.CourtName,
			AccountID:     account.AccountID,
			BookingDate:   dto.BookingDate,
			StartTime:     dto.StartTime,
			EndTime:       dto.EndTime,
			TotalPrice:    dto.TotalPrice,
			PaymentStatus: &pending,
			Status:        "Confirmed",
		}
		s.data.bookings[booking.BookingID] = booking
	}
	s.data.mu.Unlock()

	if !courtFound {
		writeError(w, http.StatusBadRequest, "Unknown court")
		return
	}
	writeEnvelope(w, http.StatusCreated, booking)
}

func (s *Server) handleBookingMine(w http.ResponseWriter, r *http.Request) {
	account := accountFrom(r.Context())
	p := parsePagination(r)

	s.data.mu.Lock()
	bookings := make([]model.CourtBookingDTO, 0)
	for _, b := range s.data.bookings {
		if b.AccountID == account.AccountID {
			bookings = append(bookings, b)
		}
	}
	s.data.mu.Unlock()

	sort.Slice(bookings, func(i, j int) bool { return bookings[i].BookingID < bookings[j].BookingID })
	writeEnvelope(w, http.StatusOK, paged(bookings, p))
}

func (s *Server) handleBookingPaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var body struct {
		PaymentStatus string `json:"paymentstatus"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.PaymentStatus == "" {
		writeError(w, http.StatusBadRequest, "paymentstatus is required")
		return
	}

	s.data.mu.Lock()
	booking, found := s.data.bookings[id]
	if found {
		booking.PaymentStatus = &body.PaymentStatus
		s.data.bookings[id] = booking
	}
	s.data.mu.Unlock()

	if !found {
		writeError(w, http.StatusNotFound, "Booking not found")
		return
	}
	writeEnvelope(w, http.StatusOK, booking)
}

func (s *Server) handleNotificationMine(w http.ResponseWriter, r *http.Request) {
	account := accountFrom(r.Context())

	s.data.mu.Lock()
	notifications := make([]model.NotificationDTO, 0)
	for _, n := range s.data.notifications {
		if n.AccountID == account.AccountID {
			notifications = append(notifications, n)
		}
	}
	s.data.mu.Unlock()

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].NotificationID < notifications[j].NotificationID
	})
	writeEnvelope(w, http.StatusOK, notifications)
}

func (s *Server) handleNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid notification id")
		return
	}

	s.data.mu.Lock()
	notification, found := s.data.notifications[id]
	if found {
		read := true
		notification.IsRead = &read
		s.data.notifications[id] = notification
	}
	s.data.mu.Unlock()

	if !found {
		writeError(w, http.StatusNotFound, "Notification not found")
		return
	}
	writeEnvelope(w, http.StatusOK, nil)
}

func (s *Server) handleNotificationReadAll(w http.ResponseWriter, r *http.Request) {
	account := accountFrom(r.Context())

	s.data.mu.Lock()
	for id, n := range s.data.notifications {
		if n.AccountID == account.AccountID {
			read := true
			n.IsRead = &read
			s.data.notifications[id] = n
		}
	}
	s.data.mu.Unlock()

	writeEnvelope(w, http.StatusOK, nil)
}

func (s *Server) handleWalletMine(w http.ResponseWriter, r *http.Request) {
	account := accountFrom(r.Context())

	s.data.mu.Lock()
	wallet, found := s.data.wallets[account.AccountID]
	s.data.mu.Unlock()

	if !found {
		writeError(w, http.StatusNotFound, "Wallet not found")
		return
	}
	writeEnvelope(w, http.StatusOK, wallet)
}

func (s *Server) handleWalletDeposit(w http.ResponseWriter, r *http.Request) {
	account := accountFrom(r.Context())

	var body struct {
		Amount string `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	amount, err := strconv.ParseFloat(body.Amount, 64)
	if err != nil || amount <= 0 {
		writeError(w, http.StatusBadRequest, "amount must be a positive decimal string")
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)

	s.data.mu.Lock()
	wallet, found := s.data.wallets[account.AccountID]
	if found {
		balance, _ := strconv.ParseFloat(wallet.Balance, 64)
		wallet.Balance = fmt.Sprintf("%.2f", balance+amount)
		wallet.UpdatedAt = now
		s.data.wallets[account.AccountID] = wallet

		s.data.transactions = append(s.data.transactions, model.WalletTransactionDTO{
			TransactionID: s.data.nextIDLocked(),
			WalletID:      wallet.WalletID,
			Amount:        body.Amount,
			Type:          "Deposit",
			Status:        "Completed",
			CreatedAt:     now,
		})
	}
	s.data.mu.Unlock()

	if !found {
		writeError(w, http.StatusNotFound, "Wallet not found")
		return
	}
	writeEnvelope(w, http.StatusOK, wallet)
}

func (s *Server) handleTransactionMine(w http.ResponseWriter, r *http.Request) {
	account := accountFrom(r.Context())

	s.data.mu.Lock()
	wallet := s.data.wallets[account.AccountID]
	transactions := make([]model.WalletTransactionDTO, 0)
	for _, t := range s.data.transactions {
		if t.WalletID == wallet.WalletID {
			transactions = append(transactions, t)
		}
	}
	s.data.mu.Unlock()

	writeEnvelope(w, http.StatusOK, transactions)
}
