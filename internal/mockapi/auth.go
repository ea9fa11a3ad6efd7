package mockapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/courtbook/booking-client-go/internal/model"
)

type contextKey string

const accountContextKey contextKey = "account"

func accountFrom(ctx context.Context) *model.AccountDTO {
	if account, ok := ctx.Value(accountContextKey).(*model.AccountDTO); ok {
		return account
	}
	return nil
}

func (s *Server) issueToken(accountID int64, email string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   accountID,
		"email": email,
		"exp":   now.Add(s.tokenTTL).Unix(),
		"iat":   now.Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "Missing authentication token")
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.secret, nil
		})
		if err != nil || !token.Valid {
			log.Warn().Msg("mockapi: invalid token attempt")
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		email, _ := claims["email"].(string)

		s.data.mu.Lock()
		record := s.data.accounts[email]
		s.data.mu.Unlock()
		if record == nil {
			writeError(w, http.StatusUnauthorized, "Unknown account")
			return
		}

		account := record.AccountDTO
		ctx := context.WithValue(r.Context(), accountContextKey, &account)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.data.mu.Lock()
	record := s.data.accounts[body.Email]
	s.data.mu.Unlock()

	if record == nil || record.password != body.Password {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := s.issueToken(record.AccountID, record.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	writeEnvelope(w, http.StatusOK, map[string]any{
		"accesstoken": token,
		"account":     record.AccountDTO,
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FullName    string `json:"fullname"`
		Email       string `json:"email"`
		PhoneNumber string `json:"phonenumber"`
		Password    string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Email == "" || body.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	if s.data.accounts[body.Email] != nil {
		writeError(w, http.StatusConflict, "Email already registered")
		return
	}

	active := true
	record := &accountRecord{
		AccountDTO: model.AccountDTO{
			AccountID:   s.data.nextIDLocked(),
			FullName:    body.FullName,
			Email:       body.Email,
			PhoneNumber: body.PhoneNumber,
			Role:        "Customer",
			IsActive:    &active,
			CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		},
		password: body.Password,
	}
	s.data.accounts[body.Email] = record
	s.data.wallets[record.AccountID] = model.WalletDTO{
		WalletID:  s.data.nextIDLocked(),
		AccountID: record.AccountID,
		Balance:   "0.00",
		UpdatedAt: record.CreatedAt,
	}

	writeEnvelope(w, http.StatusCreated, record.AccountDTO)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	// Tokens are stateless here; logout is client-side.
	writeEnvelope(w, http.StatusOK, nil)
}
