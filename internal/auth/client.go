// Package auth drives the login/logout flows that create and destroy the
// client session.
package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/courtbook/booking-client-go/internal/envelope"
	"github.com/courtbook/booking-client-go/internal/gateway"
	"github.com/courtbook/booking-client-go/internal/mapper"
	"github.com/courtbook/booking-client-go/internal/model"
	"github.com/courtbook/booking-client-go/internal/session"
)

type Client struct {
	gw    *gateway.Client
	store *session.Store
}

func New(gw *gateway.Client, store *session.Store) *Client {
	return &Client{gw: gw, store: store}
}

type Credentials struct {
	Email    string
	Password string
	Remember bool
}

type RegisterParams struct {
	FullName    string
	Email       string
	PhoneNumber string
	Password    string
}

// loginDTO is the wire shape of a successful login.
type loginDTO struct {
	AccessToken string           `json:"accesstoken"`
	Account     model.AccountDTO `json:"account"`
}

// Login authenticates and commits the session atomically: token, profile and
// remember land in the store in one transition.
func (c *Client) Login(ctx context.Context, creds Credentials) (*model.Account, error) {
	raw, err := c.gw.Do(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   "/Auth/login",
		Body: map[string]string{
			"email":    creds.Email,
			"password": creds.Password,
		},
	})
	if err != nil {
		return nil, err
	}

	dto, err := envelope.DecodeOne[loginDTO](raw)
	if err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	if dto.AccessToken == "" {
		return nil, fmt.Errorf("login response carried no access token")
	}

	account, err := mapper.Account(dto.Account)
	if err != nil {
		return nil, err
	}

	profile := session.Profile{
		FullName: account.FullName,
		Email:    account.Email,
		Role:     account.Role,
	}
	if err := c.store.Login(ctx, dto.AccessToken, profile, creds.Remember); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	log.Info().Str("email", account.Email).Bool("remember", creds.Remember).Msg("auth: logged in")
	return &account, nil
}

// Register creates an account. It does not log in; callers chain Login.
func (c *Client) Register(ctx context.Context, params RegisterParams) (*model.Account, error) {
	raw, err := c.gw.Do(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   "/Auth/register",
		Body: map[string]string{
			"fullname":    params.FullName,
			"email":       params.Email,
			"phonenumber": params.PhoneNumber,
			"password":    params.Password,
		},
	})
	if err != nil {
		return nil, err
	}

	dto, err := envelope.DecodeOne[model.AccountDTO](raw)
	if err != nil {
		return nil, fmt.Errorf("decode register response: %w", err)
	}
	account, err := mapper.Account(dto)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Logout tears the session down locally and tells the backend best-effort;
// a failed revocation must not keep the client logged in.
func (c *Client) Logout(ctx context.Context) {
	if c.store.Token() != "" {
		if _, err := c.gw.Do(ctx, gateway.Request{Method: http.MethodPost, Path: "/Auth/logout"}); err != nil {
			log.Warn().Err(err).Msg("auth: server-side logout failed")
		}
	}
	c.store.Logout(ctx)
}
