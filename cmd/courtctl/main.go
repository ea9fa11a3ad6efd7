// courtctl is a small terminal front end for the booking client. It wires the
// full stack (config, storage tiers, session store, gateway, resource
// registry, guard) the way an embedding application would, and exposes a few
// commands to exercise it against a running API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/courtbook/booking-client-go/internal/auth"
	"github.com/courtbook/booking-client-go/internal/config"
	"github.com/courtbook/booking-client-go/internal/gateway"
	"github.com/courtbook/booking-client-go/internal/guard"
	"github.com/courtbook/booking-client-go/internal/registry"
	"github.com/courtbook/booking-client-go/internal/resource"
	"github.com/courtbook/booking-client-go/internal/session"
)

type app struct {
	cfg      *config.Config
	store    *session.Store
	registry *resource.Registry
	auth     *auth.Client
	guard    *guard.Guard
	close    func()
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	setLogLevel(cfg.LogLevel)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	a, err := build(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build client")
	}
	defer a.close()

	ctx := context.Background()
	if err := a.store.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("session restore failed, starting unauthenticated")
	}

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

// build assembles the stack. The durable tier prefers Redis, then the state
// directory, then falls back to a second in-memory tier so the store always
// has two tiers to work with.
func build(cfg *config.Config) (*app, error) {
	var (
		durable session.Tier
		watcher session.Watcher
		closeFn = func() {}
	)
	switch {
	case cfg.RedisURL != "":
		tier, err := session.NewRedisTier(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		durable = tier
		watcher = tier
		closeFn = func() { _ = tier.Close() }
	case cfg.StateDir != "":
		tier, err := session.NewFileTier(cfg.StateDir)
		if err != nil {
			return nil, err
		}
		durable = tier
	default:
		durable = session.NewMemoryTier()
	}

	store := session.NewStore(durable, session.NewMemoryTier(), session.Options{
		PersistToken: cfg.PersistToken,
		MaxTokenTTL:  cfg.MaxTokenTTL(),
	})

	gw := gateway.New(cfg.APIBaseURL, store, gateway.WithOnUnauthorized(func(ctx context.Context) {
		store.Logout(ctx)
	}))

	reg := resource.NewRegistry(gw)

	var changes <-chan string
	if watcher != nil {
		changes = watcher.Watch(context.Background())
	}
	g := guard.New(store, guard.Options{
		PollInterval:  cfg.GuardPollInterval(),
		ExpiryMargin:  cfg.GuardExpiryMargin(),
		FallbackRoute: cfg.FallbackRoute,
		Changes:       changes,
		ResetCache:    reg.Reset,
		OnTeardown: func(route string) {
			fmt.Printf("session ended, log in again (%s)\n", route)
		},
	})

	return &app{
		cfg:      cfg,
		store:    store,
		registry: reg,
		auth:     auth.New(gw, store),
		guard:    g,
		close:    closeFn,
	}, nil
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.cmdLogin(ctx, args)
	case "logout":
		a.auth.Logout(ctx)
		fmt.Println("logged out")
		return nil
	case "whoami":
		return a.cmdWhoami()
	case "courts":
		return a.cmdCourts(ctx)
	case "bookings":
		return a.cmdBookings(ctx)
	case "wallet":
		return a.cmdWallet(ctx)
	case "watch":
		return a.cmdWatch(ctx)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	remember := fs.Bool("remember", false, "keep the session across restarts")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("login requires -email and -password")
	}

	account, err := a.auth.Login(ctx, auth.Credentials{
		Email:    *email,
		Password: *password,
		Remember: *remember,
	})
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s (%s)\n", account.FullName, account.Role)
	return nil
}

func (a *app) cmdWhoami() error {
	user := a.store.User()
	if user == nil {
		fmt.Println("not logged in")
		return nil
	}
	fmt.Printf("%s <%s> role=%s remember=%v\n", user.FullName, user.Email, user.Role, a.store.Remember())
	return nil
}

func (a *app) cmdCourts(ctx context.Context) error {
	courts, err := a.registry.Courts.List(ctx, nil)
	if err != nil {
		return err
	}
	for _, c := range courts.Data.Items {
		fmt.Printf("#%d %-24s %s (%.0f/hour)\n", c.ID, c.Name, c.Address, c.PricePerHour)
	}
	fmt.Printf("%d courts\n", courts.Data.Total)
	return nil
}

func (a *app) cmdBookings(ctx context.Context) error {
	bookings, err := a.registry.Bookings.Mine(ctx, registry.Params{"page": 1})
	if err != nil {
		return err
	}
	for _, b := range bookings.Data.Items {
		date := ""
		if b.BookingDate != nil {
			date = b.BookingDate.Format("2006-01-02")
		}
		fmt.Printf("#%d %s %s-%s on %s [%s]\n", b.ID, b.CourtName, b.StartTime, b.EndTime, date, b.Status)
	}
	fmt.Printf("%d bookings\n", bookings.Data.Total)
	return nil
}

func (a *app) cmdWallet(ctx context.Context) error {
	wallet, err := a.registry.Wallets.My(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("wallet #%d balance %.2f\n", wallet.Data.ID, wallet.Data.Balance)
	return nil
}

// cmdWatch runs the guard in the foreground until interrupted, so cross-process
// logout and pre-expiry teardown can be observed.
func (a *app) cmdWatch(ctx context.Context) error {
	a.guard.Start()
	defer a.guard.Stop()

	fmt.Println("watching session, Ctrl-C to stop")
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: courtctl <command> [flags]

commands:
  login -email X -password Y [-remember]
  logout
  whoami
  courts
  bookings
  wallet
  watch`)
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
