package test

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/jkarimi/fanaka-furniture/api"
	"github.com/jkarimi/fanaka-furniture/api/background"
	"github.com/jkarimi/fanaka-furniture/config"
	"github.com/jkarimi/fanaka-furniture/core/checkout"
	"github.com/jkarimi/fanaka-furniture/database"
	"github.com/jkarimi/fanaka-furniture/rate"
	"github.com/jmoiron/sqlx"
	"github.com/ory/dockertest/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var dbHost string

func TestMain(m *testing.M) {
	code, err := run(m)
	if err != nil {
		log.Println(err)
	}
	os.Exit(code)
}

func run(m *testing.M) (int, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return 1, fmt.Errorf("connecting to docker: %w", err)
	}

	res, err := pool.Run("postgres", "15-alpine", []string{
		"POSTGRES_USER=postgres",
		"POSTGRES_PASSWORD=postgres",
		"POSTGRES_DB=postgres",
	})
	if err != nil {
		return 1, fmt.Errorf("starting postgres container: %w", err)
	}
	defer pool.Purge(res)

	dbHost = "localhost:" + res.GetPort("5432/tcp")

	if err := pool.Retry(func() error {
		db, err := database.Open(dbCfg("postgres"))
		if err != nil {
			return err
		}
		defer db.Close()
		return db.Ping()
	}); err != nil {
		return 1, fmt.Errorf("postgres never became ready: %w", err)
	}

	return m.Run(), nil
}

func dbCfg(name string) config.DB {
	return config.DB{
		User:       "postgres",
		Password:   "postgres",
		Host:       dbHost,
		Name:       name,
		DisableTLS: true,
	}
}

// FlakyDispatcher wraps the real WhatsApp dispatcher and can be told to
// refuse the hand-off, simulating a host environment that blocks it.
type FlakyDispatcher struct {
	Fail bool
	real *checkout.WhatsApp
}

func (d *FlakyDispatcher) Dispatch(msg string) (string, error) {
	if d.Fail {
		return "", errors.New("hand-off refused")
	}
	return d.real.Dispatch(msg)
}

type TestEnv struct {
	URL        string
	Server     *httptest.Server
	DB         *sqlx.DB
	Dispatcher *FlakyDispatcher
	AdminEmail string
	AdminPass  string

	client *http.Client
}

// NewTestEnv creates a fresh database named after the test, migrates it, and
// serves the full API on an httptest server with a cookie-jar client.
func NewTestEnv(t *testing.T, dbname string) (*TestEnv, error) {
	t.Helper()

	admin, err := database.Open(dbCfg("postgres"))
	if err != nil {
		return nil, fmt.Errorf("opening admin db: %w", err)
	}
	defer admin.Close()

	if _, err := admin.Exec("CREATE DATABASE " + dbname); err != nil {
		return nil, fmt.Errorf("creating database[%s]: %w", dbname, err)
	}

	db, err := database.Open(dbCfg(dbname))
	if err != nil {
		return nil, fmt.Errorf("opening db[%s]: %w", dbname, err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrating db[%s]: %w", dbname, err)
	}

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	session := scs.New()
	session.Lifetime = time.Hour

	wa, err := checkout.NewWhatsApp("+254708921377")
	if err != nil {
		return nil, err
	}
	dispatcher := &FlakyDispatcher{real: wa}

	const adminEmail = "admin@fanaka.co.ke"
	const adminPass = "correct-horse-battery"
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	mux := api.APIMux(api.APIConfig{
		Log:        logger,
		DB:         db,
		Session:    session,
		Background: background.New(logger),
		Dispatcher: dispatcher,
		AdminCfg: config.Admin{
			Email:        adminEmail,
			PasswordHash: string(hash),
		},
		CheckoutLimiter: rate.NewLimiter(100, 100, rate.Every(time.Millisecond)),
		LoginLimiter:    rate.NewLimiter(100, 100, rate.Every(time.Millisecond)),
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	env := TestEnv{
		URL:        server.URL,
		Server:     server,
		DB:         db,
		Dispatcher: dispatcher,
		AdminEmail: adminEmail,
		AdminPass:  adminPass,
		client:     &http.Client{Jar: jar},
	}

	return &env, nil
}

func (e *TestEnv) Client() *http.Client {
	return e.client
}
