package store

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	_ "modernc.org/sqlite" // registers the pure Go "sqlite" database/sql driver
)

type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverMySQL    Driver = "mysql"
	DriverSQLite   Driver = "sqlite"
)

func ParseDriver(s string) (Driver, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "postgres", "postgresql":
		return DriverPostgres, nil
	case "mysql", "":
		return DriverMySQL, nil
	case "sqlite", "sqlite3":
		return DriverSQLite, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", s)
	}
}

// Settings are the externally supplied store credentials. For SQLite,
// Database is the path of the database file.
type Settings struct {
	Driver           Driver
	Host             string
	Port             string
	User             string
	Password         string
	Database         string
	SSLMode          string
	StatementTimeout time.Duration
}

type (
	// ConnectionProvider opens a fresh connection for every operation. There is
	// no pooling across calls: each connection is closed by the caller.
	ConnectionProvider interface {
		Open(ctx context.Context) (*gorm.DB, error)
		Close(db *gorm.DB)
		TestConnection(ctx context.Context) error
		Driver() Driver
		StatementTimeout() time.Duration
	}

	connectionProvider struct {
		settings Settings
		logger   zerolog.Logger
	}
)

func NewConnectionProvider(settings Settings, logger zerolog.Logger) ConnectionProvider {
	return &connectionProvider{
		settings: settings,
		logger:   logger.With().Str("component", "store").Str("driver", string(settings.Driver)).Logger(),
	}
}

func (p *connectionProvider) Driver() Driver {
	return p.settings.Driver
}

func (p *connectionProvider) StatementTimeout() time.Duration {
	return p.settings.StatementTimeout
}

func (p *connectionProvider) dialector() (gorm.Dialector, error) {
	s := p.settings
	switch s.Driver {
	case DriverPostgres:
		sslMode := s.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			s.Host,
			s.User,
			s.Password,
			s.Database,
			s.Port,
			sslMode,
		)
		return postgres.Open(dsn), nil
	case DriverMySQL:
		cfg := mysqldriver.NewConfig()
		cfg.User = s.User
		cfg.Passwd = s.Password
		cfg.Net = "tcp"
		cfg.Addr = net.JoinHostPort(s.Host, s.Port)
		cfg.DBName = s.Database
		cfg.ParseTime = true
		cfg.ClientFoundRows = true
		cfg.Timeout = 10 * time.Second
		return mysql.Open(cfg.FormatDSN()), nil
	case DriverSQLite:
		if s.Database == "" {
			return nil, fmt.Errorf("sqlite requires DB_NAME to be a database file path")
		}
		dsn := s.Database + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
		return &sqlite.Dialector{DriverName: "sqlite", DSN: dsn}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", s.Driver)
	}
}

func (p *connectionProvider) Open(ctx context.Context) (*gorm.DB, error) {
	dialector, err := p.dialector()
	if err != nil {
		return nil, &Error{Kind: KindConnection, Op: "open", Err: err}
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		NamingStrategy:         NewNamer(p.settings.Driver),
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	if err != nil {
		return nil, &Error{Kind: KindConnection, Op: "open", Err: err}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, &Error{Kind: KindConnection, Op: "open", Err: err}
	}
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, &Error{Kind: KindConnection, Op: "ping", Err: err}
	}
	return db, nil
}

func (p *connectionProvider) Close(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		p.logger.Warn().Err(err).Msg("error closing connection")
	}
}

// TestConnection performs a connect/disconnect round trip.
func (p *connectionProvider) TestConnection(ctx context.Context) error {
	db, err := p.Open(ctx)
	if err != nil {
		return err
	}
	p.Close(db)
	return nil
}

// Ready proves the startup gate passed. Only Gate can produce a usable value.
type Ready struct {
	provider ConnectionProvider
}

// Gate runs the startup reachability check.
func Gate(ctx context.Context, provider ConnectionProvider) (Ready, error) {
	if provider == nil {
		return Ready{}, &Error{Kind: KindConnection, Op: "gate", Err: fmt.Errorf("no connection provider configured")}
	}
	if err := provider.TestConnection(ctx); err != nil {
		return Ready{}, err
	}
	return Ready{provider: provider}, nil
}

// Provider returns nil when r did not come from a successful Gate.
func (r Ready) Provider() ConnectionProvider {
	return r.provider
}
