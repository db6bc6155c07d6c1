// Package db opens the gorm connection behind the postgres storage backend.
package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultMaxOpenConns    = 10
	defaultConnMaxIdleTime = 5 * time.Minute
	defaultPingTimeout     = 5 * time.Second
)

// Options sizes the pool. Zero values fall back to the defaults above.
type Options struct {
	DSN             string
	MaxOpenConns    int
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
}

func (o Options) withDefaults() Options {
	o.DSN = strings.TrimSpace(o.DSN)
	if o.MaxOpenConns <= 0 {
		o.MaxOpenConns = defaultMaxOpenConns
	}
	if o.ConnMaxIdleTime <= 0 {
		o.ConnMaxIdleTime = defaultConnMaxIdleTime
	}
	if o.PingTimeout <= 0 {
		o.PingTimeout = defaultPingTimeout
	}
	return o
}

// Postgres owns the gorm handle shared by the campaign snapshot and the
// status history tables.
type Postgres struct {
	DB          *gorm.DB
	pingTimeout time.Duration
}

// Open dials the database, sizes the pool, and fails fast when the first
// ping does not answer within PingTimeout.
func Open(ctx context.Context, opts Options) (*Postgres, error) {
	opts = opts.withDefaults()
	if opts.DSN == "" {
		return nil, errors.New("postgres dsn is required")
	}

	gdb, err := gorm.Open(postgres.Open(opts.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open campaign store database: %w", err)
	}

	pg := &Postgres{DB: gdb, pingTimeout: opts.PingTimeout}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("campaign store sql handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	sqlDB.SetMaxIdleConns(opts.MaxOpenConns)
	sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)

	if err := pg.Ping(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return pg, nil
}

// Ping checks the connection within the configured ping timeout.
func (p *Postgres) Ping(ctx context.Context) error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}
	pingCtx, cancel := context.WithTimeout(ctx, p.pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return fmt.Errorf("ping campaign store database: %w", err)
	}
	return nil
}

func (p *Postgres) Close() error {
	if p == nil || p.DB == nil {
		return nil
	}
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
