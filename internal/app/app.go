// Package app wires configuration, logging, the users file store and the
// round-trip service into a runnable application.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/patric-chuzhbe/usersroundtrip/internal/config"
	"github.com/patric-chuzhbe/usersroundtrip/internal/db/jsondb"
	"github.com/patric-chuzhbe/usersroundtrip/internal/db/storage"
	"github.com/patric-chuzhbe/usersroundtrip/internal/logger"
	"github.com/patric-chuzhbe/usersroundtrip/internal/service"
	"github.com/patric-chuzhbe/usersroundtrip/internal/user"
)

// UsersFileName is where the users document is written, relative to the
// working directory. It is not configurable.
const UsersFileName = "backend/users.json"

// App holds the configuration, store and service for one round trip.
type App struct {
	cfg     *config.Config
	db      storage.Storage
	service *service.Service
}

// Option customizes New.
type Option func(*options)

type options struct {
	out           io.Writer
	configOptions []config.InitOption
}

// WithOutput redirects the rendered users away from stdout.
func WithOutput(out io.Writer) Option {
	return func(o *options) {
		o.out = out
	}
}

// WithConfigOptions passes options through to config.New.
func WithConfigOptions(configOptions ...config.InitOption) Option {
	return func(o *options) {
		o.configOptions = configOptions
	}
}

// New initializes a new instance of App by:
// - loading configuration
// - initializing logger
// - binding the JSON file store to UsersFileName
func New(optionsProto ...Option) (*App, error) {
	opts := &options{
		out: os.Stdout,
	}
	for _, protoOption := range optionsProto {
		protoOption(opts)
	}

	var err error
	app := &App{}

	app.cfg, err = config.New(opts.configOptions...)
	if err != nil {
		return nil, err
	}

	err = logger.Init(app.cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	if app.cfg.RejectedLogLevel != "" {
		logger.Log.Warnln("unknown LOG_LEVEL, using default", "value", app.cfg.RejectedLogLevel, "logLevel", app.cfg.LogLevel)
	}

	db := jsondb.New(UsersFileName)
	app.db = db
	app.service = service.New(db, opts.out)

	logger.Log.Debugln("app initialized", "file", db.Path(), "logLevel", app.cfg.LogLevel)

	return app, nil
}

// Run writes the fixed users to UsersFileName, reads them back and prints them.
// It may be called any number of times before Close.
func (a *App) Run(ctx context.Context) error {
	users, err := a.service.RoundTrip(ctx, user.Fixture())
	if err != nil {
		return err
	}

	logger.Log.Infoln("users round trip complete", "file", UsersFileName, "records", len(users))

	return nil
}

// Close releases the store and flushes the logger. It runs whether or not Run succeeded.
func (a *App) Close() {
	if err := a.db.Close(); err != nil {
		logger.Log.Errorln("storage close error:", err)
	}

	if err := logger.Sync(); err != nil {
		fmt.Fprintln(os.Stderr, "Logger sync error:", err)
	}
}
