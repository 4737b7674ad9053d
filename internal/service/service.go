package service

import (
	"context"
	"fmt"
	"io"

	"github.com/thoas/go-funk"
	"go.uber.org/zap"

	"github.com/patric-chuzhbe/usersroundtrip/internal/logger"
	"github.com/patric-chuzhbe/usersroundtrip/internal/user"
)

type usersSaver interface {
	Save(ctx context.Context, users user.Users) error
}

type usersLoader interface {
	Load(ctx context.Context) (user.Users, error)
}

type storage interface {
	usersSaver
	usersLoader
}

type Service struct {
	db  storage
	out io.Writer
}

func New(db storage, out io.Writer) *Service {
	return &Service{
		db:  db,
		out: out,
	}
}

// RoundTrip persists users, reads the stored document back and prints the
// decoded sequence to the service output. Nothing is printed unless both the
// write and the read succeed.
func (s *Service) RoundTrip(ctx context.Context, users user.Users) (user.Users, error) {
	if err := s.db.Save(ctx, users); err != nil {
		return nil, fmt.Errorf("in service.RoundTrip(): error while saving users: %w", err)
	}

	reloaded, err := s.db.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("in service.RoundTrip(): error while loading users: %w", err)
	}

	if logger.Log.Desugar().Core().Enabled(zap.DebugLevel) {
		logger.Log.Debugln(
			"users reloaded",
			"count", len(reloaded),
			"names", funk.Map(reloaded, func(u user.User) string { return u.Name }).([]string),
		)
	}

	if err := Render(s.out, reloaded); err != nil {
		return nil, fmt.Errorf("in service.RoundTrip(): error while printing users: %w", err)
	}

	return reloaded, nil
}

// Render writes the default Go rendering of users as a single line.
func Render(w io.Writer, users user.Users) error {
	_, err := fmt.Fprintf(w, "%+v\n", users)

	return err
}
