package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/seriv/go-xp-dashboard/internal/config"
	"github.com/seriv/go-xp-dashboard/internal/dashboard"
	"github.com/seriv/go-xp-dashboard/internal/data/cache"
	"github.com/seriv/go-xp-dashboard/internal/data/client"
	"github.com/seriv/go-xp-dashboard/internal/data/session"
)

// buildPage runs one full fetch-aggregate-render cycle. The optional
// response cache keeps serve-mode re-renders off the network; the
// one-shot render path passes nil and always fetches fresh.
func buildPage(ctx context.Context, cfg config.Config, rc *cache.ResponseCache) (*dashboard.Page, error) {
	store := session.NewStore(config.AppDir())
	sess, err := store.Load()
	if err != nil {
		return nil, err
	}
	if !sess.Authenticated() {
		return nil, session.ErrNotAuthenticated
	}

	opts := []client.Option{}
	if rc != nil {
		opts = append(opts, client.WithResponseCache(rc))
	}
	c := client.New(cfg.Endpoint, sess.AuthHeader(), opts...)

	user, err := c.FetchUser(ctx)
	if err != nil {
		return nil, describeAuthError(err)
	}
	transactions, err := c.FetchTransactions(ctx)
	if err != nil {
		return nil, describeAuthError(err)
	}
	results, err := c.FetchResults(ctx)
	if err != nil {
		return nil, describeAuthError(err)
	}

	return dashboard.Build(user, transactions, results, cfg), nil
}

func describeAuthError(err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		return fmt.Errorf("session rejected by the API, run login again: %w", err)
	}
	return err
}
