package client

import (
	"context"
	"fmt"

	"github.com/seriv/go-xp-dashboard/internal/core/model"
	"github.com/seriv/go-xp-dashboard/internal/data/query"
)

// FetchUser returns the authenticated learner and their audit totals.
func (c *Client) FetchUser(ctx context.Context) (model.User, error) {
	var payload struct {
		User []struct {
			ID        int     `json:"id"`
			Login     string  `json:"login"`
			FirstName string  `json:"firstName"`
			LastName  string  `json:"lastName"`
			TotalUp   float64 `json:"totalUp"`
			TotalDown float64 `json:"totalDown"`
		} `json:"user"`
	}
	if err := c.Execute(ctx, query.UserInfo, nil, &payload); err != nil {
		return model.User{}, fmt.Errorf("fetching user: %w", err)
	}
	if len(payload.User) == 0 {
		return model.User{}, fmt.Errorf("user query returned no rows")
	}
	u := payload.User[0]
	return model.User{
		ID:        u.ID,
		Login:     u.Login,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Audits: model.AuditCount{
			Performed: u.TotalUp,
			Received:  u.TotalDown,
		},
	}, nil
}

// FetchTransactions returns the learner's XP transactions.
func (c *Client) FetchTransactions(ctx context.Context) ([]model.Transaction, error) {
	var payload struct {
		Transaction []model.Transaction `json:"transaction"`
	}
	vars := query.TransactionVariables(query.XPKind)
	if err := c.Execute(ctx, query.Transactions, vars, &payload); err != nil {
		return nil, fmt.Errorf("fetching transactions: %w", err)
	}
	return payload.Transaction, nil
}

// FetchResults returns the learner's graded attempts.
func (c *Client) FetchResults(ctx context.Context) ([]model.ResultRecord, error) {
	var payload struct {
		Result []model.ResultRecord `json:"result"`
	}
	if err := c.Execute(ctx, query.Results, nil, &payload); err != nil {
		return nil, fmt.Errorf("fetching results: %w", err)
	}
	return payload.Result, nil
}
