// Package service resolves the landing-page market status from directory
// data and the current instant.
package service

import (
	"context"
	"errors"
	"log/slog"

	"marketday/internal/directory"
	"marketday/internal/market"
	dErrors "marketday/pkg/domain-errors"
	"marketday/pkg/requestcontext"
)

// DirectoryClient is the slice of the directory service this resolver
// needs.
type DirectoryClient interface {
	MarketInfo(ctx context.Context) (directory.MarketInfo, error)
}

// Status carries the display facts for the landing page.
type Status struct {
	IsOpen           bool
	HasCurrentMarket bool
	MarketDate       string
	Color            string
	CheckInStart     string
	CheckInEnd       string
	NextMarketString string
	ResetNotice      bool
}

// Resolver derives market-open/closed presentation facts.
type Resolver struct {
	directory   DirectoryClient
	resetNotice bool
	logger      *slog.Logger
}

// Option configures the Resolver.
type Option func(*Resolver)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver constructs a Resolver. resetNotice is the presentation flag
// echoed verbatim in every status payload.
func NewResolver(directory DirectoryClient, resetNotice bool, opts ...Option) *Resolver {
	r := &Resolver{directory: directory, resetNotice: resetNotice}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Status fetches the schedule snapshot and shapes it for display. When the
// directory reports neither a current nor a next market, the status is
// forced to closed regardless of the reported open flag; an open flag with
// no market data is an inconsistent upstream payload.
func (r *Resolver) Status(ctx context.Context) (*Status, error) {
	info, err := r.directory.MarketInfo(ctx)
	if err != nil {
		if r.logger != nil {
			r.logger.Error("market info fetch failed",
				"request_id", requestcontext.RequestID(ctx), "error", err)
		}
		var re *directory.RemoteError
		if errors.As(err, &re) {
			return nil, dErrors.Wrap(err, dErrors.CodeRemote, re.Message)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "unable to fetch market info")
	}

	st := &Status{ResetNotice: r.resetNotice}
	if info.Current == nil && info.Next == nil {
		return st, nil
	}

	st.IsOpen = info.IsOpen
	if info.Next != nil {
		st.NextMarketString = market.FormatLongDate(info.Next.Date) +
			" at " + market.FormatClock12(info.Next.StartTime) + " PST"
	}
	if info.Current != nil {
		st.HasCurrentMarket = true
		st.MarketDate = info.Current.Date
		st.Color = info.Current.Color
		st.CheckInStart = market.FormatClock12(market.ClockOf(info.Current.CheckInStart))
		st.CheckInEnd = market.FormatClock12(market.ClockOf(info.Current.CheckInEnd))
	}
	return st, nil
}
