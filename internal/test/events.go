package test

import (
	"context"

	"github.com/suoapvs/alexcoffee/internal/adapter/events"
)

// PublisherStub records published order events.
type PublisherStub struct {
	Published []events.OrderPlaced
	Err       error
}

// PublishOrderPlaced appends the event unless the stub has an explicit error.
func (p *PublisherStub) PublishOrderPlaced(ctx context.Context, event events.OrderPlaced) error {
	if p.Err != nil {
		return p.Err
	}
	p.Published = append(p.Published, event)
	return nil
}

// Close is a no-op.
func (p *PublisherStub) Close() error { return nil }
