package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tecnostore/storefront/internal/core/domain"
	"github.com/tecnostore/storefront/internal/core/port"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.EventsProducer = (*ClientEventsProducer)(nil)

// A ClientEventsProducer streams [domain.ClientEvent] records keyed by
// user.
type ClientEventsProducer struct {
	cl      ProducerClient
	encoder Encoder
}

func NewClientEventsProducer(
	opts ...ProducerOpt,
) (ClientEventsProducer, error) {
	const op = "NewClientEventsProducer"

	if len(opts) != 2 {
		panic(fmt.Errorf("%s: %w", op, ErrTooFewOpts)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return ClientEventsProducer{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	return ClientEventsProducer{options.cl, options.encoder}, nil
}

func (p ClientEventsProducer) Close() {
	const op = "ClientEventsProducer.Close"
	log := slog.With("op", op)
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p ClientEventsProducer) ProduceEvent(
	ctx context.Context, evt domain.ClientEvent,
) error {
	const op = "ClientEventsProducer.ProduceEvent"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	r, err := p.createRecord(evt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := p.produce(ctx, r); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (p ClientEventsProducer) createRecord(
	evt domain.ClientEvent,
) (*kgo.Record, error) {
	const op = "ClientEventsProducer.createRecord"

	s := clientEventToSchemaV1(evt)
	v, err := p.encoder.Encode(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &kgo.Record{Key: []byte(eventKey(evt)), Value: v}, nil
}

func (p ClientEventsProducer) produce(
	ctx context.Context, r *kgo.Record,
) error {
	const op = "ClientEventsProducer.produce"
	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
