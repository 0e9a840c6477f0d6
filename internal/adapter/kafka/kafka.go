package kafka

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/lovoo/goka"
	"github.com/tecnostore/storefront/internal/core/domain"
	"github.com/tecnostore/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var (
	ErrTooFewOpts       = errors.New("too few options")
	ErrInvalidValueType = errors.New("invalid value type")
)

type ProducerOpt func(*producerOpts) error

type producerOpts struct {
	cl      ProducerClient
	encoder Encoder
}

func ProducerClientOpt(
	ctx context.Context, seedBrokers []string, topic string,
) ProducerOpt {
	return func(opts *producerOpts) error {
		cl, err := kgo.NewClient(
			kgo.SeedBrokers(seedBrokers...),
			kgo.DefaultProduceTopicAlways(),
			kgo.DefaultProduceTopic(topic),
			kgo.RequiredAcks(kgo.AllISRAcks()),
			kgo.AllowAutoTopicCreation(),
		)
		if err != nil {
			return err
		}

		if err := cl.Ping(ctx); err != nil {
			return err
		}
		opts.cl = cl
		return nil
	}
}

func ProducerEncoderOpt(encoder Encoder) ProducerOpt {
	return func(opts *producerOpts) error {
		if encoder == nil {
			return errors.New("encoder is nil")
		}
		opts.encoder = encoder
		return nil
	}
}

type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type Encoder interface {
	Encode(v any) ([]byte, error)
}

type Decoder interface {
	Decode(b []byte, v any) error
}

type Serde interface {
	Encoder
	Decoder
}

func withNoLogProcOpt() goka.ProcessorOption {
	return goka.WithLogger(log.New(io.Discard, "", 0))
}

func makeOp(s ...string) string {
	return strings.Join(s, ".")
}

func opErr(err error, op ...string) error {
	return fmt.Errorf("%s: %w", makeOp(op...), err)
}

func clientEventToSchemaV1(v domain.ClientEvent) (s schema.ClientEventV1) {
	s.EventID = v.EventID
	s.EventType = string(v.EventType)
	s.UserEmail = v.UserEmail
	s.ProductID = v.ProductID
	s.Quantity = v.Quantity
	s.UnixMS = v.UnixMS
	return
}

// eventKey groups events per user; commands dispatched without a session
// share the anonymous key.
func eventKey(v domain.ClientEvent) string {
	if v.UserEmail == "" {
		return domain.AnonymousUser
	}
	return v.UserEmail
}
