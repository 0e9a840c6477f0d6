package kafka

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"github.com/lovoo/goka"
	"github.com/tecnostore/storefront/pkg/schema"
)

// A clientEventCodec used for serde [schema.ClientEventV1]
type clientEventCodec struct {
	serde Serde
}

func newClientEventCodec(s Serde) clientEventCodec {
	return clientEventCodec{s}
}

func (c clientEventCodec) Encode(v any) ([]byte, error) {
	const op = "clientEventCodec.Encode"
	if _, ok := v.(schema.ClientEventV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.serde.Encode(v)
}

func (c clientEventCodec) Decode(data []byte) (any, error) {
	const op = "clientEventCodec.Decode"
	var s schema.ClientEventV1
	err := c.serde.Decode(data, &s)
	if err != nil {
		return nil, opErr(err, op)
	}
	return s, err
}

// An eventCount is the per-user running total of accepted commands.
type eventCount int64

// An eventCountCodec used for serde [eventCount]
type eventCountCodec struct{}

func (eventCountCodec) Encode(v any) ([]byte, error) {
	const op = "eventCountCodec.Encode"
	n, ok := v.(eventCount)
	if !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	data := strconv.AppendInt([]byte(nil), int64(n), 10)
	return data, nil
}

func (eventCountCodec) Decode(data []byte) (any, error) {
	const op = "eventCountCodec.Decode"
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return nil, opErr(err, op)
	}
	return eventCount(n), nil
}

// An ActivityProcessor tallies client events from the stream topic into a
// per-user group table.
type ActivityProcessor struct {
	gp *goka.Processor
}

func NewActivityProcessor(
	seedBrokers []string,
	inputStream string,
	group string,
	clientEventSerde Serde,
) (ActivityProcessor, error) {
	const op = "NewActivityProcessor"

	var p ActivityProcessor

	gg := goka.DefineGroup(goka.Group(group),
		goka.Input(
			goka.Stream(inputStream),
			newClientEventCodec(clientEventSerde),
			p.processFn,
		),
		goka.Persist(eventCountCodec{}),
	)

	gp, err := goka.NewProcessor(seedBrokers, gg, withNoLogProcOpt())
	if err != nil {
		return ActivityProcessor{}, opErr(err, op)
	}

	return ActivityProcessor{gp}, nil
}

func (p ActivityProcessor) Run(ctx context.Context, wg *sync.WaitGroup) {
	const op = "ActivityProcessor.Run"
	log := slog.With("op", op)

	defer wg.Done()

	go p.run(ctx)

	log.Info("preparing...")
	p.waitForReady(ctx)
	log.Info("running")
}

func (p ActivityProcessor) Close() {
	const op = "ActivityProcessor.Close"
	log := slog.With("op", op)

	log.Info("closing processor...")
	p.gp.Stop()
	log.Info("processor is closed")
}

func (p ActivityProcessor) run(ctx context.Context) {
	const op = "ActivityProcessor.run"
	log := slog.With("op", op)

	err := p.gp.Run(ctx)
	if err != nil {
		log.Error("stopped", "err", err)
		return
	}
	log.Info("stopped")
}

func (p ActivityProcessor) waitForReady(ctx context.Context) {
	const op = "ActivityProcessor.waitForReady"
	log := slog.With("op", op)

	err := p.gp.WaitForReadyContext(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Error("fall down while preparing", "err", err)
		return
	}
}

func (ActivityProcessor) processFn(ctx goka.Context, msg any) {
	const op = "ActivityProcessor.processFn"
	log := slog.With("op", op)

	event, _ := msg.(schema.ClientEventV1)

	var n eventCount
	if v := ctx.Value(); v != nil {
		n, _ = v.(eventCount)
	}
	n++
	ctx.SetValue(n)

	log.Info(
		"tallied client event",
		"user", string(ctx.Key()),
		"eventType", event.EventType,
		"count", int64(n),
	)
}
