package kafka

import (
	"context"
	"log/slog"

	"github.com/lovoo/goka"
	"github.com/tecnostore/storefront/internal/core/port"
)

var _ port.ActivityViewer = (*ActivityView)(nil)

// An ActivityView reads the per-user event tally from the group table.
type ActivityView struct {
	gv *goka.View
}

func NewActivityView(
	seedBrokers []string, group string,
) (ActivityView, error) {
	const op = "NewActivityView"

	gv, err := goka.NewView(
		seedBrokers,
		goka.GroupTable(goka.Group(group)),
		eventCountCodec{},
	)
	if err != nil {
		return ActivityView{}, opErr(err, op)
	}

	return ActivityView{gv}, nil
}

func (v ActivityView) Run(ctx context.Context) {
	const op = "ActivityView.Run"
	log := slog.With("op", op)

	err := v.gv.Run(ctx)
	if err != nil {
		log.Error("unexpected fail on run", "err", err)
	}
}

// EventCount reports how many client events a user has produced. An
// unknown user has zero activity, not an error.
func (v ActivityView) EventCount(userEmail string) (int64, error) {
	const op = "ActivityView.EventCount"

	val, err := v.gv.Get(userEmail)
	if err != nil {
		return 0, opErr(err, op)
	}
	if val == nil {
		return 0, nil
	}

	n, ok := val.(eventCount)
	if !ok {
		return 0, opErr(ErrInvalidValueType, op)
	}
	return int64(n), nil
}
