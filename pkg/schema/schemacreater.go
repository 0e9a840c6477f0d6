package schema

import (
	"context"
	"fmt"

	"github.com/twmb/franz-go/pkg/sr"
)

// SchemaCreater registers the schema under its subject on first use and
// yields the registry-assigned id. Creating an already registered schema is
// idempotent on the registry side.
type SchemaCreater struct {
	cl *sr.Client
}

func NewSchemaCreater(cl *sr.Client) SchemaCreater {
	return SchemaCreater{cl}
}

func (c SchemaCreater) DetermineID(
	ctx context.Context, subject string, avroSchemaText string,
) (int, error) {
	const op = "SchemaCreater.DetermineID"

	ss, err := c.cl.CreateSchema(ctx, subject, sr.Schema{
		Schema: avroSchemaText,
		Type:   sr.TypeAvro,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return ss.ID, nil
}
