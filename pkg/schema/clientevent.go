package schema

const ClientEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "client_event",
	"fields" : [
		{"name": "event_id", "type": "string"},
		{"name": "event_type", "type": "string"},
		{"name": "user_email", "type": "string"},
		{"name": "product_id", "type": "string"},
		{"name": "quantity", "type": "int"},
		{"name": "unix_ms", "type": "long"}
	]
}`

// ClientEventV1 is the wire form of a storefront client event: one record
// per accepted UI command, keyed by user.
type ClientEventV1 struct {
	EventID   string `avro:"event_id"`
	EventType string `avro:"event_type"`
	UserEmail string `avro:"user_email"`
	ProductID string `avro:"product_id"`
	Quantity  int    `avro:"quantity"`
	UnixMS    int64  `avro:"unix_ms"`
}
