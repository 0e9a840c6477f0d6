package domain

type ClientEventType string

const (
	EventFilterChanged ClientEventType = "filter-change"
	EventSortChanged   ClientEventType = "sort-change"
	EventPageChanged   ClientEventType = "page-change"
	EventSearchInput   ClientEventType = "search-input"
	EventCartAdjusted  ClientEventType = "adjust-quantity"
	EventCartRemoved   ClientEventType = "remove-from-cart"
	EventCartCleared   ClientEventType = "clear-cart"
	EventCheckout      ClientEventType = "checkout"
	EventLogin         ClientEventType = "login"
	EventRegister      ClientEventType = "register"
	EventLogout        ClientEventType = "logout"
)

// AnonymousUser keys client events dispatched without a session.
const AnonymousUser = "anonymous"

// ClientEvent is the analytics record emitted for every accepted command.
type ClientEvent struct {
	EventID   string
	EventType ClientEventType
	UserEmail string
	ProductID string
	Quantity  int
	UnixMS    int64
}
