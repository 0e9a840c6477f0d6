package domain

// Command is a storefront state transition request. The UI adapter
// translates raw input into commands and the service reduces them one at a
// time.
type Command interface {
	EventType() ClientEventType
}

type FilterChanged struct {
	Filters FilterSelection
}

type SortChanged struct {
	Mode SortMode
}

type PageChanged struct {
	Page int
}

type SearchChanged struct {
	Query string
}

type CartAdjusted struct {
	ProductID string
	Delta     int
}

type CartRemoved struct {
	ProductID string
}

type CartCleared struct{}

type Checkout struct{}

type Login struct {
	Email    string
	Password string
}

type Register struct {
	Name            string
	Email           string
	Password        string
	PasswordConfirm string
}

type Logout struct{}

func (FilterChanged) EventType() ClientEventType { return EventFilterChanged }
func (SortChanged) EventType() ClientEventType   { return EventSortChanged }
func (PageChanged) EventType() ClientEventType   { return EventPageChanged }
func (SearchChanged) EventType() ClientEventType { return EventSearchInput }
func (CartAdjusted) EventType() ClientEventType  { return EventCartAdjusted }
func (CartRemoved) EventType() ClientEventType   { return EventCartRemoved }
func (CartCleared) EventType() ClientEventType   { return EventCartCleared }
func (Checkout) EventType() ClientEventType      { return EventCheckout }
func (Login) EventType() ClientEventType         { return EventLogin }
func (Register) EventType() ClientEventType      { return EventRegister }
func (Logout) EventType() ClientEventType        { return EventLogout }
