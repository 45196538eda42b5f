package domain

import (
	"errors"
	"fmt"
	"strings"
)

// BookingState фильтр выборки бронирований
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

// ErrUnknownState неизвестное значение фильтра
var ErrUnknownState = errors.New("unknown state")

var bookingStates = map[string]BookingState{
	string(StateAll):      StateAll,
	string(StateCurrent):  StateCurrent,
	string(StatePast):     StatePast,
	string(StateFuture):   StateFuture,
	string(StateWaiting):  StateWaiting,
	string(StateRejected): StateRejected,
}

// ParseBookingState разбирает фильтр без учёта регистра. Пустая строка означает ALL.
// В ошибке сохраняется исходное значение
func ParseBookingState(raw string) (BookingState, error) {
	if raw == "" {
		return StateAll, nil
	}
	if s, ok := bookingStates[strings.ToUpper(strings.TrimSpace(raw))]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownState, raw)
}

// UnknownStateMessage сообщение об ошибке для клиента
func UnknownStateMessage(raw string) string {
	return "Unknown state: " + raw
}
