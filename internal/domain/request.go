package domain

import "time"

// ItemRequest запрос на вещь, которой пока нет среди предложений
type ItemRequest struct {
	ID          int64
	Description string
	RequesterID int64
	Created     time.Time
}

// ItemRequestDetails запрос вместе с вещами, добавленными в ответ на него
type ItemRequestDetails struct {
	ItemRequest
	Items []*Item
}
