package domain

// Item вещь, которую можно взять в аренду
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64 // запрос, в ответ на который добавлена вещь
}

// ItemUpdate частичное обновление вещи, nil поля не меняются
type ItemUpdate struct {
	Name        *string
	Description *string
	Available   *bool
}

// ItemDetails вещь вместе с ближайшими бронями и отзывами
type ItemDetails struct {
	Item
	LastBooking *BookingShort
	NextBooking *BookingShort
	Comments    []*Comment
}
