package domain

// Формат даты и времени во внешнем представлении: без зоны и долей секунды
const (
	DateTimeFormat = "2006-01-02T15:04:05"
)

// Пагинация по умолчанию
const (
	DefaultFrom = 0
	DefaultSize = 10
)

// Ограничения на поля
const (
	MaxNameLength        = 255
	MaxEmailLength       = 512
	MaxDescriptionLength = 1000
	MaxCommentLength     = 1000
)
