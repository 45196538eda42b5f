package domain

import "errors"

var (
	// ErrInvalidPage некорректные параметры пагинации
	ErrInvalidPage = errors.New("invalid page parameters")
)

// Page параметры пагинации from/size.
// from задаёт не смещение в строках, а номер страницы from/size
type Page struct {
	From int
	Size int
}

// NewPage проверяет from >= 0 и size >= 1
func NewPage(from, size int) (Page, error) {
	if from < 0 || size < 1 {
		return Page{}, ErrInvalidPage
	}
	return Page{From: from, Size: size}, nil
}

// Offset смещение в строках: (from / size) * size
func (p Page) Offset() uint64 {
	if p.Size <= 0 {
		return 0
	}
	return uint64((p.From / p.Size) * p.Size)
}

// Limit размер страницы
func (p Page) Limit() uint64 {
	return uint64(p.Size)
}
