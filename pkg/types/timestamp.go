package types

import "time"

// Колонки TIMESTAMP WITHOUT TIME ZONE хранят локальное время сервера без зоны.

// ToDB переводит момент в локальное время и возвращает те же показания часов в UTC,
// чтобы драйвер не сдвигал их при записи
func ToDB(t time.Time) time.Time {
	l := t.In(time.Local)
	return time.Date(l.Year(), l.Month(), l.Day(), l.Hour(), l.Minute(), l.Second(), l.Nanosecond(), time.UTC)
}

// FromDB интерпретирует прочитанные показания часов как локальное время
func FromDB(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.Local)
}
