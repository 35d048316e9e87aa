// Package month сравнивает даты с точностью до календарного месяца.
package month

import (
	"time"
)

// Index номер месяца от начала эры: год*12 + месяц. Соседние месяцы отличаются на единицу.
func Index(year, month int) int {
	return year*12 + month
}

// Of номер месяца, в который попадает t.
func Of(t time.Time) int {
	return Index(t.Year(), int(t.Month()))
}

// Expired сообщает, что месяц year/month целиком закончился к моменту now.
// Текущий месяц ещё не считается истёкшим.
func Expired(year, month int, now time.Time) bool {
	return Of(now) > Index(year, month)
}
