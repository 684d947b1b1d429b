// Package format contains the display formatting helpers shared by the view
// models: dates in the Russian conventions the mobile app uses, phone
// numbers, and text casing.
package format

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// genitiveMonths are the Russian month names in the case used after a day
// number ("2 января").
var genitiveMonths = [12]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

const unknownDate = "Неизвестно"

// DateTime renders "02.01.2006, 15:04".
func DateTime(t time.Time) string {
	return t.Format("02.01.2006, 15:04")
}

// DateFull renders "2 января 2006, 15:04".
func DateFull(t time.Time) string {
	return fmt.Sprintf("%d %s %d, %02d:%02d",
		t.Day(), genitiveMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// MonthYear renders "января 2006" for profile "with us since" display, or
// the unknown placeholder for a missing date.
func MonthYear(t *time.Time) string {
	if t == nil {
		return unknownDate
	}
	return fmt.Sprintf("%s %d", genitiveMonths[t.Month()-1], t.Year())
}

// Phone renders an 11-digit number as "+7 (999) 123-45-67". Inputs that do
// not normalize to 11 digits are returned unchanged.
func Phone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	if len(d) != 11 {
		return phone
	}
	return fmt.Sprintf("+%s (%s) %s-%s-%s", d[0:1], d[1:4], d[4:7], d[7:9], d[9:11])
}
