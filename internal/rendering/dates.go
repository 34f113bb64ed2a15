// Package rendering fills text templates with a serialized résumé.
package rendering

import (
	"strconv"
	"time"

	"github.com/jonathan/cv-builder/internal/cv"
)

// Ongoing is printed in place of an absent end date
const Ongoing = "Ongoing"

// FormatDate turns a date code into display text: YYYYMM becomes "January 2023",
// YYYY is printed as is and nil becomes "Ongoing". Anything else is printed
// unchanged.
func FormatDate(value any) string {
	if value == nil {
		return Ongoing
	}
	code, err := cv.AssertInt("date", value)
	if err != nil {
		return toString(value)
	}
	if code == nil {
		return Ongoing
	}
	digits := strconv.Itoa(*code)
	if *code < 0 || len(digits) != cv.YearMonthWidth {
		return digits
	}
	month, _ := strconv.Atoi(digits[4:])
	if month < 1 || month > 12 {
		return digits
	}
	return time.Month(month).String() + " " + digits[:4]
}
