package entity

import "time"

// weekdayNames uses the clinic's day-naming convention: lower-case names
// with Monday as the first day of the week (Monday=0 ... Sunday=6).
var weekdayNames = [7]string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// WeekdayName maps a timestamp to the clinic's weekday token, suitable for
// matching against a Specialty's day list.
func WeekdayName(t time.Time) string {
	return weekdayNames[(int(t.Weekday())+6)%7]
}
