package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar date. The zero value is not a valid date; construct
// through NewDate, ParseDate, or Today.
type Date struct {
	Year  int
	Month int
	Day   int
}

func NewDate(month, day, year int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses a date in M/D/YYYY form. It does not check calendar
// validity; callers decide what an invalid calendar date means for them.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("ParseDate: %q: %w", s, ErrMalformedDate)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Date{}, fmt.Errorf("ParseDate: %q: %w", s, ErrMalformedDate)
		}
		nums[i] = n
	}
	return Date{Month: nums[0], Day: nums[1], Year: nums[2]}, nil
}

func Today() Date {
	now := time.Now()
	return Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
}

func isLeapYear(year int) bool {
	if year%4 != 0 {
		return false
	}
	if year%100 == 0 {
		return year%400 == 0
	}
	return true
}

func daysInMonth(month, year int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// IsValid reports whether the date exists on the Gregorian calendar.
func (d Date) IsValid() bool {
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= daysInMonth(d.Month, d.Year)
}

func (d Date) IsFuture() bool {
	return d.Compare(Today()) > 0
}

// AgeOn returns the age in whole years as of the given date.
func (d Date) AgeOn(on Date) int {
	age := on.Year - d.Year
	if on.Month < d.Month || (on.Month == d.Month && on.Day < d.Day) {
		age--
	}
	return age
}

func (d Date) Age() int {
	return d.AgeOn(Today())
}

// DayNumber returns the proleptic Gregorian day count for the date, suitable
// for exact day-difference arithmetic.
func (d Date) DayNumber() int {
	y := d.Year
	if d.Month <= 2 {
		y--
	}
	era := y / 400
	yoe := y - era*400
	mp := d.Month + 9
	if d.Month > 2 {
		mp = d.Month - 3
	}
	doy := (153*mp+2)/5 + d.Day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe
}

// AddMonths advances the date by n calendar months, clamping the day to the
// length of the target month.
func (d Date) AddMonths(n int) Date {
	total := (d.Year*12 + d.Month - 1) + n
	year := total / 12
	month := total%12 + 1
	day := d.Day
	if max := daysInMonth(month, year); day > max {
		day = max
	}
	return Date{Year: year, Month: month, Day: day}
}

func (d Date) Compare(other Date) int {
	if d.Year != other.Year {
		if d.Year < other.Year {
			return -1
		}
		return 1
	}
	if d.Month != other.Month {
		if d.Month < other.Month {
			return -1
		}
		return 1
	}
	if d.Day != other.Day {
		if d.Day < other.Day {
			return -1
		}
		return 1
	}
	return 0
}

func (d Date) Equal(other Date) bool {
	return d == other
}

// String renders the date as M/D/YYYY without zero padding.
func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%d", d.Month, d.Day, d.Year)
}
