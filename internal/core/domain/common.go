package domain

import "time"

// Date is a calendar date with day granularity, carried as an ISO-formatted
// string. Dates are opaque to the ledger and compared by string equality, so
// "2017-9-1" and "2017-09-01" are different dates.
type Date = string

// DateFormat is the layout used when the ledger stamps a date itself.
const DateFormat = "2006-01-02"

// Today returns the current date in DateFormat.
func Today() Date {
	return time.Now().Format(DateFormat)
}
