// Package fecha resolves calendar-day keys in the business timezone.
// Every day-scoped key in the system (stats counters, session clave_dia)
// goes through ClaveDia so that data from a previous business day never
// mixes with today's, regardless of the server's local timezone.
package fecha

import "time"

// DefaultTimezone is the business timezone of the store.
const DefaultTimezone = "America/Santiago"

// Cargar resolves an IANA timezone name, falling back to DefaultTimezone on
// an empty name. A bad name is a config error and is returned as such.
func Cargar(nombre string) (*time.Location, error) {
	if nombre == "" {
		nombre = DefaultTimezone
	}
	return time.LoadLocation(nombre)
}

// ClaveDia returns the lexicographically sortable YYYY-MM-DD key for the
// given instant in the business timezone. Pure; same instant always yields
// the same key.
func ClaveDia(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}
