// Package dataset reads the airline, airport and flight records a planner is
// populated from. Records keep their fields as raw strings; parsing clock
// times and prices is the planner's job.
//
// Two sources are supported: a directory of CSV files (LoadDir) and a SQL
// database with the same three tables (LoadSQL). Both narrow the records to a
// selection of airlines the same way, see Dataset.Select.
package dataset

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrMissingAirline is returned when a requested airline code is not in the data.
	ErrMissingAirline = errors.New("dataset: missing airline data")

	// ErrMalformedRecord is returned for a record with the wrong shape or an
	// unparsable field.
	ErrMalformedRecord = errors.New("dataset: malformed record")
)

// AirlineCodes is the default airline selection.
var AirlineCodes = []string{"BA", "EK"}

// MoreAirlineCodes is the extended airline selection.
var MoreAirlineCodes = []string{"AF", "BA", "CX", "CZ", "DL", "EK", "JJ", "KL", "LH", "NH", "QF", "QR", "TK", "UA"}

// Airline is one airlines_data record.
type Airline struct {
	Code    string
	Name    string
	Country string
}

// Airport is one airports_data record.
type Airport struct {
	Code string
	City string
	Name string
}

// Flight is one flights_data record. Departure and Arrival are HHMM strings,
// Price a decimal string.
type Flight struct {
	Code      string
	Airline   string
	From      string
	Departure string
	To        string
	Arrival   string
	Price     string
}

// Dataset groups the three record collections.
type Dataset struct {
	Airlines []Airline
	Airports []Airport
	Flights  []Flight
}

// AirlineOf returns the operating airline of a flight code: its first two characters.
func AirlineOf(flightCode string) string {
	if len(flightCode) < 2 {
		return flightCode
	}

	return flightCode[:2]
}

// Select narrows d to the requested airlines:
//   - every requested code must name an airline in d (ErrMissingAirline otherwise);
//   - only flights operated by a requested airline are kept;
//   - only airports served by a kept flight are kept.
//
// Codes are matched case-insensitively. d is not modified.
func (d *Dataset) Select(airlines []string) (*Dataset, error) {
	needed := make(map[string]bool, len(airlines))
	var code string
	for _, code = range airlines {
		needed[canonical(code)] = true
	}

	out := &Dataset{}
	available := make(map[string]bool, len(needed))
	var a Airline
	for _, a = range d.Airlines {
		code = canonical(a.Code)
		if needed[code] && !available[code] {
			available[code] = true
			out.Airlines = append(out.Airlines, a)
		}
	}

	if len(available) < len(needed) {
		missing := make([]string, 0, len(needed)-len(available))
		for code = range needed {
			if !available[code] {
				missing = append(missing, code)
			}
		}
		sort.Strings(missing)

		return nil, fmt.Errorf("%w: %s", ErrMissingAirline, strings.Join(missing, ", "))
	}

	served := make(map[string]bool)
	var f Flight
	for _, f = range d.Flights {
		if available[canonical(f.Airline)] {
			served[canonical(f.From)] = true
			served[canonical(f.To)] = true
			out.Flights = append(out.Flights, f)
		}
	}

	var ap Airport
	for _, ap = range d.Airports {
		if served[canonical(ap.Code)] {
			out.Airports = append(out.Airports, ap)
		}
	}

	return out, nil
}

func canonical(code string) string { return strings.ToUpper(strings.TrimSpace(code)) }
