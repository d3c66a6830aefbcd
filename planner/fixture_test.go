package planner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airroutes/dataset"
	"github.com/katalvlaran/airroutes/planner"
)

// fixture is a small dataset shaped after the real one. With the default
// airlines (BA, EK) it holds:
//
//	EDI→LHR 80 (BA1, 1000-1120)   EDI→LHR 95 (BA2)    EDI→LCY 70 (BA3, 2200-2320)
//	LHR→LCY 40 (1800-1840)        LHR→EDI 90          LCY→EDI 75 (0700-0820)
//	LGW→EDI 100                   NCL→EDI 50          LHR→DXB 284 (1300-2000)
//	DXB→LHR 250 (1000-1700)       DXB→LCY 320 (2300-0600)
//	DXB→LGW 260 (2200-0500)       DXB→NCL 300 (0100-0800)
//
// The extended airlines add EDI→FRA→DXB 363 (LH), EDI→AMS→DXB 369 (KL),
// LHR→LGA (DL) and DXB→DOH→MAN→EDI (QR, LH).
func fixture() *dataset.Dataset {
	airlines := make([]dataset.Airline, 0, len(dataset.MoreAirlineCodes))
	for _, code := range dataset.MoreAirlineCodes {
		airlines = append(airlines, dataset.Airline{Code: code, Name: code + " Airways", Country: "Somewhere"})
	}

	airports := []dataset.Airport{
		{Code: "EDI", City: "Edinburgh", Name: "Edinburgh Airport"},
		{Code: "LHR", City: "London", Name: "Heathrow"},
		{Code: "LCY", City: "London", Name: "London City"},
		{Code: "LGW", City: "London", Name: "Gatwick"},
		{Code: "NCL", City: "Newcastle", Name: "Newcastle International"},
		{Code: "DXB", City: "Dubai", Name: "Dubai International"},
		{Code: "FRA", City: "Frankfurt", Name: "Frankfurt am Main"},
		{Code: "AMS", City: "Amsterdam", Name: "Schiphol"},
		{Code: "LGA", City: "New York", Name: "LaGuardia"},
		{Code: "DOH", City: "Doha", Name: "Hamad International"},
		{Code: "MAN", City: "Manchester", Name: "Manchester Airport"},
		{Code: "SYD", City: "Sydney", Name: "Kingsford Smith"},
	}

	f := func(code, from, dep, to, arr, price string) dataset.Flight {
		return dataset.Flight{Code: code, Airline: dataset.AirlineOf(code), From: from, Departure: dep, To: to, Arrival: arr, Price: price}
	}
	flights := []dataset.Flight{
		f("BA0001", "EDI", "1000", "LHR", "1120", "80"),
		f("BA0002", "EDI", "0600", "LHR", "0720", "95"),
		f("BA0003", "EDI", "2200", "LCY", "2320", "70"),
		f("BA0004", "LHR", "1800", "LCY", "1840", "40"),
		f("BA0005", "LHR", "1900", "EDI", "2020", "90"),
		f("BA0006", "LCY", "0700", "EDI", "0820", "75"),
		f("BA0007", "LGW", "0900", "EDI", "1030", "100"),
		f("BA0008", "NCL", "1200", "EDI", "1250", "50"),
		f("EK0001", "LHR", "1300", "DXB", "2000", "284"),
		f("EK0002", "DXB", "1000", "LHR", "1700", "250"),
		f("EK0003", "DXB", "2300", "LCY", "0600", "320"),
		f("EK0004", "DXB", "2200", "LGW", "0500", "260"),
		f("EK0005", "DXB", "0100", "NCL", "0800", "300"),

		f("LH0001", "EDI", "0700", "FRA", "0950", "93"),
		f("LH0002", "FRA", "1100", "DXB", "1800", "270"),
		f("KL0001", "EDI", "0600", "AMS", "0820", "99"),
		f("KL0002", "AMS", "1000", "DXB", "1700", "270"),
		f("DL0001", "LHR", "1200", "LGA", "1500", "400"),
		f("QR0001", "DXB", "0200", "DOH", "0300", "150"),
		f("QR0002", "DOH", "0500", "MAN", "1200", "200"),
		f("LH0003", "MAN", "1300", "EDI", "1400", "60"),
	}

	return &dataset.Dataset{Airlines: airlines, Airports: airports, Flights: flights}
}

// newPlanner populates a planner from the fixture narrowed to airlines.
func newPlanner(t *testing.T, airlines []string, opts ...planner.Option) *planner.Planner {
	t.Helper()
	d, err := fixture().Select(airlines)
	require.NoError(t, err)
	p, err := planner.Populate(d.Airlines, d.Airports, d.Flights, opts...)
	require.NoError(t, err)

	return p
}
