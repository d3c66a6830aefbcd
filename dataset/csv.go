package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// File names inside a dataset directory.
const (
	AirlinesFile = "airlines_data.csv"
	AirportsFile = "airports_data.csv"
	FlightsFile  = "flights_data.csv"
)

// LoadDir reads the three CSV files in dir and selects the given airlines.
func LoadDir(dir string, airlines []string) (*Dataset, error) {
	all := &Dataset{}

	if err := readFile(filepath.Join(dir, AirlinesFile), func(r io.Reader) (err error) {
		all.Airlines, err = ReadAirlines(r)
		return err
	}); err != nil {
		return nil, err
	}
	if err := readFile(filepath.Join(dir, AirportsFile), func(r io.Reader) (err error) {
		all.Airports, err = ReadAirports(r)
		return err
	}); err != nil {
		return nil, err
	}
	if err := readFile(filepath.Join(dir, FlightsFile), func(r io.Reader) (err error) {
		all.Flights, err = ReadFlights(r)
		return err
	}); err != nil {
		return nil, err
	}

	return all.Select(airlines)
}

func readFile(path string, read func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("dataset: open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	if err := read(f); err != nil {
		return fmt.Errorf("dataset: %s: %w", filepath.Base(path), err)
	}

	return nil
}

// ReadAirlines parses "code,name,country" rows.
func ReadAirlines(r io.Reader) ([]Airline, error) {
	var out []Airline
	err := eachRecord(r, func(line int, rec []string) error {
		if len(rec) < 1 || rec[0] == "" {
			return malformed(line, rec)
		}
		out = append(out, Airline{Code: rec[0], Name: field(rec, 1), Country: field(rec, 2)})
		return nil
	})

	return out, err
}

// ReadAirports parses "code,city,name" rows.
func ReadAirports(r io.Reader) ([]Airport, error) {
	var out []Airport
	err := eachRecord(r, func(line int, rec []string) error {
		if len(rec) < 1 || rec[0] == "" {
			return malformed(line, rec)
		}
		out = append(out, Airport{Code: rec[0], City: field(rec, 1), Name: field(rec, 2)})
		return nil
	})

	return out, err
}

// ReadFlights parses flight rows in either layout:
//
//	code,from,departure,to,arrival,price          (airline taken from the code)
//	code,airline,from,departure,to,arrival,price
func ReadFlights(r io.Reader) ([]Flight, error) {
	var out []Flight
	err := eachRecord(r, func(line int, rec []string) error {
		switch len(rec) {
		case 6:
			out = append(out, Flight{
				Code: rec[0], Airline: AirlineOf(rec[0]),
				From: rec[1], Departure: rec[2], To: rec[3], Arrival: rec[4], Price: rec[5],
			})
		case 7:
			out = append(out, Flight{
				Code: rec[0], Airline: rec[1],
				From: rec[2], Departure: rec[3], To: rec[4], Arrival: rec[5], Price: rec[6],
			})
		default:
			return malformed(line, rec)
		}
		return nil
	})

	return out, err
}

// eachRecord feeds every non-empty CSV row of r to fn with trimmed fields.
// Rows may have any number of fields; fn validates the shape.
func eachRecord(r io.Reader, fn func(line int, rec []string) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
		line, _ := cr.FieldPos(0)
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		if err := fn(line, rec); err != nil {
			return err
		}
	}
}

func field(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}

	return ""
}

func malformed(line int, rec []string) error {
	return fmt.Errorf("%w: line %d: %q", ErrMalformedRecord, line, strings.Join(rec, ","))
}
