package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Queries used by LoadSQL. Column order matches the record fields.
const (
	selectAirlines = `SELECT code, name, country FROM airlines ORDER BY code`
	selectAirports = `SELECT code, city, name FROM airports ORDER BY code`
	selectFlights  = `SELECT code, airline, origin, departure, destination, arrival, price FROM flights ORDER BY code`
)

// Open opens a database through a registered driver ("pgx" or "mysql") and
// verifies the connection.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s database: %w", driver, err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("dataset: verify %s connection: %w", driver, err)
	}

	return db, nil
}

// LoadSQL reads the airlines, airports and flights tables and selects the
// given airlines.
func LoadSQL(ctx context.Context, db *sql.DB, airlines []string) (*Dataset, error) {
	if db == nil {
		return nil, errors.New("dataset: DB is nil")
	}

	all := &Dataset{}
	err := query(ctx, db, selectAirlines, func(rows *sql.Rows) error {
		var a Airline
		if err := rows.Scan(&a.Code, &a.Name, &a.Country); err != nil {
			return err
		}
		all.Airlines = append(all.Airlines, a)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("dataset: load airlines: %w", err)
	}

	err = query(ctx, db, selectAirports, func(rows *sql.Rows) error {
		var a Airport
		if err := rows.Scan(&a.Code, &a.City, &a.Name); err != nil {
			return err
		}
		all.Airports = append(all.Airports, a)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("dataset: load airports: %w", err)
	}

	err = query(ctx, db, selectFlights, func(rows *sql.Rows) error {
		var f Flight
		var airline sql.NullString
		if err := rows.Scan(&f.Code, &airline, &f.From, &f.Departure, &f.To, &f.Arrival, &f.Price); err != nil {
			return err
		}
		f.Airline = airline.String
		if !airline.Valid || f.Airline == "" {
			f.Airline = AirlineOf(f.Code)
		}
		all.Flights = append(all.Flights, f)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("dataset: load flights: %w", err)
	}

	return all.Select(airlines)
}

func query(ctx context.Context, db *sql.DB, q string, scan func(*sql.Rows) error) error {
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("scan row: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("row iteration: %w", err)
	}

	return nil
}
