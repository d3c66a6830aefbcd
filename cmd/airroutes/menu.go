package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/airroutes/clock"
	"github.com/katalvlaran/airroutes/network"
	"github.com/katalvlaran/airroutes/planner"
	"github.com/katalvlaran/airroutes/route"
)

const options = `
Enter one of the following numbers to find the route you need:
(1) Cheapest route from one airport to another.
(2) Fewest number of changeovers.
(3) Cheapest route excluding one or more airports.
(4) Fewest number of changeovers, excluding one or more airports.
(5) List of cheapest routes below a price, excluding one or more airports.
(6) List of fewest changeover routes, excluding one or more airports.
(7) Cheapest meet-up airport given two airports.
(8) Least hop meet-up airport given two airports.
(9) Least time meet-up airport given two airports and a starting time.
(0) End.
`

// menu drives the interactive session.
type menu struct {
	p   *planner.Planner
	in  *bufio.Scanner
	out io.Writer
}

func newMenu(p *planner.Planner, in io.Reader, out io.Writer) *menu {
	return &menu{p: p, in: bufio.NewScanner(in), out: out}
}

// run loops until "0", end of input or ctx ends.
func (m *menu) run(ctx context.Context) error {
	for ctx.Err() == nil {
		fmt.Fprint(m.out, options)
		command, ok := m.read()
		if !ok || command == "0" {
			return m.in.Err()
		}
		fmt.Fprintln(m.out)

		var err error
		switch command {
		case "1":
			err = m.cheapest(ctx, false)
		case "2":
			err = m.fewestHops(ctx, false)
		case "3":
			err = m.cheapest(ctx, true)
		case "4":
			err = m.fewestHops(ctx, true)
		case "5":
			err = m.byCost(ctx)
		case "6":
			err = m.byHops(ctx)
		case "7":
			err = m.costMeetUp(ctx)
		case "8":
			err = m.hopMeetUp(ctx)
		case "9":
			err = m.timeMeetUp(ctx)
		default:
			fmt.Fprintf(m.out, "Unknown option %q.\n", command)
		}
		if err != nil {
			m.report(err)
		}
	}

	return ctx.Err()
}

func (m *menu) cheapest(ctx context.Context, excluding bool) error {
	from, to := m.ask("departure"), m.ask("destination")
	var (
		r   *route.Route
		err error
	)
	if excluding {
		excluded := m.askExcluded()
		r, err = m.p.LeastCostExcluding(ctx, from, to, excluded)
		fmt.Fprintf(m.out, "Cheapest route from %s to %s excluding (%s):\n", from, to, strings.Join(excluded, " "))
	} else {
		r, err = m.p.LeastCost(ctx, from, to)
		fmt.Fprintf(m.out, "Route for %s to %s\n", from, to)
	}
	if err != nil {
		return err
	}
	printRoute(m.out, r)

	return nil
}

func (m *menu) fewestHops(ctx context.Context, excluding bool) error {
	from, to := m.ask("departure"), m.ask("destination")
	var (
		r   *route.Route
		err error
	)
	if excluding {
		excluded := m.askExcluded()
		r, err = m.p.LeastHopExcluding(ctx, from, to, excluded)
		fmt.Fprintf(m.out, "A route with fewest changeovers from %s to %s excluding (%s):\n", from, to, strings.Join(excluded, " "))
	} else {
		r, err = m.p.LeastHop(ctx, from, to)
		fmt.Fprintf(m.out, "A route with fewest changeovers from %s to %s:\n", from, to)
	}
	if err != nil {
		return err
	}
	printRoute(m.out, r)

	return nil
}

func (m *menu) byCost(ctx context.Context) error {
	from, to := m.ask("departure"), m.ask("destination")
	excluded := m.askExcluded()
	fmt.Fprintln(m.out, "Enter the maximum price.")
	line, _ := m.read()
	maxCost, err := network.ParsePrice(line)
	if err != nil {
		return err
	}

	routes, err := m.p.AllRoutesCost(ctx, from, to, excluded, maxCost)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Cheapest routes from %s to %s excluding (%s) and maximum price of %s:\n",
		from, to, strings.Join(excluded, " "), maxCost)
	printRoutes(m.out, routes)

	return nil
}

func (m *menu) byHops(ctx context.Context) error {
	from, to := m.ask("departure"), m.ask("destination")
	excluded := m.askExcluded()
	fmt.Fprintln(m.out, "Enter the maximum hops.")
	line, _ := m.read()
	maxHop, err := strconv.Atoi(line)
	if err != nil {
		return fmt.Errorf("maximum hops %q: %w", line, err)
	}

	routes, err := m.p.AllRoutesHop(ctx, from, to, excluded, maxHop)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Fewest hop routes from %s to %s excluding (%s) and maximum hops of %d:\n",
		from, to, strings.Join(excluded, " "), maxHop)
	printRoutes(m.out, routes)

	return nil
}

func (m *menu) costMeetUp(ctx context.Context) error {
	a, b := m.ask("first"), m.ask("second")
	meet, err := m.p.LeastCostMeetUp(ctx, a, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Cheapest meet-up airport for %s and %s is %s\n", a, b, meet)

	for _, origin := range []string{a, b} {
		r, err := m.p.LeastCost(ctx, origin, meet)
		if err != nil {
			return err
		}
		fmt.Fprintf(m.out, "\nRoute for %s to %s\n", origin, meet)
		printRoute(m.out, r)
	}

	return nil
}

func (m *menu) hopMeetUp(ctx context.Context) error {
	a, b := m.ask("first"), m.ask("second")
	meet, err := m.p.LeastHopMeetUp(ctx, a, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Least hop meet-up airport for %s and %s is %s\n", a, b, meet)

	for _, origin := range []string{a, b} {
		r, err := m.p.LeastHop(ctx, origin, meet)
		if err != nil {
			return err
		}
		fmt.Fprintf(m.out, "\nRoute for %s to %s\n", origin, meet)
		printRoute(m.out, r)
	}

	return nil
}

func (m *menu) timeMeetUp(ctx context.Context) error {
	a, b := m.ask("first"), m.ask("second")
	fmt.Fprintln(m.out, "Enter the starting time:")
	line, _ := m.read()
	start, err := clock.Parse(line)
	if err != nil {
		return err
	}

	meet, err := m.p.LeastTimeMeetUp(ctx, a, b, start)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Least time meet-up airport for %s and %s for the time of %s is %s\n", a, b, start, meet)

	for _, origin := range []string{a, b} {
		r, done, err := m.p.EarliestRoute(ctx, origin, meet, start)
		if err != nil {
			return err
		}
		fmt.Fprintf(m.out, "\nEarliest route from %s to %s starting at time %s is:\n", origin, meet, start)
		printRoute(m.out, r)
		fmt.Fprintf(m.out, "Arrival %d minutes after %s.\n", int(done.Minutes()), start)
	}

	return nil
}

// report prints a query failure in user terms.
func (m *menu) report(err error) {
	switch {
	case errors.Is(err, planner.ErrNoRouteExists):
		fmt.Fprintln(m.out, "No route exists between these two airports.")
	case errors.Is(err, planner.ErrNoMeetUpAirport):
		fmt.Fprintln(m.out, "No airport can be reached from both airports.")
	default:
		fmt.Fprintln(m.out, err)
	}
}

func (m *menu) ask(which string) string {
	fmt.Fprintf(m.out, "Please enter the %s airport:\n", which)
	line, _ := m.read()

	return line
}

// askExcluded reads airport codes separated by spaces or commas.
func (m *menu) askExcluded() []string {
	fmt.Fprintln(m.out, "Please enter one or more airports to exclude, separated by spaces:")
	line, _ := m.read()

	return strings.FieldsFunc(line, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' })
}

func (m *menu) read() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(m.in.Text()), true
}

// printRoute writes the leg table followed by the totals.
func printRoute(out io.Writer, r *route.Route) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Leg\tLeave\tAt\tOn\tArrive\tAt\tPrice")
	for i, f := range r.Legs() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", i+1, f.From, f.Departure, f.Code, f.To, f.Arrival, f.Price)
	}
	_ = w.Flush()

	fmt.Fprintf(out, "Total Journey Cost = %s\n", r.TotalCost())
	fmt.Fprintf(out, "Total time in the air = %d minutes.\n", int(r.AirTime().Minutes()))
	fmt.Fprintf(out, "Connecting time = %d minutes.\n", int(r.ConnectingTime().Minutes()))
	fmt.Fprintf(out, "Total time of the route = %d minutes.\n", int(r.TotalTime().Minutes()))
}

func printRoutes(out io.Writer, routes []*route.Route) {
	if len(routes) == 0 {
		fmt.Fprintln(out, "No routes qualify.")
		return
	}
	for _, r := range routes {
		fmt.Fprintln(out)
		printRoute(out, r)
	}
}
