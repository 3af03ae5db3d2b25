package domain

import "fmt"

const (
	OriginColumn      = "Origin-Full Address"
	DestinationColumn = "Destination-Full Address"
	DistanceColumn    = "Distance"
	DurationColumn    = "Duration"
)

// RouteSheet is an input table together with the route requests extracted from it.
// Requests[i] always corresponds to Table.Rows[i].
type RouteSheet struct {
	Table    *Table
	Requests []RouteRequest
}

// Validate the origin and destination columns once and zip them, by row, into requests.
func NewRouteSheet(t *Table, originColumn, destinationColumn string) (*RouteSheet, error) {
	origins, err := t.Column(originColumn)
	if err != nil {
		return nil, fmt.Errorf("new route sheet: %w", err)
	}

	destinations, err := t.Column(destinationColumn)
	if err != nil {
		return nil, fmt.Errorf("new route sheet: %w", err)
	}

	requests := make([]RouteRequest, 0, len(origins))
	for i := range origins {
		requests = append(requests, RouteRequest{
			Row:         i,
			Origin:      origins[i],
			Destination: destinations[i],
		})
	}

	return &RouteSheet{Table: t, Requests: requests}, nil
}

// Return a copy of the sheet's table with Distance and Duration columns
// populated row-for-row from results.
func (s *RouteSheet) WithResults(results []RouteResult) (*Table, error) {
	if len(results) != len(s.Requests) {
		return nil, fmt.Errorf(
			"route sheet with results: got %d results for %d requests",
			len(results), len(s.Requests),
		)
	}

	distances := make([]string, 0, len(results))
	durations := make([]string, 0, len(results))
	for _, r := range results {
		distances = append(distances, r.Distance)
		durations = append(durations, r.Duration)
	}

	return s.Table.WithColumns(
		Column{Name: DistanceColumn, Values: distances},
		Column{Name: DurationColumn, Values: durations},
	)
}
