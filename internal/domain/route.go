package domain

// NotFound is the sentinel recorded for both distance and duration when a
// lookup exhausts its attempts.
const NotFound = "Not found"

// Represents a single origin/destination pair to be looked up.
// Row is the 0-based index of the data row the pair was read from.
type RouteRequest struct {
	Row         int
	Origin      string
	Destination string
}

// Human-readable distance and duration for one route request,
// as returned by the routing service (e.g. "10.3 mi", "18 mins").
type RouteResult struct {
	Distance string
	Duration string
}

// Return the sentinel result used after retries are exhausted.
func NotFoundResult() RouteResult {
	return RouteResult{Distance: NotFound, Duration: NotFound}
}

// Found reports whether the result came from a successful lookup.
func (r RouteResult) Found() bool {
	return r.Distance != NotFound || r.Duration != NotFound
}
