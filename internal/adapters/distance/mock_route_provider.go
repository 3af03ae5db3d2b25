package distance

import (
	"context"
	"fmt"
	"route-distance-enricher/internal/domain"
	"sync"
)

// MockRoute scripts one origin/destination pair: each call first consumes
// the next entry of Failures, and once they are used up returns the result.
type MockRoute struct {
	From, To string
	Distance string
	Duration string
	Failures []error
}

type MockRouteProvider struct {
	mu     sync.Mutex
	routes map[string]*MockRoute
	calls  map[string]int
}

func NewMockRouteProvider(routes []MockRoute) *MockRouteProvider {
	m := make(map[string]*MockRoute, len(routes))
	for i := range routes {
		r := routes[i]
		m[r.From+"|"+r.To] = &r
	}
	return &MockRouteProvider{routes: m, calls: map[string]int{}}
}

func (p *MockRouteProvider) GetRoute(ctx context.Context, origin, destination string) (domain.RouteResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.RouteResult{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	key := origin + "|" + destination
	p.calls[key]++

	r, ok := p.routes[key]
	if !ok {
		return domain.RouteResult{}, fmt.Errorf("missing pair %q -> %q", origin, destination)
	}

	if n := p.calls[key]; n <= len(r.Failures) {
		return domain.RouteResult{}, r.Failures[n-1]
	}

	return domain.RouteResult{Distance: r.Distance, Duration: r.Duration}, nil
}

// Calls returns how many times the pair was requested.
func (p *MockRouteProvider) Calls(origin, destination string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[origin+"|"+destination]
}
