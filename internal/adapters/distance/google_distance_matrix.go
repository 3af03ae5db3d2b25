package distance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"route-distance-enricher/internal/domain"
	"route-distance-enricher/internal/platform/obs"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://maps.googleapis.com/maps/api/distancematrix/json"
	travelMode     = "driving"
	unitSystem     = "imperial"
)

type textValue struct {
	Text string `json:"text"`
}

type matrixElement struct {
	Status   string     `json:"status"`
	Distance *textValue `json:"distance"`
	Duration *textValue `json:"duration"`
}

type matrixResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Rows         []struct {
		Elements []matrixElement `json:"elements"`
	} `json:"rows"`
}

// APIStatusError is a request-level failure reported by the Distance Matrix
// service itself (REQUEST_DENIED, INVALID_REQUEST, OVER_QUERY_LIMIT, ...).
type APIStatusError struct {
	Status  string
	Message string
}

func (e *APIStatusError) Error() string {
	if e.Message == "" {
		return "distance matrix status " + e.Status
	}
	return fmt.Sprintf("distance matrix status %s: %s", e.Status, e.Message)
}

// GoogleRouteProvider implements ports.RouteProvider using the Google
// Distance Matrix API, one origin/destination pair per call.
// It performs no retries of its own; failures are classified so the
// caller can decide.
type GoogleRouteProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	logger  *zap.Logger
}

type Option func(*GoogleRouteProvider)

// Point the provider at a different endpoint (tests, proxies).
func WithBaseURL(u string) Option {
	return func(g *GoogleRouteProvider) { g.baseURL = u }
}

func WithTimeout(d time.Duration) Option {
	return func(g *GoogleRouteProvider) { g.session.Timeout = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(g *GoogleRouteProvider) { g.logger = l }
}

func NewGoogleRouteProvider(apiKey string, opts ...Option) (*GoogleRouteProvider, error) {
	if apiKey == "" {
		return nil, errors.New("google api key is empty")
	}

	provider := &GoogleRouteProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(provider)
	}

	provider.session.Transport = &loggingTransport{next: http.DefaultTransport, logger: provider.logger}

	if _, err := url.Parse(provider.baseURL); err != nil {
		return nil, fmt.Errorf("google base url %q: %w", provider.baseURL, err)
	}

	return provider, nil
}

// GetRoute returns the driving distance and duration text of the first
// element of the first row of the matrix.
func (g *GoogleRouteProvider) GetRoute(
	ctx context.Context,
	origin string,
	destination string,
) (_ domain.RouteResult, err error) {
	defer obs.Time(g.logger, "google.GetRoute")(&err)

	req, err := g.newRequest(ctx, url.Values{
		"origins":      {origin},
		"destinations": {destination},
		"mode":         {travelMode},
		"units":        {unitSystem},
	})
	if err != nil {
		return domain.RouteResult{}, fmt.Errorf("get route: %w", err)
	}

	resp, err := g.do(req)
	if err != nil {
		return domain.RouteResult{}, fmt.Errorf("get route: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.RouteResult{}, ctxErr
		}
		return domain.RouteResult{}, fmt.Errorf("get route: read body: %w: %w", domain.ErrTransport, err)
	}

	var mr matrixResponse
	if err := json.Unmarshal(body, &mr); err != nil {
		return domain.RouteResult{}, fmt.Errorf("get route: decode response: %w: %w", domain.ErrMalformedResponse, err)
	}

	return firstElement(mr)
}

// firstElement reads rows[0].elements[0].{distance,duration}.text.
// Any missing piece of that path is a malformed response.
func firstElement(mr matrixResponse) (domain.RouteResult, error) {
	if mr.Status == "" {
		return domain.RouteResult{}, fmt.Errorf("get route: %w: no status", domain.ErrMalformedResponse)
	}
	if mr.Status != "OK" {
		return domain.RouteResult{}, &APIStatusError{Status: mr.Status, Message: mr.ErrorMessage}
	}

	if len(mr.Rows) == 0 {
		return domain.RouteResult{}, fmt.Errorf("get route: %w: no rows", domain.ErrMalformedResponse)
	}
	if len(mr.Rows[0].Elements) == 0 {
		return domain.RouteResult{}, fmt.Errorf("get route: %w: no elements", domain.ErrMalformedResponse)
	}

	el := mr.Rows[0].Elements[0]
	if el.Distance == nil || el.Duration == nil {
		return domain.RouteResult{}, fmt.Errorf(
			"get route: %w: element status %s has no distance or duration",
			domain.ErrMalformedResponse, el.Status,
		)
	}
	if el.Distance.Text == "" || el.Duration.Text == "" {
		return domain.RouteResult{}, fmt.Errorf("get route: %w: empty distance or duration text", domain.ErrMalformedResponse)
	}

	return domain.RouteResult{Distance: el.Distance.Text, Duration: el.Duration.Text}, nil
}
