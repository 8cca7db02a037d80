package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aserravalle/travelling-salesman-backend/internal/domain"
	"github.com/aserravalle/travelling-salesman-backend/internal/platform/obs"
	"github.com/aserravalle/travelling-salesman-backend/internal/ports"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// Nominatim requires an identifying User-Agent.
const userAgent = "TravellingSalesman/1.0 (magicchili1998@gmail.com)"

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// NominatimGeocoder resolves free-text addresses with OpenStreetMap's
// Nominatim search API.
type NominatimGeocoder struct {
	baseURL string
	session *http.Client
}

func NewNominatimGeocoder(baseURL string) *NominatimGeocoder {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	return &NominatimGeocoder{
		baseURL: strings.TrimRight(baseURL, "/"),
		session: &http.Client{Timeout: 10 * time.Second},
	}
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves one address to coordinates rounded to 4 decimals.
func (n *NominatimGeocoder) Geocode(ctx context.Context, address string) (_ ports.GeocodeResult, err error) {
	defer obs.Time(ctx, "nominatim.Geocode")(&err)

	endpoint := n.baseURL + "/search"

	resp, err := n.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "application/json")

		q := req.URL.Query()
		q.Set("q", address)
		q.Set("format", "json")
		q.Set("addressdetails", "1")
		q.Set("limit", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return ports.GeocodeResult{}, fmt.Errorf("geocode %q: %w", address, err)
	}
	defer resp.Body.Close()

	var decoded []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.GeocodeResult{}, fmt.Errorf("geocode %q: decode response: %w", address, err)
	}
	if len(decoded) == 0 {
		return ports.GeocodeResult{}, fmt.Errorf("geocode %q: no results", address)
	}

	lat, err := strconv.ParseFloat(decoded[0].Lat, 64)
	if err != nil {
		return ports.GeocodeResult{}, fmt.Errorf("geocode %q: parse latitude: %w", address, err)
	}
	lon, err := strconv.ParseFloat(decoded[0].Lon, 64)
	if err != nil {
		return ports.GeocodeResult{}, fmt.Errorf("geocode %q: parse longitude: %w", address, err)
	}

	return ports.GeocodeResult{
		Coordinates: domain.Coordinates{
			Latitude:  round4(lat),
			Longitude: round4(lon),
		},
		DisplayAddress: decoded[0].DisplayName,
	}, nil
}

func (n *NominatimGeocoder) do(req *http.Request) (*http.Response, error) {
	resp, err := n.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		body := make([]byte, 0)
		if resp.Body != nil {
			buf := make([]byte, 512)
			k, _ := resp.Body.Read(buf)
			body = buf[:k]
			resp.Body.Close()
		}
		return nil, &httpStatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return resp, nil
}

// doWithRetry retries transient failures (network errors, 429/5xx)
// with exponential backoff while respecting context cancellation.
func (n *NominatimGeocoder) doWithRetry(
	ctx context.Context,
	makeReq func() (*http.Request, error),
) (*http.Response, error) {
	const maxAttempts = 4
	backoff := 200 * time.Millisecond

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, fmt.Errorf("make request: %w", err)
		}

		resp, err := n.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		retry := false
		var he *httpStatusError
		if errors.As(err, &he) {
			switch he.Code {
			case 429, 500, 502, 503, 504:
				retry = true
			}
		}

		var netErr net.Error
		if !retry && errors.As(err, &netErr) {
			retry = true
		}

		if !retry || attempt == maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
