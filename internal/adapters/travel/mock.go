package travel

import (
	"context"
	"fmt"
	"time"

	"github.com/aserravalle/travelling-salesman-backend/internal/domain"
)

type MockPair struct {
	From, To string
	Minutes  int
}

// MockEstimator returns canned travel times keyed by address pair.
type MockEstimator struct {
	m map[string]time.Duration
}

func NewMockEstimator(pairs []MockPair) *MockEstimator {
	m := make(map[string]time.Duration, len(pairs))
	for _, p := range pairs {
		m[p.From+"|"+p.To] = time.Duration(p.Minutes) * time.Minute
	}
	return &MockEstimator{m: m}
}

func (e *MockEstimator) TravelTime(ctx context.Context, from, to domain.Location) (time.Duration, error) {
	if from.SamePlace(to) {
		return 0, nil
	}
	d, ok := e.m[from.Address+"|"+to.Address]
	if !ok {
		return 0, fmt.Errorf("missing pair %q -> %q", from.Address, to.Address)
	}
	return d, nil
}
