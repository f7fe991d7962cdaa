// Package carousel models the rotating image displays on the site.
//
// A Rotator is created per mount and always starts at index zero. Run drives it from
// a ticker that is released as soon as the mount's context is cancelled.
package carousel

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultInterval is the delay between two images.
const DefaultInterval = 3000 * time.Millisecond

// Fit mirrors the CSS object-fit used to draw the images.
type Fit string

const (
	FitCover   Fit = "cover"
	FitContain Fit = "contain"
)

// Named image sets.
const (
	HomeDashboard        = "home-dashboard"
	SolutionsMaintenance = "solutions-maintenance"
	SolutionsFuel        = "solutions-fuel"
	SolutionsTracking    = "solutions-tracking"
	AboutOperation       = "about-operation"
)

var ErrUnknownSet = errors.New("unknown carousel set")

// Set is an ordered, fixed list of images shown in one display.
type Set struct {
	Name     string        `json:"name"`
	AltKey   string        `json:"alt_key"`
	Images   []string      `json:"images"`
	Interval time.Duration `json:"interval"`
	Fit      Fit           `json:"fit"`
}

var sets = map[string]Set{
	HomeDashboard: {
		Name:   HomeDashboard,
		AltKey: "home.carousel.alt",
		Images: []string{
			"/imagens/home_dashboard-1.png",
			"/imagens/home_dashboard-2.png",
			"/imagens/home_dashboard-3.png",
		},
		Interval: DefaultInterval,
		Fit:      FitCover,
	},
	SolutionsMaintenance: {
		Name:   SolutionsMaintenance,
		AltKey: "solutions.maintenance.alt",
		Images: []string{
			"/imagens/soluções_manunteção-1.png",
			"/imagens/soluções_manunteção-2.png",
			"/imagens/soluções_manunteção-3.png",
		},
		Interval: DefaultInterval,
		Fit:      FitContain,
	},
	SolutionsFuel: {
		Name:   SolutionsFuel,
		AltKey: "solutions.fuel.alt",
		Images: []string{
			"/imagens/solução_abastecimento-1.png",
			"/imagens/solução_abastecimento-2.png",
			"/imagens/solução_abastecimento-3.png",
		},
		Interval: DefaultInterval,
		Fit:      FitContain,
	},
	SolutionsTracking: {
		Name:   SolutionsTracking,
		AltKey: "solutions.tracking.alt",
		Images: []string{
			"/imagens/solução_rastreamento-1.png",
			"/imagens/solução_rastreamento-2.png",
			"/imagens/solução_rastreamento-3.png",
		},
		Interval: DefaultInterval,
		Fit:      FitContain,
	},
	AboutOperation: {
		Name:   AboutOperation,
		AltKey: "about.carousel.alt",
		Images: []string{
			"/imagens/sobre_operaçãoinstasolutions-1.png",
			"/imagens/sobre_operaçãoinstasolutions-2.png",
			"/imagens/sobre_operaçãoinstasolutions-3.png",
		},
		Interval: DefaultInterval,
		Fit:      FitContain,
	},
}

// Lookup returns a copy of the named set.
func Lookup(name string) (Set, error) {
	s, ok := sets[name]
	if !ok {
		return Set{}, ErrUnknownSet
	}
	s.Images = append([]string(nil), s.Images...)
	return s, nil
}

// Names lists the registered set names.
func Names() []string {
	return []string{HomeDashboard, SolutionsMaintenance, SolutionsFuel, SolutionsTracking, AboutOperation}
}

// IntervalMillis is the interval in milliseconds, as consumed by the page script.
func (s Set) IntervalMillis() int64 {
	return s.Interval.Milliseconds()
}

// Rotator is a zero-based cursor over n images that wraps at the end.
type Rotator struct {
	mu      sync.Mutex
	n       int
	current int
}

// NewRotator returns a rotator over n images positioned at index 0.
func NewRotator(n int) *Rotator {
	return &Rotator{n: n}
}

// Advance moves the cursor one step forward, wrapping modulo n, and returns the new
// index. An empty rotator stays at 0.
func (r *Rotator) Advance() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.n <= 0 {
		return 0
	}
	r.current = (r.current + 1) % r.n
	return r.current
}

// Current returns the active index.
func (r *Rotator) Current() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Run advances the rotator once per interval and calls onTick with the new index,
// until ctx is done. The ticker is stopped before Run returns. A non-positive
// interval falls back to DefaultInterval.
func (r *Rotator) Run(ctx context.Context, interval time.Duration, onTick func(index int)) error {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			idx := r.Advance()
			if onTick != nil {
				onTick(idx)
			}
		}
	}
}
