package timecache

import (
	"context"
	"fmt"
	"time"

	"github.com/bool64/ctxd"
	"github.com/bool64/stats"
)

// Config controls time cache instance.
type Config struct {
	// Name is cache instance name, used in stats and logging.
	Name string

	// Capacity is the number of consecutive seconds kept in cache, default DefaultCapacity.
	Capacity int

	// Pattern is a date/time pattern as understood by CompileLayout.
	// Millisecond specifiers are replaced by Placeholder.
	// Default is the pattern of Parent or DefaultPattern.
	Pattern string

	// Location is the time zone of formatted values, default is the location of Parent or time.Local.
	// With Parent, it must be nil or the same *time.Location as the parent has.
	Location *time.Location

	// Engine overrides the compiled layout of Pattern, can be nil.
	Engine Engine

	// Parent receives formatting misses instead of Engine, can be nil.
	Parent *Shared

	// Logger is an instance of contextualized logger, can be nil.
	Logger ctxd.Logger

	// Stats is metrics collector, can be nil.
	Stats stats.Tracker
}

// settings is a validated Config with defaults applied.
type settings struct {
	name     string
	capacity int
	raw      string
	pattern  string
	loc      *time.Location
	engine   Engine
	parent   *Shared
	log      ctxd.Logger
	stat     stats.Tracker
}

func (cfg Config) prepare() (settings, error) {
	s := settings{
		name:     cfg.Name,
		capacity: cfg.Capacity,
		raw:      cfg.Pattern,
		engine:   cfg.Engine,
		parent:   cfg.Parent,
		log:      cfg.Logger,
		stat:     cfg.Stats,
	}

	if s.capacity == 0 {
		s.capacity = DefaultCapacity
	}

	if s.capacity < 0 {
		return s, fmt.Errorf("%w: must be positive but %d was requested", ErrInvalidCapacity, cfg.Capacity)
	}

	loc := cfg.Location

	if s.parent != nil {
		if s.raw == "" {
			s.raw = s.parent.raw()
		}

		if loc == nil {
			loc = s.parent.location()
		} else if loc != s.parent.location() {
			return s, fmt.Errorf("%w: %s, parent has %s", ErrLocationMismatch, loc, s.parent.location())
		}
	}

	if s.raw == "" {
		s.raw = DefaultPattern
	}

	pattern, err := normalizePattern(s.raw)
	if err != nil {
		return s, err
	}

	s.pattern = pattern

	if s.parent != nil && s.parent.Pattern() != pattern {
		return s, fmt.Errorf("%w: %q, parent has %q", ErrPatternMismatch, pattern, s.parent.Pattern())
	}

	// Layout is compiled even with a parent or a custom engine to fail fast on invalid patterns.
	layout, err := CompileLayoutIn(pattern, loc)
	if err != nil {
		return s, err
	}

	s.loc = layout.Location()

	if s.engine == nil {
		s.engine = layout
	}

	if s.log != nil {
		s.log.Debug(context.Background(), "time cache created",
			"name", s.name,
			"capacity", s.capacity,
			"pattern", s.pattern,
			"location", s.loc.String(),
			"delegated", s.parent != nil)
	}

	return s, nil
}
