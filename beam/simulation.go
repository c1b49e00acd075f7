package beam

import (
	"github.com/meghashyamc/lumen2d/event"
	"github.com/meghashyamc/lumen2d/geometry"
	"github.com/meghashyamc/lumen2d/logger"
	"github.com/meghashyamc/lumen2d/physics"
)

const (
	// DefaultSpeed is how many units a beam's visible tip advances per tick
	DefaultSpeed = 8.0
	// DefaultMaxRange is how far a beam reaches when nothing obstructs it
	DefaultMaxRange = 2048.0
)

// Params tune a Simulation. Zero values fall back to the defaults.
type Params struct {
	Speed    float64
	MaxRange float64
}

// Simulation owns every active beam: it traces their paths against the
// physics world (caching the result per geometry generation), advances the
// growing animation once per tick, and tears everything down on a level
// reset. The caller drives it by pushing events onto the queue and calling
// Tick once per simulation step.
type Simulation struct {
	world      *physics.World
	queue      *event.Queue
	dispatcher *event.Dispatcher
	log        logger.Logger

	speed    float64
	maxRange float64

	nextID   SourceID
	sources  map[SourceID]*Source
	cache    *pathCache
	playback map[SourceID]*playbackState
}

func NewSimulation(world *physics.World, queue *event.Queue, dispatcher *event.Dispatcher, log logger.Logger, params Params) *Simulation {
	if params.Speed == 0 {
		params.Speed = DefaultSpeed
	}
	if params.MaxRange == 0 {
		params.MaxRange = DefaultMaxRange
	}

	return &Simulation{
		world:      world,
		queue:      queue,
		dispatcher: dispatcher,
		log:        log,
		speed:      params.Speed,
		maxRange:   params.MaxRange,
		nextID:     1,
		sources:    make(map[SourceID]*Source),
		cache:      newPathCache(),
		playback:   make(map[SourceID]*playbackState),
	}
}

// Shoot creates a new beam source. The direction need not be unit length but
// must be finite and non-zero.
func (s *Simulation) Shoot(origin, dir geometry.Vector, color LightColor) (SourceID, error) {
	source, err := newSource(s.nextID, origin, dir, color)
	if err != nil {
		return 0, err
	}
	s.nextID++

	s.sources[source.ID] = source
	s.playback[source.ID] = &playbackState{}
	s.publish(event.Event{Type: event.BeamSpawned, Data: source.ID})
	s.log.Debug("beam spawned", "id", source.ID, "color", source.Color.String(), "origin", origin)
	return source.ID, nil
}

// Despawn removes a single beam and everything remembered about it
func (s *Simulation) Despawn(id SourceID) bool {
	if _, ok := s.sources[id]; !ok {
		return false
	}

	delete(s.sources, id)
	delete(s.playback, id)
	s.cache.drop(id)
	s.publish(event.Event{Type: event.BeamDespawned, Data: id})
	return true
}

// Tick consumes pending events, then advances every active beam and returns
// the segments each one currently reveals. Beams whose paths are empty
// produce no entry.
func (s *Simulation) Tick() map[SourceID][]VisibleSegment {
	for _, e := range s.queue.Drain() {
		if e.Type == event.LevelReset {
			s.reset()
		}
	}

	frame := make(map[SourceID][]VisibleSegment, len(s.sources))
	generation := s.world.Generation()

	for id, source := range s.sources {
		source.Traveled += s.speed

		path, traced := s.cache.getOrCompute(id, generation, func() []PathSegment {
			return TracePath(s.world, source.Origin, source.Dir, source.Color, s.maxRange)
		})
		if traced {
			s.log.Debug("beam path traced", "id", id, "segments", len(path), "length", TotalLength(path))
		}
		if len(path) == 0 {
			continue
		}

		state := s.playback[id]
		if total := TotalLength(path); source.Traveled > total {
			source.Traveled = total
		}

		// A fully grown beam over unchanged geometry emits the same prefix
		// every tick; skip the walk and reuse last tick's slice
		if !traced && state.emitted != nil && source.Traveled == state.prevVisible {
			frame[id] = state.emitted
			continue
		}

		visible, clamped := visiblePrefix(path, source.Traveled)
		source.Traveled = clamped
		state.prevVisible = clamped
		state.emitted = visible
		if len(visible) > 0 {
			frame[id] = visible
		}
	}

	return frame
}

// Phase reports where a beam is in its Growing -> FullyGrown life
func (s *Simulation) Phase(id SourceID) (Phase, bool) {
	source, ok := s.sources[id]
	if !ok {
		return Growing, false
	}

	entry, cached := s.cache.entries[id]
	if cached && entry.generation == s.world.Generation() && source.Traveled >= TotalLength(entry.segments) {
		return FullyGrown, true
	}
	return Growing, true
}

// Source looks up an active beam by ID
func (s *Simulation) Source(id SourceID) (*Source, bool) {
	source, ok := s.sources[id]
	return source, ok
}

// ActiveBeams returns the number of beams currently alive
func (s *Simulation) ActiveBeams() int {
	return len(s.sources)
}

// Path returns the full traced path for a beam, computing it if needed
func (s *Simulation) Path(id SourceID) ([]PathSegment, bool) {
	source, ok := s.sources[id]
	if !ok {
		return nil, false
	}

	path, _ := s.cache.getOrCompute(id, s.world.Generation(), func() []PathSegment {
		return TracePath(s.world, source.Origin, source.Dir, source.Color, s.maxRange)
	})
	return path, true
}

// reset is the level-reset path: every beam is despawned and all cached
// paths and playback progress are discarded
func (s *Simulation) reset() {
	for id := range s.sources {
		s.publish(event.Event{Type: event.BeamDespawned, Data: id})
	}

	count := len(s.sources)
	s.sources = make(map[SourceID]*Source)
	s.playback = make(map[SourceID]*playbackState)
	s.cache.clear()
	s.world.Bump()
	s.log.Info("level reset", "despawned", count)
}

func (s *Simulation) publish(e event.Event) {
	if s.dispatcher != nil {
		s.dispatcher.Publish(e)
	}
}
