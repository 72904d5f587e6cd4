// Package game drives a field.Field the way a falling-block game loop does:
// it owns the falling piece, asks the field whether moves are legal and locks
// pieces in once they settle.
package game

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfield/config"
	"github.com/plus3/blockfield/field"
)

// Piece is the falling piece. Kind indexes Options.Shapes.
type Piece struct {
	Kind  int
	Shape field.Shape
	Pos   field.Position
}

type Options struct {
	Rows    int
	Columns int
	Shapes  []field.Shape

	Fall      time.Duration
	SoftDrop  time.Duration
	LockDelay time.Duration

	Seed uint64
}

func OptionsFromConfig(cfg *config.Config, seed uint64) Options {
	return Options{
		Rows:      cfg.Field.Rows,
		Columns:   cfg.Field.Columns,
		Shapes:    cfg.FieldShapes(),
		Fall:      cfg.Timing.Fall,
		SoftDrop:  cfg.Timing.SoftDrop,
		LockDelay: cfg.Timing.LockDelay,
		Seed:      seed,
	}
}

// Stats counts what happened in a session since the last Reset.
type Stats struct {
	Spawned     int
	Locked      int
	RowsCleared int
}

// Session is one game. It is driven from a single goroutine.
type Session struct {
	opts  Options
	rng   *rand.Rand
	field *field.Field
	piece *Piece
	bag   []int

	fallTimer    float64
	lockTimer    float64
	grounded     bool
	softDropping bool
	needsClear   bool
	over         bool

	stats     Stats
	events    []Event
	listeners []func(Event)
}

// NewSession creates a session with an empty field. The first piece appears
// on the first SpawnSystem run.
func NewSession(opts Options) *Session {
	if len(opts.Shapes) == 0 {
		panic("game: session needs at least one shape")
	}

	s := &Session{
		opts: opts,
		rng:  rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
	}
	s.Reset()
	return s
}

// Reset clears the field and counters and discards the falling piece.
func (s *Session) Reset() {
	s.field = field.NewSize(s.opts.Rows, s.opts.Columns)
	s.piece = nil
	s.bag = s.bag[:0]
	s.fallTimer = 0
	s.lockTimer = 0
	s.grounded = false
	s.softDropping = false
	s.needsClear = false
	s.over = false
	s.stats = Stats{}
	s.events = s.events[:0]
}

// Field returns the live field. Callers must not write to it.
func (s *Session) Field() *field.Field {
	return s.field
}

// Piece returns a copy of the falling piece, if any.
func (s *Session) Piece() (Piece, bool) {
	if s.piece == nil {
		return Piece{}, false
	}
	return *s.piece, true
}

func (s *Session) Over() bool {
	return s.over
}

func (s *Session) Stats() Stats {
	return s.stats
}

func (s *Session) Options() Options {
	return s.opts
}

// Move shifts the falling piece dx columns if the field allows it.
func (s *Session) Move(dx int) bool {
	if s.piece == nil || s.over {
		return false
	}

	next := field.Position{X: s.piece.Pos.X + dx, Y: s.piece.Pos.Y}
	if !s.field.CanMove(s.piece.Shape, next) {
		return false
	}

	s.piece.Pos = next
	s.lockTimer = 0
	s.grounded = !s.canFall()
	return true
}

// StepDown moves the falling piece one row down if the field allows it.
func (s *Session) StepDown() bool {
	if s.piece == nil || s.over || !s.canFall() {
		return false
	}

	s.piece.Pos.Y++
	s.fallTimer = 0
	s.grounded = !s.canFall()
	return true
}

// SetSoftDrop switches gravity between the fall and soft drop intervals.
func (s *Session) SetSoftDrop(on bool) {
	s.softDropping = on
}

// HardDrop moves the falling piece to its resting row and locks it.
func (s *Session) HardDrop() {
	if s.piece == nil || s.over {
		return
	}

	s.piece.Pos = s.field.Drop(s.piece.Shape, s.piece.Pos)
	s.lock()
}

// Teleport places the falling piece at pos if the field allows it. Unlike
// Move it does not check the cells between the old and new position.
func (s *Session) Teleport(pos field.Position) bool {
	if s.piece == nil || s.over || !s.field.CanMove(s.piece.Shape, pos) {
		return false
	}

	s.piece.Pos = pos
	s.lockTimer = 0
	s.grounded = !s.canFall()
	return true
}

// Ghost returns where the falling piece would land after a hard drop.
func (s *Session) Ghost() (field.Position, bool) {
	if s.piece == nil {
		return field.Position{}, false
	}
	return s.field.Drop(s.piece.Shape, s.piece.Pos), true
}

// Frame returns a copy of the field with the falling piece merged in. The
// copy is the renderer's to keep; changing it does not affect the session.
func (s *Session) Frame() *field.Field {
	frame := field.DeepCopy(s.field)
	if s.piece != nil {
		frame.Update(s.piece.Shape, s.piece.Pos)
	}
	return frame
}

func (s *Session) canFall() bool {
	return s.field.CanMove(s.piece.Shape, field.Position{X: s.piece.Pos.X, Y: s.piece.Pos.Y + 1})
}

func (s *Session) lock() {
	piece := *s.piece
	s.field.Update(piece.Shape, piece.Pos)

	s.piece = nil
	s.lockTimer = 0
	s.fallTimer = 0
	s.grounded = false
	s.needsClear = true
	s.stats.Locked++

	s.emit(Event{Kind: EventLocked, Piece: piece})
}

func (s *Session) spawn() {
	kind := s.nextKind()
	shape := s.opts.Shapes[kind].Clone()

	piece := &Piece{
		Kind:  kind,
		Shape: shape,
		Pos:   field.Position{X: (s.opts.Columns - shape.Width()) / 2, Y: 0},
	}

	if !s.field.CanMove(piece.Shape, piece.Pos) {
		s.over = true
		s.emit(Event{Kind: EventGameOver, Piece: *piece})
		return
	}

	s.piece = piece
	s.fallTimer = 0
	s.lockTimer = 0
	s.grounded = !s.canFall()
	s.stats.Spawned++

	s.emit(Event{Kind: EventSpawned, Piece: *piece})
}

func (s *Session) nextKind() int {
	if len(s.bag) == 0 {
		for i := range s.opts.Shapes {
			s.bag = append(s.bag, i)
		}
		s.rng.Shuffle(len(s.bag), func(i, j int) {
			s.bag[i], s.bag[j] = s.bag[j], s.bag[i]
		})
	}

	kind := s.bag[0]
	s.bag = s.bag[1:]
	return kind
}
