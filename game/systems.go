package game

import (
	"github.com/plus3/blockfield/field"
	"github.com/plus3/blockfield/lookahead"
)

// GravitySystem moves the falling piece down one row per fall interval and
// tracks how long it has been resting on something.
type GravitySystem struct{}

func (g *GravitySystem) Execute(frame *UpdateFrame) {
	s := frame.Session
	if s.piece == nil || s.over {
		return
	}

	interval := s.opts.Fall
	if s.softDropping {
		interval = s.opts.SoftDrop
	}

	s.fallTimer += frame.DeltaTime
	if s.fallTimer >= interval.Seconds() {
		s.fallTimer = 0
		if s.canFall() {
			s.piece.Pos.Y++
		}
	}

	s.grounded = !s.canFall()
	if s.grounded {
		s.lockTimer += frame.DeltaTime
	} else {
		s.lockTimer = 0
	}
}

// LockSystem merges a grounded piece into the field once the lock delay has
// passed.
type LockSystem struct{}

func (l *LockSystem) Execute(frame *UpdateFrame) {
	s := frame.Session
	if s.piece == nil || s.over || !s.grounded {
		return
	}

	if s.lockTimer >= s.opts.LockDelay.Seconds() {
		s.lock()
	}
}

// ClearSystem removes full rows after a piece has locked.
type ClearSystem struct{}

func (c *ClearSystem) Execute(frame *UpdateFrame) {
	s := frame.Session
	if !s.needsClear {
		return
	}
	s.needsClear = false

	if rows := s.field.ClearRows(); rows > 0 {
		s.stats.RowsCleared += rows
		s.emit(Event{Kind: EventCleared, Rows: rows})
	}
}

// SpawnSystem brings in the next piece when none is falling. The game is
// over when the new piece does not fit.
type SpawnSystem struct{}

func (sp *SpawnSystem) Execute(frame *UpdateFrame) {
	s := frame.Session
	if s.piece != nil || s.over || s.needsClear {
		return
	}
	s.spawn()
}

// AutopilotSystem places every new piece where the evaluator ranks it best
// and drops it.
type AutopilotSystem struct {
	Evaluator *lookahead.Evaluator

	// Err holds the last evaluation error, if any.
	Err error
}

func (a *AutopilotSystem) Execute(frame *UpdateFrame) {
	s := frame.Session
	if s.piece == nil || s.over {
		return
	}

	if a.Evaluator == nil {
		a.Evaluator = lookahead.New()
	}

	best, ok, err := a.Evaluator.Best(frame.Context, s.field, s.piece.Shape, s.piece.Pos)
	if err != nil {
		a.Err = err
		return
	}
	if ok {
		s.Teleport(field.Position{X: best.Position.X, Y: s.piece.Pos.Y})
	}
	s.HardDrop()
}

// DefaultSystems returns gravity, lock, clear and spawn in the order they
// must run.
func DefaultSystems() []System {
	return []System{
		&GravitySystem{},
		&LockSystem{},
		&ClearSystem{},
		&SpawnSystem{},
	}
}
