package bossfx

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

type CinematicKind int

const (
	CinematicVictory CinematicKind = iota
	CinematicDefeat
)

func (k CinematicKind) String() string {
	if k == CinematicDefeat {
		return "defeat"
	}
	return "victory"
}

// CinematicPhase values are ordered; a sequencer only ever moves forward.
type CinematicPhase int

const (
	PhasePending CinematicPhase = iota
	PhaseApproach
	PhaseDissolve
	PhaseCollapse
	PhaseComplete
)

func (p CinematicPhase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseApproach:
		return "approach"
	case PhaseDissolve:
		return "dissolve"
	case PhaseCollapse:
		return "collapse"
	case PhaseComplete:
		return "complete"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

const (
	victoryApproachEnd = 3.0
	victoryDissolveEnd = 6.0
	defeatCollapseEnd  = 2.0

	approachSpeed   = 2.0  // units per second toward the boss
	armWaveRate     = 10.0 // radians of sine argument per second
	bossShrinkStep  = 0.95 // scale factor per call, not per second
	bossSpinRate    = 5.0  // radians per second
	collapsedPitch  = -math.Pi / 2
	VictoryTitle    = "THE SULTAN HAS FALLEN"
	DefeatTitle     = "CRUSHED"
	DefeatBody      = "The Sultan reigns eternal."
	victoryBodyForm = "Score: %d"
)

// CinematicContext is everything a sequence step may touch. Nil transforms are skipped.
type CinematicContext struct {
	Player     *TransformComponent
	PlayerArm  *TransformComponent
	Boss       *TransformComponent
	Camera     *TransformComponent
	PlayerBody *BodyComponent
	Overlay    *Overlay
	Game       *GameState
}

// Sequencer runs one victory or defeat cutscene. The phase is chosen from
// the elapsed time on every step; completion effects apply exactly once.
type Sequencer struct {
	Kind    CinematicKind
	RunId   string
	phase   CinematicPhase
	elapsed float32
}

func NewSequencer(kind CinematicKind) *Sequencer {
	return &Sequencer{Kind: kind, RunId: uuid.NewString()}
}

func (s *Sequencer) Phase() CinematicPhase { return s.phase }

func (s *Sequencer) Elapsed() float32 { return s.elapsed }

func (s *Sequencer) Done() bool { return s.phase == PhaseComplete }

// Advance adds dt to the sequencer clock and steps at the new elapsed time.
func (s *Sequencer) Advance(ctx *CinematicContext, dt float32) CinematicPhase {
	return s.Step(ctx, dt, s.elapsed+dt)
}

// Step runs the phase selected by elapsed, the time since the cutscene began.
func (s *Sequencer) Step(ctx *CinematicContext, dt, elapsed float32) CinematicPhase {
	if s.phase == PhaseComplete {
		return s.phase
	}
	s.elapsed = elapsed
	s.phase = max(s.phase, s.phaseAt(elapsed))

	if ctx.PlayerBody != nil {
		ctx.PlayerBody.Visible = true
	}

	switch s.phase {
	case PhaseApproach:
		approach(ctx, dt, elapsed)
	case PhaseDissolve:
		dissolve(ctx, dt)
	case PhaseCollapse:
		collapse(ctx)
	case PhaseComplete:
		s.complete(ctx)
	}
	return s.phase
}

func (s *Sequencer) phaseAt(t float32) CinematicPhase {
	if s.Kind == CinematicDefeat {
		if t < defeatCollapseEnd {
			return PhaseCollapse
		}
		return PhaseComplete
	}
	switch {
	case t < victoryApproachEnd:
		return PhaseApproach
	case t < victoryDissolveEnd:
		return PhaseDissolve
	}
	return PhaseComplete
}

// approach walks the player toward the boss while the arm waves.
func approach(ctx *CinematicContext, dt, t float32) {
	if ctx.Player != nil && ctx.Boss != nil {
		dir := ctx.Boss.Position.Sub(ctx.Player.Position)
		if dir.Len() > 0 {
			ctx.Player.Position = ctx.Player.Position.Add(dir.Normalize().Mul(dt * approachSpeed))
		}
	}
	if ctx.PlayerArm != nil {
		ctx.PlayerArm.Rotation[0] = float32(math.Sin(float64(t * armWaveRate)))
	}
}

// dissolve shrinks and spins the boss; the player watches.
func dissolve(ctx *CinematicContext, dt float32) {
	if ctx.Boss == nil {
		return
	}
	ctx.Boss.Scale = ctx.Boss.Scale.Mul(bossShrinkStep)
	ctx.Boss.Rotation[1] += dt * bossSpinRate
	if ctx.Player != nil {
		ctx.Player.LookAt(ctx.Boss.Position)
	}
}

// collapse has the boss and camera stare at the fallen player.
func collapse(ctx *CinematicContext) {
	if ctx.Player == nil {
		return
	}
	if ctx.Boss != nil {
		ctx.Boss.LookAt(ctx.Player.Position)
	}
	if ctx.Camera != nil {
		ctx.Camera.CameraLookAt(ctx.Player.Position)
	}
	ctx.Player.Rotation[0] = collapsedPitch
}

func (s *Sequencer) complete(ctx *CinematicContext) {
	if ctx.Overlay != nil {
		if s.Kind == CinematicDefeat {
			ctx.Overlay.ShowResult(DefeatTitle, DefeatBody)
		} else {
			var score float64
			if ctx.Game != nil {
				score = ctx.Game.Score
			}
			ctx.Overlay.ShowResult(VictoryTitle, fmt.Sprintf(victoryBodyForm, int64(math.Floor(score))))
		}
	}
	if ctx.Game != nil {
		ctx.Game.CinematicMode = false
	}
}
