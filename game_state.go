package bossfx

import (
	"github.com/google/uuid"
)

// GameState is the record shared by gameplay and the effect systems.
// The cinematic reads Score and clears CinematicMode when it completes.
type GameState struct {
	SessionId     string
	Difficulty    Difficulty
	GameActive    bool
	CinematicMode bool
	Score         float64
	Time          float64
}

func NewGameState(difficulty Difficulty) *GameState {
	return &GameState{
		SessionId:  uuid.NewString(),
		Difficulty: difficulty,
	}
}

// PlayerStats are the player's live combat numbers.
type PlayerStats struct {
	HP, MaxHP, Shield float32

	RifleActive bool
	RifleAmmo   int

	ThrowTimer     float32
	AttackTimer    float32
	DirectHitTimer float32

	BastionActive bool
	BastionTimer  float32
}

func NewPlayerStats(cfg Config) *PlayerStats {
	return &PlayerStats{
		HP:     cfg.Player.HP,
		MaxHP:  cfg.Player.MaxHP,
		Shield: cfg.Player.Shield,
	}
}

// GameStateModule installs the config-derived game records as resources.
type GameStateModule struct {
	Config     Config
	Difficulty string
}

func (m GameStateModule) Install(app *App, cmd *Commands) {
	cfg := m.Config
	if cfg.Difficulties == nil {
		cfg = DefaultConfig()
	}
	name := m.Difficulty
	if name == "" {
		name = "NORMAL"
	}
	d, err := cfg.Difficulty(name)
	if err != nil {
		cmd.Logger().Warnf("%v; falling back to NORMAL", err)
		d = cfg.Difficulties["NORMAL"]
	}
	state := NewGameState(d)
	cmd.AddResources(&cfg, state, NewPlayerStats(cfg))
	cmd.Logger().Infof("session %s: difficulty %s (%s, x%.1f damage)", state.SessionId, d.Name, d.Label, d.Mult)
}
