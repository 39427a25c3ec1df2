package main

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/bossfx"
)

// demoHPScale shortens the fight so the cutscene shows up within seconds.
const demoHPScale = 0.05

const (
	tracerLife       = 0.12
	deathAftershocks = 4
	aftershockGap    = 0.6 // seconds between the death bursts
)

// fight is a scripted stand-in for combat: it trades blows on timers taken
// from the balance table until one side runs out of HP.
type fight struct {
	outcome bossfx.CinematicKind
	bossHP  float32
	rng     *rand.Rand

	rifleTimer  float32
	directTimer float32
	slamTimer   float32
}

type fightModule struct {
	outcome bossfx.CinematicKind
	seed    int64
}

func (m fightModule) Install(app *bossfx.App, cmd *bossfx.Commands) {
	cfg, _ := bossfx.Resource[bossfx.Config](app)
	game, _ := bossfx.Resource[bossfx.GameState](app)
	overlay, _ := bossfx.Resource[bossfx.Overlay](app)

	cmd.AddResources(&fight{
		outcome: m.outcome,
		bossHP:  cfg.Balance.BossMaxHP * demoHPScale,
		rng:     rand.New(rand.NewSource(m.seed)),
	})
	game.GameActive = true
	overlay.SetVisible(bossfx.ContainerHUD, true)

	app.UseSystem(
		bossfx.System(fightSystem).
			InStage(bossfx.Update).
			InState(bossfx.OnExecute(bossfx.StateCombat)),
	)
}

func fightSystem(t *bossfx.Time, f *fight, cfg *bossfx.Config, game *bossfx.GameState, stats *bossfx.PlayerStats, arena *bossfx.Arena, director *bossfx.CinematicDirector, cmd *bossfx.Commands) {
	if game.CinematicMode {
		return
	}
	dt := t.Seconds()
	game.Time += float64(dt)
	b := cfg.Balance

	boss := bossfx.Component[bossfx.TransformComponent](cmd, arena.Boss)
	player := bossfx.Component[bossfx.TransformComponent](cmd, arena.Player)
	if boss == nil || player == nil {
		return
	}

	f.rifleTimer += dt * 1000
	f.directTimer += dt * 1000
	f.slamTimer += dt * 1000

	if f.rifleTimer >= b.RifleRate {
		f.rifleTimer = 0
		if f.outcome == bossfx.CinematicVictory {
			f.bossHP -= b.RifleDmg
			game.Score += float64(b.RifleDmg)
		}
		hit := bossfx.RifleHit(boss.Position.Add(f.jitter(2)))
		cmd.AddEntity(&hit)
		f.tracer(cmd, player.Position, hit.Position)
	}
	if f.directTimer >= 3*b.DirectHitCd {
		f.directTimer = 0
		if f.outcome == bossfx.CinematicVictory {
			f.bossHP -= b.DirectHitDmg
			game.Score += float64(b.DirectHitDmg)
		}
		hit := bossfx.DirectHit(boss.Position.Add(f.jitter(1)))
		cmd.AddEntity(&hit)
	}
	if f.slamTimer >= float32(game.Difficulty.Aggression) {
		f.slamTimer = 0
		if f.outcome == bossfx.CinematicDefeat {
			damage(stats, b.VoidCannonDmg*game.Difficulty.Mult)
		}
		slam := bossfx.BossSlam(player.Position)
		cmd.AddEntity(&slam)
	}

	switch {
	case f.bossHP <= 0:
		death := bossfx.BossDeath(boss.Position)
		cmd.AddEntity(&death)
		for i := 1; i <= deathAftershocks; i++ {
			shock := bossfx.DirectHit(boss.Position.Add(f.jitter(3)))
			bossfx.Delayed(cmd, float32(i)*aftershockGap, shock)
		}
		director.Start(bossfx.CinematicVictory, game)
	case stats.HP <= 0:
		director.Start(bossfx.CinematicDefeat, game)
	}
}

// tracer draws a short-lived streak halfway along a rifle shot.
func (f *fight) tracer(cmd *bossfx.Commands, from, to mgl32.Vec3) {
	tr := bossfx.NewTransform(from.Add(to).Mul(0.5))
	cmd.AddEntity(
		&tr,
		&bossfx.BodyComponent{Role: bossfx.RoleEffect, Visible: true, Glyph: '-', Color: mgl32.Vec3{1, 0.9, 0.5}},
		&bossfx.LifetimeComponent{TimeLeft: tracerLife},
	)
}

// damage drains the shield before HP.
func damage(stats *bossfx.PlayerStats, amount float32) {
	absorbed := min(stats.Shield, amount)
	stats.Shield -= absorbed
	stats.HP = max(0, stats.HP-(amount-absorbed))
}

func (f *fight) jitter(r float32) mgl32.Vec3 {
	return mgl32.Vec3{(f.rng.Float32() - 0.5) * r, f.rng.Float32() * r, (f.rng.Float32() - 0.5) * r}
}
