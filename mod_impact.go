package bossfx

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ImpactComponent is a one-frame event: a particle burst plus camera trauma.
// Impact entities are consumed and despawned in PreUpdate.
type ImpactComponent struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
	Count    int
	Speed    float32
	Spread   float32
	Life     float32
	Trauma   float32
}

// Common impacts of the fight.
func RifleHit(at mgl32.Vec3) ImpactComponent {
	return ImpactComponent{Position: at, Color: mgl32.Vec3{1, 0.8, 0.3}, Count: 12, Speed: 2, Spread: 0.5, Life: 0.4, Trauma: 0.05}
}

func DirectHit(at mgl32.Vec3) ImpactComponent {
	return ImpactComponent{Position: at, Color: mgl32.Vec3{1, 0.3, 0.1}, Count: 120, Speed: 5, Spread: 1, Life: 1, Trauma: 0.5}
}

func BossSlam(at mgl32.Vec3) ImpactComponent {
	return ImpactComponent{Position: at, Color: mgl32.Vec3{0.6, 0.2, 1}, Count: 200, Speed: 4, Spread: 3, Life: 1.5, Trauma: 0.8}
}

func BossDeath(at mgl32.Vec3) ImpactComponent {
	return ImpactComponent{Position: at, Color: mgl32.Vec3{1, 0.85, 0.2}, Count: 1500, Speed: 6, Spread: 4, Life: 3, Trauma: 1}
}

type ImpactModule struct{}

func (ImpactModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(impactSystem).
			InStage(PreUpdate).
			RunAlways(),
	)
}

func impactSystem(cmd *Commands, pool *ParticlePool, shake *CameraShake) {
	MakeQuery1[ImpactComponent](cmd).Map(func(eid EntityId, im *ImpactComponent) bool {
		n := pool.Emit(im.Position, im.Color, im.Count, im.Speed, im.Spread, im.Life)
		if n < im.Count {
			cmd.Logger().Debugf("impact %v: emitted %d of %d particles (pool full)", eid, n, im.Count)
		}
		shake.AddTrauma(im.Trauma)
		cmd.RemoveEntity(eid)
		return true
	})
}
