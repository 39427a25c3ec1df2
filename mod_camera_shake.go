package bossfx

import (
	"math/rand"
)

// CameraShakeModule installs the trauma accumulator. In PostUpdate trauma
// decays once and the same jitter is applied to every camera.
type CameraShakeModule struct {
	Seed int64
}

func (m CameraShakeModule) Install(app *App, cmd *Commands) {
	var rng *rand.Rand
	if m.Seed != 0 {
		rng = rand.New(rand.NewSource(m.Seed))
	}
	cmd.AddResources(NewCameraShake(rng))
	app.UseSystem(
		System(cameraShakeSystem).
			InStage(PostUpdate).
			RunAlways(),
	)
}

func cameraShakeSystem(t *Time, shake *CameraShake, cmd *Commands) {
	dt := t.Seconds()
	shake.Decay(dt)
	MakeQuery2[TransformComponent, CameraComponent](cmd).Map(func(eid EntityId, tr *TransformComponent, cam *CameraComponent) bool {
		shake.Apply(tr, dt)
		return true
	})
}
