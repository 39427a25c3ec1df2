package bossfx

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ArenaDef is the initial layout of the boss fight.
type ArenaDef struct {
	PlayerStart mgl32.Vec3
	BossStart   mgl32.Vec3
	CameraStart mgl32.Vec3
	BossScale   float32
	Camera      CameraComponent
}

func DefaultArena() ArenaDef {
	return ArenaDef{
		PlayerStart: mgl32.Vec3{0, 0, 12},
		BossStart:   mgl32.Vec3{0, 0, -6},
		CameraStart: mgl32.Vec3{0, 6, 24},
		BossScale:   3,
		Camera:      CameraComponent{Fov: 60, Near: 0.1, Far: 200},
	}
}

// armOffset places the arm at the player's right shoulder.
var armOffset = mgl32.Vec3{0.6, 1, 0}

// Arena remembers the spawned entities so systems can address them directly.
type Arena struct {
	Player    EntityId
	PlayerArm EntityId
	Boss      EntityId
	Camera    EntityId
}

// SpawnArena queues the player, its arm, the boss and the camera.
// The entities exist after the next command flush.
func SpawnArena(cmd *Commands, def ArenaDef) *Arena {
	bossTr := NewTransform(def.BossStart)
	if def.BossScale > 0 {
		bossTr.Scale = mgl32.Vec3{def.BossScale, def.BossScale, def.BossScale}
	}
	camTr := NewTransform(def.CameraStart)
	camTr.CameraLookAt(def.BossStart.Add(def.PlayerStart).Mul(0.5))

	arena := &Arena{}
	arena.Player = cmd.AddEntity(
		&TransformComponent{Position: def.PlayerStart, Scale: mgl32.Vec3{1, 1, 1}},
		&BodyComponent{Role: RolePlayer, Visible: true, Glyph: '@', Color: mgl32.Vec3{0.3, 0.8, 1}},
	)
	arm := NewTransform(def.PlayerStart.Add(armOffset))
	arena.PlayerArm = cmd.AddEntity(
		&arm,
		&LocalTransformComponent{NewTransform(armOffset)},
		&Parent{Entity: arena.Player},
		&BodyComponent{Role: RolePlayerArm, Glyph: '/', Visible: true, Color: mgl32.Vec3{0.3, 0.8, 1}},
	)
	arena.Boss = cmd.AddEntity(
		&bossTr,
		&BodyComponent{Role: RoleBoss, Visible: true, Glyph: 'S', Color: mgl32.Vec3{1, 0.75, 0.1}},
	)
	arena.Camera = cmd.AddEntity(&camTr, &def.Camera)
	return arena
}

// ArenaModule spawns the arena and publishes it as a resource. The arm is a
// child of the player, so the module installs the hierarchy system too.
type ArenaModule struct {
	Def ArenaDef
}

func (m ArenaModule) Install(app *App, cmd *Commands) {
	def := m.Def
	if def.Camera.Fov == 0 {
		def = DefaultArena()
	}
	cmd.AddResources(SpawnArena(cmd, def))
	HierarchyModule{}.Install(app, cmd)
}

// CinematicContextFor collects the arena's live transforms. The arm is posed
// through its local transform when it has one.
func CinematicContextFor(cmd *Commands, arena *Arena, overlay *Overlay, game *GameState) *CinematicContext {
	return &CinematicContext{
		Player:     Component[TransformComponent](cmd, arena.Player),
		PlayerArm:  poseOf(cmd, arena.PlayerArm),
		Boss:       Component[TransformComponent](cmd, arena.Boss),
		Camera:     Component[TransformComponent](cmd, arena.Camera),
		PlayerBody: Component[BodyComponent](cmd, arena.Player),
		Overlay:    overlay,
		Game:       game,
	}
}

func poseOf(cmd *Commands, eid EntityId) *TransformComponent {
	if local := Component[LocalTransformComponent](cmd, eid); local != nil {
		return &local.TransformComponent
	}
	return Component[TransformComponent](cmd, eid)
}
