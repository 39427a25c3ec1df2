package termrt

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/gekko3d/bossfx"
)

// Module draws the scene in the Render stage.
type Module struct {
	Screen tcell.Screen
}

func (m Module) Install(app *bossfx.App, cmd *bossfx.Commands) {
	cmd.AddResources(NewRenderer(m.Screen))
	app.UseSystem(
		bossfx.System(renderSystem).
			InStage(bossfx.Render).
			RunAlways(),
	)
}

func renderSystem(r *Renderer, pool *bossfx.ParticlePool, overlay *bossfx.Overlay, game *bossfx.GameState, stats *bossfx.PlayerStats, cmd *bossfx.Commands) {
	f := Frame{
		Cloud:   pool.Cloud(),
		Overlay: overlay,
		HUD:     fmt.Sprintf("SCORE %d   HP %.0f/%.0f   SHIELD %.0f   %s", int64(game.Score), stats.HP, stats.MaxHP, stats.Shield, game.Difficulty.Label),
	}
	bossfx.MakeQuery2[bossfx.TransformComponent, bossfx.CameraComponent](cmd).Map(func(eid bossfx.EntityId, tr *bossfx.TransformComponent, cam *bossfx.CameraComponent) bool {
		f.Camera = *tr
		f.Lens = *cam
		return false
	})
	bossfx.MakeQuery2[bossfx.TransformComponent, bossfx.BodyComponent](cmd).Map(func(eid bossfx.EntityId, tr *bossfx.TransformComponent, body *bossfx.BodyComponent) bool {
		// the dissolving boss disappears once it has shrunk to nothing
		if body.Visible && tr.Scale.X() > 0.05 {
			f.Bodies = append(f.Bodies, Body{Position: tr.Position, Glyph: body.Glyph, Color: body.Color})
		}
		return true
	})
	r.Draw(f)
}
