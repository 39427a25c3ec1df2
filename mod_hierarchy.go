package bossfx

// Parent attaches an entity to another one.
type Parent struct {
	Entity EntityId
}

// LocalTransformComponent is a child's transform relative to its parent.
// Position is carried through the parent's scale and basis; rotation and
// scale are not inherited, so a waving arm keeps its own angles.
type LocalTransformComponent struct {
	TransformComponent
}

type HierarchyModule struct{}

func (HierarchyModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(TransformHierarchySystem).
			InStage(PostUpdate).
			RunAlways(),
	)
}

// maxHierarchyDepth bounds the propagation passes per frame.
const maxHierarchyDepth = 8

// TransformHierarchySystem derives the world TransformComponent of every child
// from its parent's world transform. Deeper chains settle over repeated passes.
func TransformHierarchySystem(cmd *Commands) {
	for pass := 0; pass < maxHierarchyDepth; pass++ {
		changed := false
		MakeQuery3[LocalTransformComponent, Parent, TransformComponent](cmd).Map(func(eid EntityId, local *LocalTransformComponent, parent *Parent, world *TransformComponent) bool {
			pw := Component[TransformComponent](cmd, parent.Entity)
			if pw == nil {
				return true
			}
			offset := mul3(local.Position, pw.Scale)
			next := TransformComponent{
				Position: pw.Position.Add(pw.Basis().Mul3x1(offset)),
				Rotation: local.Rotation,
				Scale:    local.Scale,
			}
			if next != *world {
				*world = next
				changed = true
			}
			return true
		})
		if !changed {
			return
		}
	}
}
