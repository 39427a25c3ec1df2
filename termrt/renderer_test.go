package termrt

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/bossfx"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)
	return s
}

func testCamera() (bossfx.TransformComponent, bossfx.CameraComponent) {
	return bossfx.NewTransform(mgl32.Vec3{0, 0, 10}), bossfx.CameraComponent{Fov: 60, Near: 0.1, Far: 200}
}

func runeAt(s tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestProject(t *testing.T) {
	cam, lens := testCamera()

	x, y, ok := Project(cam, lens, 80, 24, mgl32.Vec3{})
	require.True(t, ok)
	assert.Equal(t, 40, x)
	assert.Equal(t, 12, y)

	_, _, ok = Project(cam, lens, 80, 24, mgl32.Vec3{0, 0, 20})
	assert.False(t, ok, "behind the camera")

	_, _, ok = Project(cam, lens, 80, 24, mgl32.Vec3{500, 0, 0})
	assert.False(t, ok, "outside the frustum")

	_, _, ok = Project(cam, lens, 0, 0, mgl32.Vec3{})
	assert.False(t, ok)
}

func TestRenderer_DrawsParticlesAndConsumesCloud(t *testing.T) {
	s := newSimScreen(t)
	r := NewRenderer(s)
	cam, lens := testCamera()

	cloud := &bossfx.PointCloud{
		Positions:      []float32{0, 0, 0},
		Colors:         []float32{1, 1, 1},
		DrawCount:      1,
		PositionsDirty: true,
		ColorsDirty:    true,
		Opacity:        1,
		Additive:       true,
	}
	r.Draw(Frame{Camera: cam, Lens: lens, Cloud: cloud})

	assert.Equal(t, '@', runeAt(s, 40, 12))
	assert.Equal(t, uint64(1), r.Frames)
	assert.Equal(t, uint64(1), r.Uploads)
	assert.False(t, cloud.PositionsDirty)
	assert.False(t, cloud.ColorsDirty)

	r.Draw(Frame{Camera: cam, Lens: lens, Cloud: cloud})
	assert.Equal(t, uint64(2), r.Frames)
	assert.Equal(t, uint64(1), r.Uploads, "clean cloud is not uploaded again")
}

func TestRenderer_DimParticlesUseLighterGlyphs(t *testing.T) {
	s := newSimScreen(t)
	r := NewRenderer(s)
	cam, lens := testCamera()

	cloud := &bossfx.PointCloud{
		Positions: []float32{0, 0, 0},
		Colors:    []float32{0.3, 0.3, 0.3},
		DrawCount: 1,
		Opacity:   1,
		Additive:  true,
	}
	r.Draw(Frame{Camera: cam, Lens: lens, Cloud: cloud})
	assert.Equal(t, '+', runeAt(s, 40, 12))

	assert.Equal(t, '.', particleGlyph(0.1))
	assert.Equal(t, '*', particleGlyph(0.6))
}

func TestRenderer_DrawsBodiesAndOverlay(t *testing.T) {
	s := newSimScreen(t)
	r := NewRenderer(s)
	cam, lens := testCamera()

	overlay := bossfx.NewOverlay()
	overlay.ShowResult(bossfx.DefeatTitle, bossfx.DefeatBody)

	r.Draw(Frame{
		Camera:  cam,
		Lens:    lens,
		Bodies:  []Body{{Position: mgl32.Vec3{}, Glyph: 'S', Color: mgl32.Vec3{1, 0.75, 0.1}}},
		Overlay: overlay,
		HUD:     "SCORE 7",
	})

	assert.Equal(t, 'S', runeAt(s, 40, 12))
	assert.Equal(t, 'S', runeAt(s, 0, 0))
	assert.Equal(t, '7', runeAt(s, 6, 0))
	titleX := (80 - len(bossfx.DefeatTitle)) / 2
	assert.Equal(t, 'C', runeAt(s, titleX, 11))
	assert.Equal(t, 'D', runeAt(s, titleX+len(bossfx.DefeatTitle)-1, 11))
	bodyX := (80 - len(bossfx.DefeatBody)) / 2
	assert.Equal(t, 'T', runeAt(s, bodyX, 13))
}

func TestRenderer_HiddenOverlayIsNotDrawn(t *testing.T) {
	s := newSimScreen(t)
	r := NewRenderer(s)
	cam, lens := testCamera()

	overlay := bossfx.NewOverlay()
	overlay.SetText(bossfx.SlotTitle, "HIDDEN")
	r.Draw(Frame{Camera: cam, Lens: lens, Overlay: overlay, HUD: "SCORE 0"})

	assert.Equal(t, ' ', runeAt(s, 0, 0))
	assert.Equal(t, ' ', runeAt(s, (80-6)/2, 11))
}
