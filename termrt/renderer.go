// Package termrt draws the boss fight onto a terminal: the camera view is
// projected onto the character grid, particles blend additively per cell and
// the overlay is printed on top.
package termrt

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mattn/go-runewidth"

	"github.com/gekko3d/bossfx"
)

// cellAspect is how much taller a terminal cell is than it is wide.
const cellAspect = 2.0

type Body struct {
	Position mgl32.Vec3
	Glyph    rune
	Color    mgl32.Vec3
}

// Frame is everything one Draw call needs.
type Frame struct {
	Camera  bossfx.TransformComponent
	Lens    bossfx.CameraComponent
	Cloud   *bossfx.PointCloud
	Bodies  []Body
	Overlay *bossfx.Overlay
	HUD     string
}

type Renderer struct {
	screen tcell.Screen
	accum  []mgl32.Vec3
	w, h   int

	// Frames counts Draw calls, Uploads counts frames with a dirty cloud.
	Frames  uint64
	Uploads uint64
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func (r *Renderer) Screen() tcell.Screen { return r.screen }

// Project maps a world point to a cell. ok is false behind the camera or off screen.
func Project(camera bossfx.TransformComponent, lens bossfx.CameraComponent, w, h int, p mgl32.Vec3) (x, y int, ok bool) {
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	eye := camera.Position
	view := mgl32.LookAtV(eye, eye.Add(camera.ViewDirection()), camera.Up())
	aspect := float32(w) / (float32(h) * cellAspect)
	proj := mgl32.Perspective(mgl32.DegToRad(lens.Fov), aspect, lens.Near, lens.Far)

	clip := proj.Mul4(view).Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	nx, ny := clip.X()/clip.W(), clip.Y()/clip.W()
	if nx < -1 || nx > 1 || ny < -1 || ny > 1 {
		return 0, 0, false
	}
	x = int((nx + 1) / 2 * float32(w))
	y = int((1 - ny) / 2 * float32(h))
	return min(x, w-1), min(y, h-1), true
}

func (r *Renderer) Draw(f Frame) {
	r.Frames++
	w, h := r.screen.Size()
	if w != r.w || h != r.h || r.accum == nil {
		r.w, r.h = w, h
		r.accum = make([]mgl32.Vec3, w*h)
	}
	for i := range r.accum {
		r.accum[i] = mgl32.Vec3{}
	}

	r.screen.Clear()
	if f.Lens.Fov == 0 {
		f.Lens = bossfx.CameraComponent{Fov: 60, Near: 0.1, Far: 200}
	}

	if f.Cloud != nil {
		if f.Cloud.Consume() {
			r.Uploads++
		}
		for i := 0; i < f.Cloud.DrawCount; i++ {
			p, c := f.Cloud.Point(i)
			x, y, ok := Project(f.Camera, f.Lens, w, h, p)
			if !ok {
				continue
			}
			if f.Cloud.Additive {
				r.accum[y*w+x] = r.accum[y*w+x].Add(c.Mul(f.Cloud.Opacity))
			} else {
				r.accum[y*w+x] = c.Mul(f.Cloud.Opacity)
			}
		}
		for i, c := range r.accum {
			if lum := max(c[0], c[1], c[2]); lum > 0.05 {
				r.screen.SetContent(i%w, i/w, particleGlyph(lum), nil, tcell.StyleDefault.Foreground(rgb(c)))
			}
		}
	}

	for _, b := range f.Bodies {
		if x, y, ok := Project(f.Camera, f.Lens, w, h, b.Position); ok {
			r.screen.SetContent(x, y, b.Glyph, nil, tcell.StyleDefault.Foreground(rgb(b.Color)).Bold(true))
		}
	}

	if f.Overlay != nil {
		if f.HUD != "" && f.Overlay.Visible(bossfx.ContainerHUD) {
			r.print(0, 0, f.HUD, tcell.StyleDefault.Foreground(tcell.ColorWhite))
		}
		if f.Overlay.Visible(bossfx.ContainerOverlay) {
			title := f.Overlay.Text(bossfx.SlotTitle)
			body := f.Overlay.Text(bossfx.SlotBody)
			r.print((w-runewidth.StringWidth(title))/2, h/2-1, title, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
			r.print((w-runewidth.StringWidth(body))/2, h/2+1, body, tcell.StyleDefault.Foreground(tcell.ColorWhite))
		}
	}
	r.screen.Show()
}

func (r *Renderer) print(x, y int, s string, style tcell.Style) {
	if y < 0 || y >= r.h {
		return
	}
	for _, ch := range s {
		if x >= 0 && x < r.w {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x += runewidth.RuneWidth(ch)
	}
}

func particleGlyph(lum float32) rune {
	switch {
	case lum > 0.9:
		return '@'
	case lum > 0.5:
		return '*'
	case lum > 0.2:
		return '+'
	}
	return '.'
}

func rgb(c mgl32.Vec3) tcell.Color {
	channel := func(v float32) int32 { return int32(mgl32.Clamp(v, 0, 1) * 255) }
	return tcell.NewRGBColor(channel(c[0]), channel(c[1]), channel(c[2]))
}
