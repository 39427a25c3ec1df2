package bossfx

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	traumaDecayRate  = 1.5 // trauma lost per second
	shakeRollScale   = 0.2
	shakePitchScale  = 0.1
	shakeRelaxRate   = 5.0 // roll lerp factor per second once trauma is gone
	maxTraumaClamped = 1.0
)

// CameraShake accumulates trauma from impacts and turns it into camera jitter.
// Decay runs once per tick and samples that tick's jitter; Apply hands the
// same jitter to every camera.
type CameraShake struct {
	trauma float32
	rng    *rand.Rand

	active bool
	roll   float32
	pitch  float32
	offset mgl32.Vec3
}

func NewCameraShake(rng *rand.Rand) *CameraShake {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &CameraShake{rng: rng}
}

func (s *CameraShake) Trauma() float32 { return s.trauma }

// Shake is the visible intensity, trauma squared.
func (s *CameraShake) Shake() float32 { return s.trauma * s.trauma }

// AddTrauma raises trauma by amount, saturating at 1.
func (s *CameraShake) AddTrauma(amount float32) {
	s.trauma = min(s.trauma+amount, maxTraumaClamped)
}

// Decay advances trauma by one tick of dt seconds and samples the jitter
// for that tick. Call it once per frame, however many cameras there are.
func (s *CameraShake) Decay(dt float32) {
	s.active = s.trauma > 0
	if !s.active {
		return
	}
	s.trauma = max(0, s.trauma-dt*traumaDecayRate)
	shake := s.Shake()
	s.roll = s.centered() * shakeRollScale * shake
	s.pitch = s.centered() * shakePitchScale * shake
	s.offset = mgl32.Vec3{
		s.centered() * shake,
		s.centered() * shake,
		s.centered() * shake,
	}
}

// Apply perturbs camera with the jitter of the last Decay. A tick that
// started without trauma eases the roll back to zero instead of snapping.
func (s *CameraShake) Apply(camera *TransformComponent, dt float32) {
	if !s.active {
		camera.Rotation[2] = lerp(camera.Rotation[2], 0, dt*shakeRelaxRate)
		return
	}
	camera.Rotation[2] = s.roll
	camera.Rotation[0] += s.pitch
	camera.Position = camera.Position.Add(s.offset)
}

// Update is one full tick for a single camera: Decay then Apply.
func (s *CameraShake) Update(camera *TransformComponent, dt float32) {
	s.Decay(dt)
	s.Apply(camera, dt)
}

func (s *CameraShake) centered() float32 {
	return s.rng.Float32() - 0.5
}

func lerp(a, b, t float32) float32 { return a + (b-a)*t }
