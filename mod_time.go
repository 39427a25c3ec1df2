package bossfx

import (
	"time"
)

type Time struct {
	Time    time.Time
	Dt      time.Duration
	Elapsed time.Duration
	Frame   uint64
}

// Seconds returns the frame delta in seconds.
func (t *Time) Seconds() float32 {
	return float32(t.Dt.Seconds())
}

// TimeModule measures wall time between frames. With Fixed set every frame
// advances by exactly Fixed, which keeps tests and replays deterministic.
type TimeModule struct {
	Fixed time.Duration
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Time{Time: time.Now()})
	if mod.Fixed > 0 {
		fixed := mod.Fixed
		app.UseSystem(System(func(t *Time) { advanceTime(t, t.Time.Add(fixed)) }).InStage(Prelude))
		return
	}
	app.UseSystem(System(timeSystem).InStage(Prelude))
}

func timeSystem(timeResource *Time) {
	advanceTime(timeResource, time.Now())
}

func advanceTime(t *Time, now time.Time) {
	t.Dt = now.Sub(t.Time)
	t.Time = now
	t.Elapsed += t.Dt
	t.Frame++
}
