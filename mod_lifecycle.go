package bossfx

// LifetimeComponent despawns its entity after TimeLeft seconds. A non-nil
// Fuse is spawned as an impact where the entity stood when it expires, which
// is how delayed and chained bursts are scheduled.
type LifetimeComponent struct {
	TimeLeft float32
	Fuse     *ImpactComponent
}

// LifecycleModule counts lifetimes down in PreUpdate. A burnt out fuse is
// flushed at the end of the stage and goes off on the next PreUpdate.
type LifecycleModule struct{}

func (LifecycleModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(lifetimeSystem).
			InStage(PreUpdate).
			RunAlways(),
	)
}

func lifetimeSystem(t *Time, cmd *Commands) {
	dt := t.Seconds()
	if dt <= 0 {
		return
	}
	MakeQuery2[LifetimeComponent, TransformComponent](cmd).Map(func(eid EntityId, lt *LifetimeComponent, tr *TransformComponent) bool {
		lt.TimeLeft -= dt
		if lt.TimeLeft > 0 {
			return true
		}
		if lt.Fuse != nil {
			burst := *lt.Fuse
			if tr != nil {
				burst.Position = tr.Position
			}
			cmd.AddEntity(&burst)
		}
		cmd.RemoveEntity(eid)
		return true
	}, TransformComponent{})
}

// Delayed queues impact to go off after delay seconds at its own position.
func Delayed(cmd *Commands, delay float32, impact ImpactComponent) EntityId {
	tr := NewTransform(impact.Position)
	return cmd.AddEntity(&tr, &LifetimeComponent{TimeLeft: delay, Fuse: &impact})
}
