package bossfx

// App states of a stateful boss-fight app.
const (
	StateCombat State = iota
	StateCinematic
	StateResults
)

// CinematicDirector owns the running cutscene, if any.
type CinematicDirector struct {
	active *Sequencer
	last   *Sequencer
}

func (d *CinematicDirector) Active() *Sequencer { return d.active }

// Last returns the most recently started sequencer, finished or not.
func (d *CinematicDirector) Last() *Sequencer { return d.last }

// Start begins a cutscene and puts the game into cinematic mode. A cutscene
// already running is replaced.
func (d *CinematicDirector) Start(kind CinematicKind, game *GameState) *Sequencer {
	seq := NewSequencer(kind)
	d.active = seq
	d.last = seq
	if game != nil {
		game.CinematicMode = true
	}
	return seq
}

// CinematicModule steps the active cutscene every Update. With Stateful set
// the app must use StateCombat..StateResults: starting a cutscene moves the
// app to StateCinematic and completion moves it to StateResults.
type CinematicModule struct {
	Stateful bool
}

func (m CinematicModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&CinematicDirector{})
	if _, ok := Resource[Overlay](app); !ok {
		cmd.AddResources(NewOverlay())
	}

	if !m.Stateful {
		app.UseSystem(System(cinematicSystem).InStage(Update).RunAlways())
		return
	}
	app.UseSystem(System(cinematicTriggerSystem).InStage(PostUpdate).InState(OnExecute(StateCombat)))
	app.UseSystem(System(cinematicEnterSystem).InStage(Prelude).InState(OnEnter(StateCinematic)))
	app.UseSystem(System(cinematicSystem).InStage(Update).InState(OnExecute(StateCinematic)))
	app.UseSystem(System(cinematicResultsSystem).InStage(Prelude).InState(OnEnter(StateResults)))
}

func cinematicTriggerSystem(director *CinematicDirector, cmd *Commands) {
	if director.active != nil {
		cmd.ChangeState(StateCinematic)
	}
}

func cinematicEnterSystem(director *CinematicDirector, overlay *Overlay, cmd *Commands) {
	overlay.SetVisible(ContainerHUD, false)
	if seq := director.active; seq != nil {
		cmd.Logger().Infof("cinematic %s started (run %s)", seq.Kind, seq.RunId)
	}
}

func cinematicSystem(t *Time, director *CinematicDirector, arena *Arena, overlay *Overlay, game *GameState, cmd *Commands) {
	seq := director.active
	if seq == nil {
		return
	}
	before := seq.Phase()
	after := seq.Advance(CinematicContextFor(cmd, arena, overlay, game), t.Seconds())
	if after != before {
		cmd.Logger().Debugf("cinematic %s: %s -> %s at %.2fs", seq.Kind, before, after, seq.Elapsed())
	}
	if seq.Done() {
		director.active = nil
		cmd.Logger().Infof("cinematic %s complete (run %s, score %d)", seq.Kind, seq.RunId, int64(game.Score))
		if cmd.State() == StateCinematic {
			cmd.ChangeState(StateResults)
		}
	}
}

func cinematicResultsSystem(overlay *Overlay, game *GameState, cmd *Commands) {
	game.GameActive = false
	cmd.Logger().Infof("results: %q / %q", overlay.Text(SlotTitle), overlay.Text(SlotBody))
}
