package bossfx

type AppBuilder struct {
	stateful     bool
	initialState State
	finalState   State
	modules      []Module
}

func NewAppBuilder() *AppBuilder {
	return &AppBuilder{}
}

func (b *AppBuilder) UseStates(initialState State, finalState State) *AppBuilder {
	b.stateful = true
	b.initialState = initialState
	b.finalState = finalState
	return b
}

func (b *AppBuilder) UseModule(modules ...Module) *AppBuilder {
	b.modules = append(b.modules, modules...)
	return b
}

func (b *AppBuilder) Build() *App {
	app := newApp(b.stateful, b.initialState, b.finalState)
	if b.stateful {
		app.state = b.initialState
	}
	app.UseModules(b.modules...)
	return app
}
