package bossfx

// Overlay slots and containers written by the cinematics.
const (
	SlotTitle = "overlay.title"
	SlotBody  = "overlay.body"

	ContainerOverlay = "overlay"
	ContainerHUD     = "ui-layer"
)

// Overlay is the 2D UI layer: named text slots and named containers that are
// either shown or hidden. The renderer reads it every frame.
type Overlay struct {
	text    map[string]string
	visible map[string]bool
	version uint64
}

func NewOverlay() *Overlay {
	return &Overlay{
		text:    make(map[string]string),
		visible: make(map[string]bool),
	}
}

func (o *Overlay) SetText(slot, text string) {
	if o.text[slot] == text {
		return
	}
	o.text[slot] = text
	o.version++
}

func (o *Overlay) Text(slot string) string { return o.text[slot] }

func (o *Overlay) SetVisible(container string, visible bool) {
	if o.visible[container] == visible {
		return
	}
	o.visible[container] = visible
	o.version++
}

func (o *Overlay) Visible(container string) bool { return o.visible[container] }

// Version increases on every change, so renderers can skip redundant redraws.
func (o *Overlay) Version() uint64 { return o.version }

// ShowResult fills the result panel and reveals it together with the HUD.
func (o *Overlay) ShowResult(title, body string) {
	o.SetText(SlotTitle, title)
	o.SetText(SlotBody, body)
	o.SetVisible(ContainerOverlay, true)
	o.SetVisible(ContainerHUD, true)
}
