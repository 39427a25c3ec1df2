package bossfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlay_VersionTracksChanges(t *testing.T) {
	o := NewOverlay()
	assert.Equal(t, uint64(0), o.Version())

	o.SetText(SlotTitle, "hello")
	o.SetText(SlotTitle, "hello")
	assert.Equal(t, uint64(1), o.Version(), "rewriting the same text is not a change")

	o.SetVisible(ContainerHUD, false)
	assert.Equal(t, uint64(1), o.Version(), "containers start hidden")
	o.SetVisible(ContainerHUD, true)
	assert.Equal(t, uint64(2), o.Version())
	assert.True(t, o.Visible(ContainerHUD))
}

func TestOverlay_ShowResult(t *testing.T) {
	o := NewOverlay()
	o.ShowResult(DefeatTitle, DefeatBody)

	assert.Equal(t, DefeatTitle, o.Text(SlotTitle))
	assert.Equal(t, DefeatBody, o.Text(SlotBody))
	assert.True(t, o.Visible(ContainerOverlay))
	assert.True(t, o.Visible(ContainerHUD))
	assert.False(t, o.Visible("unknown"))
}
