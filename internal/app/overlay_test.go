package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arniber21/portfolio/internal/content"
	"github.com/arniber21/portfolio/internal/geom"
)

func openProject(t *testing.T, m *Model, id string) *dialog {
	t.Helper()
	x, y := pointAt(t, m, content.SectionProjects, id)
	_, cmd := m.Update(press(x, y))
	require.NotNil(t, cmd, "expected a render command")
	d, ok := m.activeDialog()
	require.True(t, ok, "expected %s to be open", id)
	return d
}

func TestClickProjectOpensDialog(t *testing.T) {
	m, _ := newTestModel(t)
	d := openProject(t, m, "project-2")

	assert.Equal(t, dialogKey(content.SectionProjects, "project-2"), d.key)
	assert.Equal(t, "Fern", d.title)
	assert.True(t, m.scroll.Suspended())
	assert.Equal(t, 1, m.bus.KeyListeners())
	assert.Equal(t, 1, m.bus.PressListeners())
	assert.Contains(t, m.status, "Fern")
}

func TestOpenDialogBlocksPageScroll(t *testing.T) {
	m, _ := newTestModel(t)
	openProject(t, m, "project-1")
	offset := m.viewport.YOffset

	m.Update(wheelDown(10, 10))
	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, offset, m.viewport.YOffset)

	m.nav.SetActive(content.SectionConnect.String())
	assert.Equal(t, offset, m.viewport.YOffset)
}

func TestOutsidePressClosesAndReleases(t *testing.T) {
	m, env := newTestModel(t)
	d := openProject(t, m, "project-1")
	env.zones[d.ctrl.ZoneID()] = geom.Rect{X: 12, Y: 6, W: 76, H: 20}

	m.Update(press(1, 30))
	assert.False(t, d.ctrl.IsOpen())
	assert.False(t, m.scroll.Suspended())
	assert.Equal(t, 0, m.bus.KeyListeners())
	assert.Equal(t, 0, m.bus.PressListeners())
	assert.Equal(t, "", m.active)
	assert.Equal(t, "Closed", m.status)

	_, open := m.activeDialog()
	assert.False(t, open, "closing press must not reach the page")
}

func TestInsidePressKeepsDialogOpen(t *testing.T) {
	m, env := newTestModel(t)
	d := openProject(t, m, "project-1")
	env.zones[d.ctrl.ZoneID()] = geom.Rect{X: 12, Y: 6, W: 76, H: 20}

	m.Update(press(20, 10))
	assert.True(t, d.ctrl.IsOpen())
	assert.True(t, m.scroll.Suspended())
}

func TestPressWithoutRenderedRegionKeepsDialogOpen(t *testing.T) {
	m, _ := newTestModel(t)
	d := openProject(t, m, "project-1")

	m.Update(press(0, 0))
	assert.True(t, d.ctrl.IsOpen())
}

func TestEscapeClosesDialog(t *testing.T) {
	m, _ := newTestModel(t)
	d := openProject(t, m, "project-3")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, d.ctrl.IsOpen())
	assert.False(t, m.scroll.Suspended())
	assert.Equal(t, 0, m.bus.KeyListeners())

	// The next Escape reaches the page again.
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.overlayOpen())
}

func TestCloseKeyAndCloseButton(t *testing.T) {
	m, env := newTestModel(t)
	d := openProject(t, m, "project-1")
	m.Update(keyRunes("x"))
	assert.False(t, d.ctrl.IsOpen())

	d = openProject(t, m, "project-1")
	env.zones[d.ctrl.ZoneID()] = geom.Rect{X: 12, Y: 6, W: 76, H: 20}
	env.zones[closeZoneID(d.ctrl)] = geom.Rect{X: 80, Y: 7, W: 3, H: 1}
	m.Update(press(81, 7))
	assert.False(t, d.ctrl.IsOpen())
	assert.Equal(t, 0, m.bus.PressListeners())
}

func TestOnlyOneDialogOpens(t *testing.T) {
	m, _ := newTestModel(t)
	openProject(t, m, "project-1")

	assert.Nil(t, m.openDialog(content.SectionWriting, "fern"))
	assert.Equal(t, dialogKey(content.SectionProjects, "project-1"), m.active)
	assert.Equal(t, 1, m.scroll.Holders())
}

func TestDialogCopyUsesClipboard(t *testing.T) {
	m, env := newTestModel(t)
	openProject(t, m, "project-1")

	_, cmd := m.Update(keyRunes("y"))
	require.NotNil(t, cmd)
	drain(m, cmd)
	assert.Equal(t, []string{"https://github.com/arniber21/owl"}, env.clipboard)
	assert.Equal(t, "Copied Owl link", m.status)
}

func TestHelpPopupLifecycle(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(keyRunes("?"))
	require.True(t, m.helpPopup.IsOpen())
	assert.True(t, m.scroll.Suspended())
	assert.Contains(t, m.View(), "Keys")

	m.Update(keyRunes("?"))
	assert.False(t, m.helpPopup.IsOpen())
	assert.False(t, m.scroll.Suspended())
	assert.Equal(t, 0, m.bus.KeyListeners())
}

func TestTeardownClosesEverything(t *testing.T) {
	m, _ := newTestModel(t)
	openProject(t, m, "project-1")
	status := m.status

	m.Teardown()
	assert.False(t, m.overlayOpen())
	assert.Equal(t, 0, m.bus.KeyListeners())
	assert.Equal(t, 0, m.bus.PressListeners())
	assert.Equal(t, status, m.status, "teardown is silent")
}

func TestDialogMarkdown(t *testing.T) {
	m, _ := newTestModel(t)

	project := m.dialogs[dialogKey(content.SectionProjects, "project-1")]
	body := project.markdown(m.portfolio)
	assert.Contains(t, body, "**Source:** https://github.com/arniber21/owl")
	assert.Contains(t, body, "**Read more:**")

	post := m.dialogs[dialogKey(content.SectionWriting, "hindley-milner")]
	assert.Contains(t, post.markdown(m.portfolio), "**Read:**")
}

func TestViewShowsOpenDialog(t *testing.T) {
	m, _ := newTestModel(t)
	d := openProject(t, m, "project-2")
	m.Update(renderResultMsg{
		key:     d.key,
		width:   renderWidthBucket(m.dialogView.Width),
		style:   m.palette.GlamourStyle(),
		seq:     m.renderSeq,
		content: "fern body",
	})

	view := m.View()
	assert.Contains(t, view, "Fern")
	assert.Contains(t, view, "fern body")
	assert.Contains(t, view, "[×]")
}
