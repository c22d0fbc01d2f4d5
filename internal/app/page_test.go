package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arniber21/portfolio/internal/content"
)

func TestBuildPageRecordsSectionsInOrder(t *testing.T) {
	m, _ := newTestModel(t)
	p := m.page

	prev := -1
	for _, s := range content.Sections() {
		line, ok := p.sections[s]
		require.True(t, ok, "missing section %s", s)
		assert.Greater(t, line, prev, "section %s out of order", s)
		prev = line
	}
	assert.Equal(t, 0, p.introLine)
	assert.Equal(t, 1, p.roleLine)
	assert.GreaterOrEqual(t, p.emailLine, p.sections[content.SectionConnect])
	assert.Equal(t, p.emailLine+1, p.linksLine)
	assert.Len(t, p.lines, p.linksLine+2)
}

func TestPageItemAt(t *testing.T) {
	m, _ := newTestModel(t)
	p := m.page

	for _, s := range []content.Section{content.SectionProjects, content.SectionWork, content.SectionWriting} {
		for _, sp := range p.spans[s] {
			for y := sp.start; y < sp.end; y++ {
				id, ok := p.itemAt(s, 0, y)
				require.True(t, ok)
				assert.Equal(t, sp.id, id)
			}
		}
	}

	_, ok := p.itemAt(content.SectionProjects, 0, p.sections[content.SectionProjects])
	assert.False(t, ok, "section heading is not an item")

	id, ok := p.itemAt(content.SectionConnect, 0, p.emailLine)
	require.True(t, ok)
	assert.Equal(t, emailID, id)
}

func TestLinkSlotsLeaveRoomForMagnets(t *testing.T) {
	m, _ := newTestModel(t)
	slots := m.page.links
	require.Len(t, slots, len(m.portfolio.Links))

	for i, slot := range slots {
		assert.GreaterOrEqual(t, slot.x, LinkMaxShift)
		id, ok := m.page.itemAt(content.SectionConnect, slot.x, m.page.linksLine)
		require.True(t, ok)
		assert.Equal(t, slot.id, id)
		if i > 0 {
			prev := slots[i-1]
			assert.GreaterOrEqual(t, slot.x-LinkMaxShift, prev.x+prev.w+LinkMaxShift)
		}
	}
	_, ok := m.page.itemAt(content.SectionConnect, 0, m.page.linksLine)
	assert.False(t, ok)
}

func TestSectionAt(t *testing.T) {
	m, _ := newTestModel(t)
	p := m.page
	assert.Equal(t, content.SectionAbout, p.sectionAt(0))
	work := p.sections[content.SectionWork]
	assert.Equal(t, content.SectionWork, p.sectionAt(work))
	assert.Equal(t, content.SectionProjects, p.sectionAt(work-1))
	assert.Equal(t, content.SectionConnect, p.sectionAt(len(p.lines)-1))
}

func TestComposePageMarksHighlightGutter(t *testing.T) {
	m, _ := newTestModel(t)
	sp := m.page.spans[content.SectionProjects][0]
	m.lists[content.SectionProjects].SetActive(sp.id)
	m.composePage()

	m.viewport.SetYOffset(sp.start)
	lines := strings.Split(m.viewport.View(), "\n")
	assert.Contains(t, lines[0], "▌")
	assert.Contains(t, lines[sp.end-sp.start], "  ")
	assert.NotContains(t, lines[sp.end-sp.start], "▌")
}
