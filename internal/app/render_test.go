package app

import (
	"strings"
	"testing"

	"github.com/arniber21/portfolio/internal/content"
)

func TestRequestRenderUsesCachedEntryWhenStyleAndWidthMatch(t *testing.T) {
	m, _ := newTestModel(t)
	d := m.dialogs[dialogKey(content.SectionProjects, "project-1")]
	width := renderWidthBucket(m.dialogView.Width)
	style := m.palette.GlamourStyle()
	m.renderCache[renderCacheKey(d.key, style, width)] = renderCacheEntry{
		width:   width,
		style:   style,
		content: "cached-render-output",
	}
	m.renderSeq = 9

	if cmd := m.requestDialogRender(d); cmd != nil {
		t.Fatal("expected no render command on cache hit")
	}
	if !strings.Contains(m.dialogView.View(), "cached-render-output") {
		t.Fatalf("expected cached content in dialog, got %q", m.dialogView.View())
	}
	if m.rendering {
		t.Fatal("expected rendering to be false on cache hit")
	}
	if m.renderSeq != 9 {
		t.Fatalf("expected renderSeq to stay 9, got %d", m.renderSeq)
	}
}

func TestRequestRenderStartsAsyncRenderWhenCacheMissing(t *testing.T) {
	m, _ := newTestModel(t)
	d := m.dialogs[dialogKey(content.SectionWriting, "owl")]

	cmd := m.requestDialogRender(d)
	if cmd == nil {
		t.Fatal("expected render command on cache miss")
	}
	if !m.rendering {
		t.Fatal("expected rendering to be true on cache miss")
	}
	if m.renderSeq != 1 {
		t.Fatalf("expected render sequence 1, got %d", m.renderSeq)
	}
	if !strings.Contains(m.dialogView.View(), "Rendering...") {
		t.Fatalf("expected rendering indicator in dialog, got %q", m.dialogView.View())
	}
}

func TestRenderResultForClosedDialogIsCachedOnly(t *testing.T) {
	m, _ := newTestModel(t)
	width := renderWidthBucket(m.dialogView.Width)
	style := m.palette.GlamourStyle()
	key := dialogKey(content.SectionWriting, "owl")

	m.Update(renderResultMsg{key: key, width: width, style: style, seq: 0, content: "late"})
	if _, ok := m.renderCache[renderCacheKey(key, style, width)]; !ok {
		t.Fatal("expected late render to be cached")
	}
	if strings.Contains(m.dialogView.View(), "late") {
		t.Fatal("expected late render to stay off screen")
	}
}

func TestRenderResultWithStaleSequenceIsNotShown(t *testing.T) {
	m, _ := newTestModel(t)
	d := openProject(t, m, "project-1")
	width := renderWidthBucket(m.dialogView.Width)
	style := m.palette.GlamourStyle()

	m.Update(renderResultMsg{key: d.key, width: width, style: style, seq: m.renderSeq - 1, content: "stale"})
	if strings.Contains(m.dialogView.View(), "stale") {
		t.Fatal("expected stale render to be dropped")
	}
	m.Update(renderResultMsg{key: d.key, width: width, style: style, seq: m.renderSeq, content: "fresh"})
	if !strings.Contains(m.dialogView.View(), "fresh") {
		t.Fatalf("expected current render, got %q", m.dialogView.View())
	}
	if m.rendering {
		t.Fatal("expected rendering to finish")
	}
}

func TestRenderMarkdownProducesOutput(t *testing.T) {
	resetRendererCacheForTests()
	out := renderMarkdown("**Stack:** Go", 40, "dark")
	if !strings.Contains(out, "Stack") {
		t.Fatalf("expected rendered text, got %q", out)
	}
}

func TestRendererCacheEvictsLeastRecentlyUsed(t *testing.T) {
	resetRendererCacheForTests()
	prev := maxRendererCacheEntries
	maxRendererCacheEntries = 2
	t.Cleanup(func() {
		maxRendererCacheEntries = prev
		resetRendererCacheForTests()
	})

	for _, width := range []int{40, 50, 40, 60} {
		if _, err := getRenderer(width, "dark"); err != nil {
			t.Fatalf("getRenderer(%d): %v", width, err)
		}
	}
	if len(rendererCache) != 2 {
		t.Fatalf("expected 2 cached renderers, got %d", len(rendererCache))
	}
	if _, ok := rendererCache[rendererKey{width: 50, style: "dark"}]; ok {
		t.Fatal("expected width 50 to be evicted")
	}
	if _, ok := rendererCache[rendererKey{width: 40, style: "dark"}]; !ok {
		t.Fatal("expected recently used width 40 to survive")
	}
}

func TestGlamourStyleFallsBackToDark(t *testing.T) {
	cases := map[string]string{"dark": "dark", "light": "light", "notty": "notty", "dracula": "dark", "": "dark"}
	for in, want := range cases {
		if got := glamourStyle(in); got != want {
			t.Fatalf("glamourStyle(%q) = %q, want %q", in, got, want)
		}
	}
}
