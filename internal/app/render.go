// render.go implements cached markdown rendering for the detail dialogs.
//
// Rendering markdown through Glamour is relatively expensive, so this module
// applies two optimizations to keep the UI responsive:
//
// # Async rendering
//
// requestDialogRender increments a sequence number and hands the markdown to
// a background Cmd. Results carrying an older sequence number, or a key that
// is no longer the open dialog, are cached but not displayed.
//
// # Caching
//
// Completed renders are cached by dialog key, Glamour style and width bucket,
// so reopening a dialog or flipping the theme back is instant. Glamour
// TermRenderer instances are themselves cached per style and width in an LRU
// protected by a mutex, since renders run on background goroutines.
package app

import (
	"container/list"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// renderCacheEntry stores a completed render alongside the inputs that
// produced it.
type renderCacheEntry struct {
	width   int    // width bucket used for word wrapping
	style   string // glamour standard style
	content string // ANSI-formatted rendered output
}

// renderResultMsg carries the completed render output back from the async
// render Cmd to the Update loop.
type renderResultMsg struct {
	key     string
	width   int
	style   string
	seq     int
	content string
}

type rendererKey struct {
	width int
	style string
}

var (
	// maxRendererCacheEntries bounds the number of Glamour renderers
	// retained in memory.
	maxRendererCacheEntries = 8

	rendererCacheMu    sync.Mutex
	rendererCache      = map[rendererKey]*glamour.TermRenderer{}
	rendererCacheOrder = list.New() // front = least recent
	rendererCacheNodes = map[rendererKey]*list.Element{}
)

func renderCacheKey(key, style string, width int) string {
	return fmt.Sprintf("%s@%s/%d", key, style, width)
}

// requestDialogRender shows the rendered body of d, from cache when possible.
func (m *Model) requestDialogRender(d *dialog) tea.Cmd {
	if d == nil {
		return nil
	}
	width := renderWidthBucket(m.dialogView.Width)
	style := m.palette.GlamourStyle()
	if entry, ok := m.renderCache[renderCacheKey(d.key, style, width)]; ok {
		m.dialogView.SetContent(entry.content)
		m.dialogView.GotoTop()
		m.rendering = false
		return nil
	}
	m.rendering = true
	m.dialogView.SetContent(m.spinner.View() + " Rendering...")
	m.dialogView.GotoTop()
	m.renderSeq++
	return renderMarkdownCmd(d.key, d.markdown(m.portfolio), width, style, m.renderSeq)
}

// renderMarkdownCmd renders on a background goroutine and reports back with
// a renderResultMsg.
func renderMarkdownCmd(key, markdown string, width int, style string, seq int) tea.Cmd {
	return func() tea.Msg {
		return renderResultMsg{
			key:     key,
			width:   width,
			style:   style,
			seq:     seq,
			content: renderMarkdown(markdown, width, style),
		}
	}
}

// handleRenderResult caches the render and shows it if it is still current.
func (m *Model) handleRenderResult(msg renderResultMsg) (tea.Model, tea.Cmd) {
	m.renderCache[renderCacheKey(msg.key, msg.style, msg.width)] = renderCacheEntry{
		width:   msg.width,
		style:   msg.style,
		content: msg.content,
	}
	if msg.seq != m.renderSeq || msg.key != m.active {
		return m, nil
	}
	if msg.width == renderWidthBucket(m.dialogView.Width) && msg.style == m.palette.GlamourStyle() {
		m.dialogView.SetContent(msg.content)
		m.rendering = false
	}
	return m, nil
}

// renderMarkdown converts markdown to ANSI output. If renderer creation or
// rendering fails, the raw markdown is returned so the user still sees it.
func renderMarkdown(content string, width int, style string) string {
	if width <= 0 {
		width = 80
	}
	renderer, err := getRenderer(width, style)
	if err != nil {
		appLog.Error("create markdown renderer", "width", width, "style", style, "error", err)
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		appLog.Error("render markdown content", "width", width, "style", style, "error", err)
		return content
	}
	return out
}

// getRenderer returns a cached Glamour TermRenderer for the given width and
// style, creating one if it doesn't exist.
func getRenderer(width int, style string) (*glamour.TermRenderer, error) {
	if width <= 0 {
		width = 80
	}
	key := rendererKey{width: width, style: glamourStyle(style)}
	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	if renderer, ok := rendererCache[key]; ok {
		if node, ok := rendererCacheNodes[key]; ok {
			rendererCacheOrder.MoveToBack(node)
		}
		return renderer, nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(key.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	rendererCache[key] = renderer
	rendererCacheNodes[key] = rendererCacheOrder.PushBack(key)
	evictOldestRendererIfNeeded()
	return renderer, nil
}

func evictOldestRendererIfNeeded() {
	for len(rendererCache) > maxRendererCacheEntries && rendererCacheOrder.Len() > 0 {
		oldest := rendererCacheOrder.Front()
		key, _ := oldest.Value.(rendererKey)
		rendererCacheOrder.Remove(oldest)
		delete(rendererCache, key)
		delete(rendererCacheNodes, key)
	}
}

func resetRendererCacheForTests() {
	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	rendererCache = map[rendererKey]*glamour.TermRenderer{}
	rendererCacheOrder = list.New()
	rendererCacheNodes = map[rendererKey]*list.Element{}
}

// glamourStyle restricts the style to the standard ones; the palette only
// ever asks for dark or light, "notty" is kept for plain output.
func glamourStyle(style string) string {
	switch style {
	case "dark", "light", "notty":
		return style
	default:
		return "dark"
	}
}
