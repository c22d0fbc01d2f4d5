package app

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/arniber21/portfolio/internal/config"
	"github.com/arniber21/portfolio/internal/content"
	"github.com/arniber21/portfolio/internal/events"
	"github.com/arniber21/portfolio/internal/geom"
	"github.com/arniber21/portfolio/internal/motion"
	"github.com/arniber21/portfolio/internal/overlay"
	"github.com/arniber21/portfolio/internal/selection"
	"github.com/arniber21/portfolio/internal/theme"
)

// Options configures a Model.
type Options struct {
	Content content.Portfolio
	Theme   theme.Mode

	// SaveTheme persists a theme picked in the UI. Defaults to
	// config.SaveTheme; a nil-returning stub keeps tests off the disk.
	SaveTheme func(theme.Mode) error
	// DarkBackground resolves the system theme. Defaults to
	// theme.DetectDark.
	DarkBackground func() bool
	// Clipboard writes copied links. Defaults to clipboard.WriteAll.
	Clipboard func(string) error
}

// Model holds the Bubble Tea state for the entire UI.
type Model struct {
	portfolio content.Portfolio

	// Interaction primitives
	bus         *events.Bus
	scroll      *overlay.ScrollLock
	zones       *zone.Manager
	zoneRect    func(id string) (geom.Rect, bool)
	nav         *selection.Tracker
	navSyncing  bool
	themeSwitch *selection.Tracker
	lists       map[content.Section]*selection.Tracker
	dialogs     map[string]*dialog
	dialogOrder []string
	helpPopup   *overlay.Controller
	active      string // key of the open dialog, "" when none

	// Theme
	themeMode      theme.Mode
	palette        theme.Palette
	styles         styles
	saveTheme      func(theme.Mode) error
	darkBackground func() bool
	writeClipboard func(string) error

	// Page
	page            page
	viewport        viewport.Model
	dialogView      viewport.Model
	header          headerLayout
	showAllProjects bool
	query           string
	filter          textinput.Model
	filtering       bool

	// Motion
	roles         motion.TextLoop
	intro         motion.Reveal
	magnets       map[string]*motion.Magnetic
	magnetsMoving bool
	animating     bool
	frameSeq      int
	pointer       pointerState

	// Dialog rendering
	spinner     spinner.Model
	rendering   bool
	renderSeq   int
	renderCache map[string]renderCacheEntry

	// Layout sizing
	width  int
	height int
	layout LayoutDimensions

	keys     keyMap
	help     help.Model
	status   string
	quitting bool
}

type pointerState struct {
	x, y   int
	inside bool
}

// New prepares the initial UI model.
func New(opts Options) *Model {
	saveTheme := opts.SaveTheme
	if saveTheme == nil {
		saveTheme = config.SaveTheme
	}
	darkBackground := opts.DarkBackground
	if darkBackground == nil {
		darkBackground = theme.DetectDark
	}
	writeClipboard := opts.Clipboard
	if writeClipboard == nil {
		writeClipboard = clipboard.WriteAll
	}
	mode, err := theme.Parse(string(opts.Theme))
	if err != nil {
		mode = theme.System
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := &Model{
		portfolio:      opts.Content,
		bus:            events.NewBus(),
		scroll:         overlay.NewScrollLock(),
		zones:          zone.New(),
		lists:          map[content.Section]*selection.Tracker{},
		dialogs:        map[string]*dialog{},
		magnets:        map[string]*motion.Magnetic{},
		saveTheme:      saveTheme,
		darkBackground: darkBackground,
		writeClipboard: writeClipboard,
		viewport:       viewport.New(0, 0),
		dialogView:     viewport.New(0, 0),
		filter:         newFilterInput(),
		roles:          motion.NewTextLoop(opts.Content.Roles...),
		intro:          motion.NewReveal(opts.Content.Name, motion.PerChar),
		spinner:        spin,
		renderCache:    map[string]renderCacheEntry{},
		keys:           defaultKeyMap(),
		help:           help.New(),
		status:         "Ready",
	}
	m.zoneRect = func(id string) (geom.Rect, bool) {
		return overlay.ZoneRegion(m.zones, id)()
	}

	m.nav = selection.New(selection.ModeClick,
		selection.WithDefault(content.SectionAbout.String()),
		selection.WithOnChange(m.onNavChange),
	)
	navItems := make([]selection.Item, 0, len(content.Sections()))
	for _, s := range content.Sections() {
		navItems = append(navItems, selection.Item{ID: s.String(), Content: s.Title()})
	}
	m.nav.SetItems(navItems)

	m.themeSwitch = selection.New(selection.ModeClick,
		selection.WithDefault(string(mode)),
		selection.WithOnChange(m.onThemeChange),
	)
	themeItems := make([]selection.Item, 0, len(theme.Modes()))
	for _, candidate := range theme.Modes() {
		themeItems = append(themeItems, selection.Item{ID: string(candidate), Content: candidate.Icon()})
	}
	m.themeSwitch.SetItems(themeItems)

	for _, s := range listSections {
		m.lists[s] = selection.New(selection.ModeHover)
	}
	for _, link := range opts.Content.Links {
		m.magnets[link.Label] = motion.NewMagnetic(int(1/FrameInterval.Seconds()), LinkIntensity, LinkRange)
	}

	m.buildDialogs()
	m.helpPopup = overlay.New(m.bus, m.scroll,
		overlay.WithOwnerID("help"),
		overlay.WithOnChange(m.onOverlayChange("help")),
	)
	m.helpPopup.SetRegion(m.regionFor(m.helpPopup.ZoneID()))

	m.applyTheme(mode)
	return m
}

// Init starts the spinner, the role loop and the intro reveal.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.roles.Start(), m.intro.Start())
}

// Update is the Bubble Tea update loop: handle events and emit commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	case frameMsg:
		return m.handleFrame(msg)
	case motion.LoopTickMsg:
		var cmd tea.Cmd
		m.roles, cmd = m.roles.Update(msg)
		m.composePage()
		return m, cmd
	case motion.RevealTickMsg:
		var cmd tea.Cmd
		m.intro, cmd = m.intro.Update(msg)
		m.composePage()
		return m, cmd
	case renderResultMsg:
		return m.handleRenderResult(msg)
	case clipboardResultMsg:
		return m.handleClipboardResult(msg)
	}
	return m, nil
}

// Teardown closes every open overlay. It runs before the program exits.
func (m *Model) Teardown() {
	for _, key := range m.dialogOrder {
		m.dialogs[key].ctrl.Teardown()
	}
	m.helpPopup.Teardown()
}

// Close releases the zone manager's worker.
func (m *Model) Close() {
	if m.zones != nil {
		m.zones.Close()
	}
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.Teardown()
	m.quitting = true
	m.roles.Stop()
	return m, tea.Quit
}

// regionFor returns a region provider that reads the zone at event time.
func (m *Model) regionFor(id string) overlay.RegionFunc {
	return func() (geom.Rect, bool) {
		return m.zoneRect(id)
	}
}

// relayout recomputes the layout, rebuilds the page and re-registers item
// bounds with the trackers.
func (m *Model) relayout() {
	m.layout = m.calculateLayout()
	m.applyLayout(m.layout)
	m.header = m.layoutHeader(m.layout)
	m.page = m.buildPage(max(0, m.layout.PageWidth-GutterWidth))
	m.syncTrackers()
	m.composePage()
}

// syncTrackers registers the laid-out items with every tracker. Header
// bounds are screen cells; list bounds are page cells.
func (m *Model) syncTrackers() {
	for _, tab := range m.header.tabs {
		m.nav.SetBounds(tab.id, geom.Rect{X: m.layout.PageLeft + tab.x, Y: 0, W: tab.w, H: 1})
	}
	for _, opt := range m.header.themes {
		m.themeSwitch.SetBounds(opt.id, geom.Rect{X: m.layout.PageLeft + opt.x, Y: 0, W: opt.w, H: 1})
	}

	for _, s := range listSections {
		tracker := m.lists[s]
		spans := m.page.spans[s]
		items := make([]selection.Item, 0, len(spans))
		for _, sp := range spans {
			items = append(items, selection.Item{ID: sp.id})
		}
		tracker.SetItems(items)
		for _, sp := range spans {
			r := geom.Rect{X: 0, Y: sp.start, W: m.page.width, H: sp.end - sp.start}
			if s == content.SectionConnect {
				if slot, ok := m.page.link(sp.id); ok {
					r = geom.Rect{X: slot.x, Y: sp.start, W: slot.w, H: 1}
				}
			}
			tracker.SetBounds(sp.id, r)
		}
	}
}

// overlayOpen reports whether any overlay holds the page.
func (m *Model) overlayOpen() bool {
	return m.scroll.Suspended()
}
