// Package overlay manages the open/close lifecycle of a modal dialog.
//
// A Controller is Closed until its trigger fires. Entering Open acquires
// three things: the shared page ScrollLock, a global key listener (Escape
// closes) and a global pointer-press listener (a press outside the live
// content region closes). Every path out of Open releases all three: the
// close control, Escape, an outside press and Teardown.
//
// The pieces a view needs (trigger, content, close control, title) are parts
// built from one controller. They carry the controller explicitly instead of
// looking it up; a part that was built without one reports ErrNoController.
package overlay

import (
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arniber21/portfolio/internal/events"
	"github.com/arniber21/portfolio/internal/geom"
	"github.com/arniber21/portfolio/internal/logging"
)

var log = logging.New("overlay")

// ownerSeq hands out owner ids for controllers created without one.
var ownerSeq atomic.Int64

// State is the lifecycle state of a controller.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// CloseReason records which path closed the overlay.
type CloseReason string

const (
	ReasonCloseControl CloseReason = "close-control"
	ReasonOutsidePress CloseReason = "outside-press"
	ReasonEscape       CloseReason = "escape"
	ReasonTeardown     CloseReason = "teardown"
)

// RegionFunc reports the content's current bounding box. It is called at
// event time so the box always reflects the latest render. ok is false when
// the content has not been laid out yet.
type RegionFunc func() (r geom.Rect, ok bool)

// Option configures a Controller.
type Option func(*Controller)

// WithOwnerID sets the id correlating the trigger with its content.
func WithOwnerID(id string) Option {
	return func(c *Controller) {
		if id != "" {
			c.ownerID = id
		}
	}
}

// WithRegion sets the provider used for outside-press detection.
func WithRegion(fn RegionFunc) Option {
	return func(c *Controller) {
		c.region = fn
	}
}

// WithOnChange registers a callback for every open/close transition.
func WithOnChange(fn func(open bool, reason CloseReason)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// Controller owns the open flag of one overlay.
type Controller struct {
	ownerID  string
	state    State
	bus      *events.Bus
	scroll   *ScrollLock
	region   RegionFunc
	onChange func(open bool, reason CloseReason)

	releaseKey   func()
	releasePress func()
}

// New returns a Closed controller that registers its listeners on bus and
// suspends scroll through lock while open.
func New(bus *events.Bus, lock *ScrollLock, opts ...Option) *Controller {
	c := &Controller{
		bus:    bus,
		scroll: lock,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.ownerID == "" {
		c.ownerID = fmt.Sprintf("overlay-%d", ownerSeq.Add(1))
	}
	return c
}

// OwnerID returns the id shared by this overlay's trigger and content.
func (c *Controller) OwnerID() string {
	if c == nil {
		return ""
	}
	return c.ownerID
}

// ZoneID is the hit-test zone name the content is marked with.
func (c *Controller) ZoneID() string {
	return "dialog-" + c.OwnerID()
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	if c == nil {
		return Closed
	}
	return c.state
}

// IsOpen reports whether the overlay is visible.
func (c *Controller) IsOpen() bool {
	return c.State() == Open
}

// SetRegion replaces the content region provider.
func (c *Controller) SetRegion(fn RegionFunc) {
	if c == nil {
		return
	}
	c.region = fn
}

// Open moves Closed to Open. Opening an open overlay is a no-op.
func (c *Controller) Open() {
	if c == nil || c.state == Open {
		return
	}
	c.state = Open
	c.scroll.Suspend(c.ownerID)
	c.releaseKey = c.bus.OnKey(c.handleKey)
	c.releasePress = c.bus.OnPress(c.handlePress)
	log.Debug("overlay opened", "owner", c.ownerID)
	if c.onChange != nil {
		c.onChange(true, "")
	}
}

// Close is the close-control path.
func (c *Controller) Close() {
	c.close(ReasonCloseControl)
}

// Teardown closes the overlay when its owner goes away. It is safe to call
// on a closed controller.
func (c *Controller) Teardown() {
	c.close(ReasonTeardown)
}

func (c *Controller) close(reason CloseReason) {
	if c == nil || c.state != Open {
		return
	}
	c.state = Closed
	if c.releaseKey != nil {
		c.releaseKey()
		c.releaseKey = nil
	}
	if c.releasePress != nil {
		c.releasePress()
		c.releasePress = nil
	}
	c.scroll.Resume(c.ownerID)
	log.Debug("overlay closed", "owner", c.ownerID, "reason", string(reason))
	if c.onChange != nil {
		c.onChange(false, reason)
	}
}

func (c *Controller) handleKey(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyEsc {
		return false
	}
	c.close(ReasonEscape)
	return true
}

// handlePress closes on a press outside the content box. Presses inside are
// left for the content itself.
func (c *Controller) handlePress(msg tea.MouseMsg) bool {
	if c.region == nil {
		return false
	}
	r, ok := c.region()
	if !ok || r.Contains(msg.X, msg.Y) {
		return false
	}
	c.close(ReasonOutsidePress)
	return true
}
