package overlay

import "errors"

// ErrNoController is returned by a part that was not built from a controller.
var ErrNoController = errors.New("overlay: part used outside a controller")

// Trigger opens its overlay when activated.
type Trigger struct{ c *Controller }

// CloseControl closes its overlay when activated.
type CloseControl struct{ c *Controller }

// Content is the overlay body. It renders only while the overlay is open.
type Content struct{ c *Controller }

// Title labels the overlay body.
type Title struct{ c *Controller }

// Trigger returns the trigger part of c.
func (c *Controller) Trigger() Trigger { return Trigger{c: c} }

// CloseControl returns the close part of c.
func (c *Controller) CloseControl() CloseControl { return CloseControl{c: c} }

// Content returns the content part of c.
func (c *Controller) Content() Content { return Content{c: c} }

// Title returns the title part of c.
func (c *Controller) Title() Title { return Title{c: c} }

// Activate opens the overlay.
func (t Trigger) Activate() error {
	if t.c == nil {
		return ErrNoController
	}
	t.c.Open()
	return nil
}

// OwnerID returns the owner the trigger opens.
func (t Trigger) OwnerID() (string, error) {
	if t.c == nil {
		return "", ErrNoController
	}
	return t.c.OwnerID(), nil
}

// Activate closes the overlay.
func (cc CloseControl) Activate() error {
	if cc.c == nil {
		return ErrNoController
	}
	cc.c.Close()
	return nil
}

// Render returns body while the overlay is open and "" while it is closed.
// The caller places the result on the top layer, outside its own layout.
func (p Content) Render(body string) (string, error) {
	if p.c == nil {
		return "", ErrNoController
	}
	if !p.c.IsOpen() {
		return "", nil
	}
	return body, nil
}

// ZoneID returns the hit-test zone the rendered body must be marked with.
func (p Content) ZoneID() (string, error) {
	if p.c == nil {
		return "", ErrNoController
	}
	return p.c.ZoneID(), nil
}

// Render returns the title text of an attached overlay.
func (t Title) Render(text string) (string, error) {
	if t.c == nil {
		return "", ErrNoController
	}
	return text, nil
}
