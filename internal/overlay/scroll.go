package overlay

// ScrollLock is the page-wide scroll suspension flag. While any owner holds
// it the page ignores scroll input.
//
// Holders are keyed by owner id, so Suspend and Resume are idempotent per
// owner and a second overlay cannot release the first one's hold. The app
// only ever opens one overlay at a time; the owner keys make that an
// assumption rather than a requirement.
type ScrollLock struct {
	owners map[string]struct{}
}

// NewScrollLock returns a released lock.
func NewScrollLock() *ScrollLock {
	return &ScrollLock{owners: map[string]struct{}{}}
}

// Suspend takes the lock on behalf of owner.
func (l *ScrollLock) Suspend(owner string) {
	if l == nil {
		return
	}
	if l.owners == nil {
		l.owners = map[string]struct{}{}
	}
	l.owners[owner] = struct{}{}
}

// Resume drops owner's hold. Resuming an owner that holds nothing is a no-op.
func (l *ScrollLock) Resume(owner string) {
	if l == nil {
		return
	}
	delete(l.owners, owner)
}

// Suspended reports whether scrolling is currently disabled.
func (l *ScrollLock) Suspended() bool {
	return l != nil && len(l.owners) > 0
}

// Holders returns how many owners currently hold the lock.
func (l *ScrollLock) Holders() int {
	if l == nil {
		return 0
	}
	return len(l.owners)
}
