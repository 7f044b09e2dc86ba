package gallery

import (
	"sync"

	"skylight/internal/features/gallery/models"
)

// Controller owns the gallery's presentation state. A load cycle moves it
// from idle or a settled state into loading, and settling installs a whole
// new snapshot. The previous snapshot is replaced, never merged into.
type Controller struct {
	mu       sync.Mutex
	state    models.State
	snapshot models.GalleryView
	lastErr  error
}

// NewController creates a controller in the idle state
func NewController() *Controller {
	return &Controller{
		state: models.StateIdle,
	}
}

// Begin moves the controller into loading. It reports false when a load is
// already in flight, leaving the in-flight load undisturbed.
func (c *Controller) Begin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == models.StateLoading {
		return false
	}

	c.state = models.StateLoading
	return true
}

// Finish installs the freshly reconciled snapshot and settles into rendered
func (c *Controller) Finish(view models.GalleryView) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = view
	c.lastErr = nil
	c.state = models.StateRendered
}

// Fail installs the degraded snapshot, records the failure and settles into
// error. Settling always re-enables the next load.
func (c *Controller) Fail(view models.GalleryView, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = view
	c.lastErr = err
	c.state = models.StateError
}

// State returns the controller's current state
func (c *Controller) State() models.State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// LastError returns the failure recorded by the most recent failed load
func (c *Controller) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lastErr
}

// View returns the current snapshot annotated with the controller's state
func (c *Controller) View() models.GalleryView {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := c.snapshot
	view.State = c.state
	return view
}
