package expandable

// Controller drives a [Card] from outside its header.
//
// A controller attaches to one mounted card at a time. Calls made while no
// card is attached record a requested state, which the next card to attach
// adopts without animating. Otherwise the controller adopts the card's
// state on attach.
//
//	ctrl := expandable.NewController()
//	card := expandable.NewCard(headerSize, cardSize, header, body).WithController(ctrl)
//	...
//	ctrl.Expand()
type Controller struct {
	card      *cardState
	expanded  bool
	requested bool
	listeners []listenerEntry
	nextID    int
}

type listenerEntry struct {
	id int
	fn func()
}

// NewController returns a detached controller in the collapsed state.
func NewController() *Controller {
	return &Controller{}
}

// IsExpanded reports the state of the attached card, or the requested state
// when detached.
func (c *Controller) IsExpanded() bool {
	if c.card != nil {
		return c.card.model.IsExpanded()
	}
	return c.expanded
}

// Toggle flips the card exactly as a header tap would.
func (c *Controller) Toggle() {
	if c.card != nil {
		c.card.toggle()
		return
	}
	c.expanded = !c.expanded
	c.requested = true
	c.notify()
}

// Expand opens the card. It does nothing when already open.
func (c *Controller) Expand() {
	c.set(true)
}

// Collapse closes the card. It does nothing when already closed.
func (c *Controller) Collapse() {
	c.set(false)
}

func (c *Controller) set(expanded bool) {
	if c.IsExpanded() == expanded {
		return
	}
	c.Toggle()
}

// AddListener registers fn to run after every state change. Returns an
// unsubscribe function.
func (c *Controller) AddListener(fn func()) func() {
	id := c.nextID
	c.nextID++
	c.listeners = append(c.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i, entry := range c.listeners {
			if entry.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// Dispose detaches the card and drops all listeners.
func (c *Controller) Dispose() {
	c.card = nil
	c.listeners = nil
}

func (c *Controller) notify() {
	for _, entry := range append([]listenerEntry(nil), c.listeners...) {
		entry.fn()
	}
}

// attach binds a mounted card and returns the function that unbinds it.
func (c *Controller) attach(card *cardState) func() {
	c.card = card
	if c.requested {
		card.model.SetExpanded(c.expanded)
		c.requested = false
	}
	c.expanded = card.model.IsExpanded()
	return func() {
		if c.card != card {
			return
		}
		c.expanded = card.model.IsExpanded()
		c.card = nil
	}
}

// changed records a state change made by the attached card.
func (c *Controller) changed(card *cardState) {
	if c.card != card {
		return
	}
	c.expanded = card.model.IsExpanded()
	c.notify()
}
