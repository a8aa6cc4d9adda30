package grid

type readyHandler struct {
	id int
	fn func() error
}

// readySignal is a one-shot callback list. Firing consumes every handler;
// later fires and late subscriptions do nothing.
type readySignal struct {
	fired    bool
	handlers []readyHandler
	nextID   int
}

func (s *readySignal) subscribe(fn func() error) (cancel func()) {
	if s.fired {
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.handlers = append(s.handlers, readyHandler{id: id, fn: fn})
	return func() {
		for i, h := range s.handlers {
			if h.id == id {
				s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
				return
			}
		}
	}
}

// fire runs the subscribed handlers in order and stops at the first error.
func (s *readySignal) fire() error {
	if s.fired {
		return nil
	}
	s.fired = true
	handlers := s.handlers
	s.handlers = nil

	for _, h := range handlers {
		if err := h.fn(); err != nil {
			return err
		}
	}
	return nil
}

// OnReady registers fn to run when e first becomes ready. Handlers
// registered after the signal fired never run. The returned function
// removes the registration if the signal has not fired yet.
func (e *Element) OnReady(fn func(*Element) error) (cancel func()) {
	return e.ready.subscribe(func() error {
		return fn(e)
	})
}

// NotifyReady delivers the ready signal to e. Only the first call runs
// the registered handlers; it returns the first handler error.
// Later calls return nil.
func (e *Element) NotifyReady() error {
	return e.ready.fire()
}

// IsReady reports whether the ready signal has been delivered.
func (e *Element) IsReady() bool {
	return e.ready.fired
}
