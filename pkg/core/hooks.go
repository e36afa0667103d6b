package core

// UseController creates a controller owned by s. It is disposed together
// with the state.
func UseController[C Disposable](s stateBase, create func() C) C {
	c := create()
	s.state().OnDispose(c.Dispose)
	return c
}

// UseListenable rebuilds s whenever l notifies, until s is disposed.
func UseListenable(s stateBase, l Listenable) {
	base := s.state()
	base.OnDispose(l.AddListener(func() { base.SetState(nil) }))
}
