package core

// StatelessBase supplies CreateElement and a nil Key for stateless widgets.
// Embed it and implement Build.
type StatelessBase struct{}

func (StatelessBase) CreateElement() Element { return NewStatelessElement() }

func (StatelessBase) Key() any { return nil }

// StatefulBase supplies CreateElement and a nil Key for stateful widgets
// such as expandable.Card. Embed it and implement CreateState.
type StatefulBase struct{}

func (StatefulBase) CreateElement() Element { return NewStatefulElement() }

func (StatefulBase) Key() any { return nil }

// RenderObjectBase supplies CreateElement and a nil Key for widgets that
// own a render object. Single-child widgets also implement ChildWidget,
// multi-child widgets ChildrenWidgets.
type RenderObjectBase struct{}

func (RenderObjectBase) CreateElement() Element { return NewRenderObjectElement() }

func (RenderObjectBase) Key() any { return nil }
