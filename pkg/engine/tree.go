package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/tomortec/drift-expandable/pkg/core"
	"github.com/tomortec/drift-expandable/pkg/layout"
)

const maxTreeDepth = 256

// RenderTreeNode is a serializable view of one render object.
type RenderTreeNode struct {
	Type        string           `json:"type"`
	Size        SafeSize         `json:"size"`
	Constraints *SafeConstraints `json:"constraints,omitempty"`
	Offset      SafeOffset       `json:"offset"`
	Depth       int              `json:"depth"`
	NeedsLayout bool             `json:"needsLayout"`
	Children    []RenderTreeNode `json:"children,omitempty"`
}

// SafeFloat encodes Inf and NaN, which appear in unbounded constraints, as
// strings.
type SafeFloat float64

func (f SafeFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 1) {
		return []byte(`"Infinity"`), nil
	}
	if math.IsInf(v, -1) {
		return []byte(`"-Infinity"`), nil
	}
	if math.IsNaN(v) {
		return []byte(`"NaN"`), nil
	}
	return json.Marshal(v)
}

// SafeSize is a JSON-safe graphics.Size.
type SafeSize struct {
	Width  SafeFloat `json:"width"`
	Height SafeFloat `json:"height"`
}

// SafeOffset is a JSON-safe graphics.Offset.
type SafeOffset struct {
	X SafeFloat `json:"x"`
	Y SafeFloat `json:"y"`
}

// SafeConstraints is a JSON-safe layout.Constraints.
type SafeConstraints struct {
	MinWidth  SafeFloat `json:"minWidth"`
	MaxWidth  SafeFloat `json:"maxWidth"`
	MinHeight SafeFloat `json:"minHeight"`
	MaxHeight SafeFloat `json:"maxHeight"`
}

// WidgetTreeNode is a serializable view of one element.
type WidgetTreeNode struct {
	WidgetType  string           `json:"widgetType"`
	ElementType string           `json:"elementType"`
	Key         any              `json:"key,omitempty"`
	Depth       int              `json:"depth"`
	HasState    bool             `json:"hasState,omitempty"`
	Children    []WidgetTreeNode `json:"children,omitempty"`
}

// RenderTree serializes the render tree, or returns nil before Mount.
func (e *Engine) RenderTree() *RenderTreeNode {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	if e.rootRender == nil {
		return nil
	}
	node := serializeRenderTree(e.rootRender, 0)
	return &node
}

// WidgetTree serializes the element tree, or returns nil before Mount.
func (e *Engine) WidgetTree() *WidgetTreeNode {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	if e.root == nil {
		return nil
	}
	node := serializeWidgetTree(e.root, 0)
	return &node
}

func serializeWidgetTree(elem core.Element, depth int) WidgetTreeNode {
	widget := elem.Widget()
	node := WidgetTreeNode{
		ElementType: reflect.TypeOf(elem).String(),
		Depth:       elem.Depth(),
	}
	if widget != nil {
		node.WidgetType = reflect.TypeOf(widget).String()
		node.Key = safeKey(widget.Key())
	}
	if _, ok := elem.(*core.StatefulElement); ok {
		node.HasState = true
	}
	if depth < maxTreeDepth {
		elem.VisitChildren(func(child core.Element) bool {
			node.Children = append(node.Children, serializeWidgetTree(child, depth+1))
			return true
		})
	}
	return node
}

// safeKey keeps scalar keys and stringifies the rest.
func safeKey(key any) any {
	if key == nil {
		return nil
	}
	switch key.(type) {
	case string, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, bool:
		return key
	default:
		return fmt.Sprintf("%v", key)
	}
}

func serializeRenderTree(obj layout.RenderObject, depth int) RenderTreeNode {
	size := obj.Size()
	node := RenderTreeNode{
		Type: reflect.TypeOf(obj).String(),
		Size: SafeSize{Width: SafeFloat(size.Width), Height: SafeFloat(size.Height)},
	}
	if getter, ok := obj.(interface{ NeedsLayout() bool }); ok {
		node.NeedsLayout = getter.NeedsLayout()
	}
	if getter, ok := obj.(interface{ Constraints() layout.Constraints }); ok {
		c := getter.Constraints()
		node.Constraints = &SafeConstraints{
			MinWidth:  SafeFloat(c.MinWidth),
			MaxWidth:  SafeFloat(c.MaxWidth),
			MinHeight: SafeFloat(c.MinHeight),
			MaxHeight: SafeFloat(c.MaxHeight),
		}
	}
	if getter, ok := obj.(interface{ Depth() int }); ok {
		node.Depth = getter.Depth()
	}
	offset := layout.ChildOffset(obj)
	node.Offset = SafeOffset{X: SafeFloat(offset.X), Y: SafeFloat(offset.Y)}

	if depth < maxTreeDepth {
		if cv, ok := obj.(layout.ChildVisitor); ok {
			cv.VisitChildren(func(child layout.RenderObject) {
				node.Children = append(node.Children, serializeRenderTree(child, depth+1))
			})
		}
	}
	return node
}
