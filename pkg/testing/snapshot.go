package testing

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/tomortec/drift-expandable/pkg/graphics"
	"github.com/tomortec/drift-expandable/pkg/layout"
)

// UpdateSnapshotsEnv, when set to "1", makes MatchesFile rewrite golden files.
const UpdateSnapshotsEnv = "DRIFT_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the render tree structure and display operations.
type Snapshot struct {
	RenderTree *RenderNode `yaml:"renderTree"`
	DisplayOps []DisplayOp `yaml:"displayOps,omitempty"`
}

// RenderNode represents a node in the serialized render tree.
type RenderNode struct {
	ID       string        `yaml:"id"`
	Type     string        `yaml:"type"`
	Size     [2]float64    `yaml:"size,flow"`
	Offset   [2]float64    `yaml:"offset,flow"`
	Children []*RenderNode `yaml:"children,omitempty"`
}

// DisplayOp is a readable summary of one recorded drawing command.
type DisplayOp struct {
	Op     string     `yaml:"op"`
	Rect   [4]float64 `yaml:"rect,flow,omitempty"`
	Radius float64    `yaml:"radius,omitempty"`
	Color  string     `yaml:"color,omitempty"`
	Text   string     `yaml:"text,omitempty"`
}

// CaptureSnapshot captures the render tree and the last recorded frame.
func (t *WidgetTester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{}
	root := t.engine.RootRender()
	if root == nil {
		return snap
	}
	snap.RenderTree = captureRenderNode(root, &typeCounter{})
	if dl := t.engine.LastFrame(); dl != nil {
		snap.DisplayOps = serializeDisplayList(dl)
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When DRIFT_UPDATE_SNAPSHOTS=1
// is set, the file is rewritten instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := LoadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s (-want +got)\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to path, creating directories as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadSnapshot reads a snapshot written by UpdateFile.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &snap, nil
}

// Diff reports the differences from want to s, or "" when equal.
func (s *Snapshot) Diff(want *Snapshot) string {
	return cmp.Diff(want, s)
}

// typeCounter assigns stable IDs like "RenderFlex#0", "RenderFlex#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func captureRenderNode(ro layout.RenderObject, counter *typeCounter) *RenderNode {
	typeName := renderTypeName(ro)
	size := ro.Size()
	offset := layout.ChildOffset(ro)

	node := &RenderNode{
		ID:     counter.next(typeName),
		Type:   typeName,
		Size:   [2]float64{round2(size.Width), round2(size.Height)},
		Offset: [2]float64{round2(offset.X), round2(offset.Y)},
	}
	if visitor, ok := ro.(layout.ChildVisitor); ok {
		visitor.VisitChildren(func(child layout.RenderObject) {
			node.Children = append(node.Children, captureRenderNode(child, counter))
		})
	}
	return node
}

func renderTypeName(ro layout.RenderObject) string {
	t := reflect.TypeOf(ro)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	name := t.Name()
	// Unexported render types are capitalized so IDs read uniformly.
	if len(name) > 0 {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return name
}

func serializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	var ops []DisplayOp
	for _, op := range dl.Ops() {
		out := DisplayOp{Op: op.Kind.String()}
		switch op.Kind {
		case graphics.OpTranslate:
			out.Rect = [4]float64{round2(op.Offset.X), round2(op.Offset.Y), 0, 0}
		case graphics.OpClipRect, graphics.OpDrawRect:
			out.Rect = rectArray(op.Rect)
			if op.Kind == graphics.OpDrawRect {
				out.Color = op.Paint.Color.String()
			}
		case graphics.OpClipRRect, graphics.OpDrawRRect:
			out.Rect = rectArray(op.RRect.Rect)
			out.Radius = round2(op.RRect.Radius.X)
			if op.Kind == graphics.OpDrawRRect {
				out.Color = op.Paint.Color.String()
			}
		case graphics.OpDrawRRectShadow:
			out.Rect = rectArray(op.RRect.Rect)
			out.Radius = round2(op.RRect.Radius.X)
			out.Color = op.Shadow.Color.String()
		case graphics.OpDrawText:
			out.Rect = [4]float64{round2(op.Offset.X), round2(op.Offset.Y), 0, 0}
			if op.Text != nil {
				out.Text = op.Text.Text
			}
		}
		ops = append(ops, out)
	}
	return ops
}

func rectArray(r graphics.Rect) [4]float64 {
	return [4]float64{round2(r.Left), round2(r.Top), round2(r.Right), round2(r.Bottom)}
}

func round2(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	return math.Round(v*100) / 100
}
