package expandable

import (
	"errors"
	"strings"
	"testing"

	"github.com/tomortec/drift-expandable/pkg/core"
	"github.com/tomortec/drift-expandable/pkg/widgets"
)

func texts(prefix string, n int) []core.Widget {
	out := make([]core.Widget, n)
	for i := range out {
		out[i] = widgets.Text{Content: prefix + string(rune('A'+i))}
	}
	return out
}

func TestPair_SharedHeader(t *testing.T) {
	headers := texts("H", 1)
	paired, err := Pair(headers, texts("B", 5))
	if err != nil {
		t.Fatal(err)
	}
	if len(paired) != 5 {
		t.Fatalf("len = %d, want 5", len(paired))
	}
	for i, h := range paired {
		if h != headers[0] {
			t.Errorf("paired[%d] = %v, want the shared header", i, h)
		}
	}
}

func TestPair_OneToOne(t *testing.T) {
	headers := texts("H", 3)
	paired, err := Pair(headers, texts("B", 3))
	if err != nil {
		t.Fatal(err)
	}
	for i := range headers {
		if paired[i] != headers[i] {
			t.Errorf("paired[%d] = %v, want %v", i, paired[i], headers[i])
		}
	}
	headers[0] = nil
	if paired[0] == nil {
		t.Error("Pair must not alias the caller's slice")
	}
}

func TestPair_Empty(t *testing.T) {
	for _, tt := range []struct{ h, b int }{{0, 0}, {1, 0}} {
		paired, err := Pair(texts("H", tt.h), texts("B", tt.b))
		if err != nil || len(paired) != 0 {
			t.Errorf("Pair(%d, %d) = %v, %v; want empty", tt.h, tt.b, paired, err)
		}
	}
}

func TestPair_Mismatch(t *testing.T) {
	for _, tt := range []struct{ h, b int }{{2, 5}, {0, 3}, {4, 2}} {
		paired, err := Pair(texts("H", tt.h), texts("B", tt.b))
		if paired != nil {
			t.Errorf("Pair(%d, %d) returned headers with an error", tt.h, tt.b)
		}
		if !errors.Is(err, ErrPairingMismatch) {
			t.Fatalf("Pair(%d, %d) err = %v, want ErrPairingMismatch", tt.h, tt.b, err)
		}
		var cfg *ConfigError
		if !errors.As(err, &cfg) || cfg.Headers != tt.h || cfg.Bodies != tt.b {
			t.Errorf("config error = %+v", cfg)
		}
	}
}

func TestNewGroup_MismatchNamesConstructor(t *testing.T) {
	_, err := NewGroup(header300x50, card300x200, texts("H", 2), texts("B", 5))
	if err == nil || !strings.HasPrefix(err.Error(), "expandable.NewGroup:") {
		t.Errorf("err = %v", err)
	}
}
