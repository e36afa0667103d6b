package gallery

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tomortec/drift-expandable/pkg/expandable"
	"github.com/tomortec/drift-expandable/pkg/graphics"
	drifttest "github.com/tomortec/drift-expandable/pkg/testing"
)

const minimal = `
version: v1.0.0
sections:
  - title: One
    card:
      header: Title
      body: Body text
      headerSize: [300, 50]
      cardSize: [300, 200]
`

func TestParseMinimal(t *testing.T) {
	doc, err := Parse([]byte(minimal))
	require.NoError(t, err)
	require.Len(t, doc.Sections, 1)
	require.NotNil(t, doc.Sections[0].Card)
	require.Equal(t, graphics.Size{Width: 300, Height: 50}, doc.Sections[0].Card.HeaderSize.Size())
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte(minimal + "\nextra: 1\n"))
	require.ErrorContains(t, err, "failed to parse gallery")
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		version string
		ok      bool
	}{
		{"v1.0.0", true},
		{"v1.1.0", true},
		{"v1.2.0", false},
		{"v2.0.0", false},
		{"1.0.0", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			err := CheckVersion(tt.version)
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrUnsupportedVersion)
		})
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"no sections", "version: v1.0.0\nsections: []\n", "no sections"},
		{"empty section", "version: v1.0.0\nsections:\n  - title: x\n", "needs a card or a group"},
		{"bad header size", `
version: v1.0.0
sections:
  - card: {header: a, body: b, headerSize: [0, 50], cardSize: [300, 200]}
`, "headerSize must be positive"},
		{"bad color", `
version: v1.0.0
sections:
  - card: {header: a, body: b, headerSize: [300, 50], cardSize: [300, 200], cardColor: chartreuse}
`, "cardColor"},
		{"bad curve", `
version: v1.0.0
sections:
  - card: {header: a, body: b, headerSize: [300, 50], cardSize: [300, 200], curve: bounce}
`, "unknown curve"},
		{"bad duration", `
version: v1.0.0
sections:
  - card: {header: a, body: b, headerSize: [300, 50], cardSize: [300, 200], duration: soon}
`, "duration"},
		{"card and group", `
version: v1.0.0
sections:
  - card: {header: a, body: b, headerSize: [300, 50], cardSize: [300, 200]}
    group: {headers: [a], bodies: [b], headerSize: [300, 50], cardSize: [300, 200]}
`, "not both"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestBuildMismatchedGroupReturnsConfigError(t *testing.T) {
	doc, err := Parse([]byte(`
version: v1.0.0
sections:
  - title: Broken
    group:
      headers: [a, b]
      bodies: [x, y, z, w, v]
      headerSize: [300, 50]
      cardSize: [300, 200]
`))
	require.NoError(t, err)

	_, err = doc.Build()
	var cfg *expandable.ConfigError
	require.True(t, errors.As(err, &cfg))
	require.Equal(t, 2, cfg.Headers)
	require.Equal(t, 5, cfg.Bodies)
	require.ErrorContains(t, err, `sections[0] "Broken"`)
}

func TestCardSpecAppliesStyle(t *testing.T) {
	radius := 4.0
	spec := &CardSpec{
		StyleSpec: StyleSpec{
			HeaderColor:  "mint",
			CardColor:    "#FF112233",
			HeaderRadius: &radius,
			Shadow:       &ShadowSpec{Radius: 0},
			Dynamic:      true,
			Duration:     "200ms",
			Curve:        "linear",
		},
		Header:     "h",
		Body:       "b",
		HeaderSize: Dims{300, 50},
		CardSize:   Dims{300, 200},
	}
	card, err := spec.Build()
	require.NoError(t, err)

	style := card.Style()
	require.Equal(t, graphics.ColorMint, style.HeaderBackground)
	require.Equal(t, graphics.Color(0xFF112233), style.CardBackground)
	require.Equal(t, 4.0, style.HeaderCornerRadius)
	require.Equal(t, expandable.DefaultCornerRadius, style.CardCornerRadius)
	require.Nil(t, style.Shadow.BoxShadow())
	require.True(t, card.IsDynamic())
	require.Equal(t, 200*time.Millisecond, card.Timing().Duration)
	require.Equal(t, 0.25, card.Timing().Curve(0.25))
}

func TestGroupSpecAppliesSpacing(t *testing.T) {
	spacing := 4.0
	spec := &GroupSpec{
		Headers:    []string{"shared"},
		Bodies:     []string{"a", "b", "c"},
		HeaderSize: Dims{300, 80},
		CardSize:   Dims{300, 300},
		Spacing:    &spacing,
		Background: "white",
	}
	group, err := spec.Build()
	require.NoError(t, err)
	require.Equal(t, 3, group.Len())
	require.Equal(t, 4.0, group.Spacing())
}

func TestEntriesFollowMountOrder(t *testing.T) {
	doc, err := Load(filepath.Join("..", "..", "..", "..", "showcase", "gallery.yaml"))
	require.NoError(t, err)

	entries := doc.Entries()
	require.Len(t, entries, 8)
	require.Equal(t, "Fixed Height", entries[0].Section)
	require.False(t, entries[0].Dynamic)
	require.True(t, entries[1].Dynamic)
	require.Equal(t, "Group", entries[7].Section)
	require.Equal(t, graphics.Size{Width: 300, Height: 80}, entries[7].HeaderSize)
}

func TestCardStatesFindsMountedCards(t *testing.T) {
	doc, err := Load(filepath.Join("..", "..", "..", "..", "showcase", "gallery.yaml"))
	require.NoError(t, err)
	root, err := doc.Build()
	require.NoError(t, err)

	tester := drifttest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 390, Height: 4000})
	require.NoError(t, tester.PumpWidget(root))

	states := CardStates(tester.RootElement())
	require.Len(t, states, len(doc.Entries()))
	for _, s := range states {
		require.False(t, s.IsExpanded())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
