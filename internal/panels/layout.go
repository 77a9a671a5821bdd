package panels

import (
	"github.com/seahorse-ai-ryan/tiledock/internal/tiling"
	"github.com/seahorse-ai-ryan/tiledock/internal/workspace"
)

// DefaultLayout builds the demo's starting arrangement in the manager's
// tree: a horizontal root with a left column stacking a tabs group
// (Settings, Presets, Properties) over Stats, then Scene in the middle and
// Dataset on the right.
func DefaultLayout(m *workspace.Manager) {
	settings := m.NewPane(Settings())
	presets := m.NewPane(Presets())
	properties := m.NewPane(Properties())
	stats := m.NewPane(Stats())
	scene := m.NewPane(Scene())
	dataset := m.NewPane(Dataset())

	leftTop := m.NewTabs(settings, presets, properties)
	leftBottom := m.NewTabs(stats)
	left := m.NewLinear(tiling.KindVertical, leftTop, leftBottom)

	middle := m.NewTabs(scene)
	right := m.NewTabs(dataset)

	m.SetRoot(m.NewLinear(tiling.KindHorizontal, left, middle, right))
}
