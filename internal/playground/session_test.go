package playground

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession()

	assert.Equal(t, 3, s.ItemCount())
	_, selected := s.Selection().Index()
	assert.False(t, selected)
	assert.Equal(t, TabContainer, s.ActiveTab())
	assert.Equal(t, Portrait, s.Orientation())
	assert.True(t, s.StylesPanelVisible())
	assert.Equal(t, DefaultContainerProperties(), s.Container())
	assert.Equal(t, DefaultItemProperties(), s.Item())
}

func TestAddItemNeverExceedsMax(t *testing.T) {
	s := NewSession()
	for i := 0; i < 20; i++ {
		s.AddItem()
		require.LessOrEqual(t, s.ItemCount(), MaxItems)
	}
	assert.Equal(t, MaxItems, s.ItemCount())
	assert.False(t, s.CanAddItem())
}

func TestAddItemAtCapacityIsNoOp(t *testing.T) {
	s := NewSession(WithItemCount(12))
	s.AddItem()
	assert.Equal(t, 12, s.ItemCount())
}

func TestRemoveItemNeverDropsBelowMin(t *testing.T) {
	s := NewSession()
	for i := 0; i < 20; i++ {
		s.RemoveItem()
		require.GreaterOrEqual(t, s.ItemCount(), MinItems)
	}
	assert.Equal(t, MinItems, s.ItemCount())
	assert.False(t, s.CanRemoveItem())
}

func TestRemoveItemAtFloorIsNoOp(t *testing.T) {
	s := NewSession(WithItemCount(1))
	s.SelectItem(0)

	assert.NotPanics(t, s.RemoveItem)
	assert.Equal(t, 1, s.ItemCount())
	idx, ok := s.Selection().Index()
	assert.True(t, ok, "selection survives a no-op removal")
	assert.Equal(t, 0, idx)
}

func TestRemoveSelectedLastItemClearsSelection(t *testing.T) {
	s := NewSession()
	s.SelectItem(2)

	s.RemoveItem()

	assert.Equal(t, 2, s.ItemCount())
	_, ok := s.Selection().Index()
	assert.False(t, ok)
}

func TestRemoveItemKeepsEarlierSelection(t *testing.T) {
	s := NewSession()
	s.SelectItem(0)

	s.RemoveItem()

	idx, ok := s.Selection().Index()
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, TabItem, s.ActiveTab())
}

func TestSelectItemTwiceClearsSelection(t *testing.T) {
	s := NewSession()
	s.SelectItem(1)
	s.SelectItem(1)

	_, ok := s.Selection().Index()
	assert.False(t, ok)
	assert.Equal(t, TabItem, s.ActiveTab(), "deselecting still surfaces the item tab")
}

func TestSelectItemSwitchesSelection(t *testing.T) {
	s := NewSession()
	s.SelectItem(0)
	s.SelectItem(2)

	idx, ok := s.Selection().Index()
	require.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestSelectItemOutOfRangeIgnored(t *testing.T) {
	s := NewSession()
	s.SelectItem(7)
	s.SelectItem(-1)

	_, ok := s.Selection().Index()
	assert.False(t, ok)
	assert.Equal(t, TabContainer, s.ActiveTab())
}

func TestSetActiveTabLeavesSelection(t *testing.T) {
	s := NewSession()
	s.SelectItem(1)
	s.SetActiveTab(TabContainer)

	idx, ok := s.Selection().Index()
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, TabContainer, s.ActiveTab())
}

func TestResetActiveScopeFollowsTab(t *testing.T) {
	s := NewSession()
	s.SetContainerField(FieldFlexDirection, "column")
	s.SetItemField(FieldFlexGrow, "3")

	s.SetActiveTab(TabItem)
	s.ResetActiveScope()
	assert.Equal(t, DefaultItemProperties(), s.Item())
	assert.Equal(t, DirectionColumn, s.Container().FlexDirection, "item reset leaves the container alone")

	s.SetItemField(FieldFlexGrow, "3")
	s.SetActiveTab(TabContainer)
	s.ResetActiveScope()
	assert.Equal(t, DefaultContainerProperties(), s.Container())
	assert.Equal(t, "3", s.Item().FlexGrow, "container reset leaves the item alone")
}

func TestResetsLeaveCountAndSelection(t *testing.T) {
	s := NewSession()
	s.AddItem()
	s.SelectItem(3)

	s.ResetContainer()
	s.ResetItem()

	assert.Equal(t, 4, s.ItemCount())
	idx, ok := s.Selection().Index()
	require.True(t, ok)
	assert.Equal(t, 3, idx)
}

func TestSelectAndEditScenario(t *testing.T) {
	s := NewSession()
	s.SelectItem(1)

	idx, ok := s.Selection().Index()
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, TabItem, s.ActiveTab())

	s.SetItemField(FieldFlexGrow, "2")

	assert.Equal(t, "2", ProjectStyle(s.Container(), s.Item(), s.Selection(), 1).Flex.FlexGrow)
	assert.Equal(t, "0", ProjectStyle(s.Container(), s.Item(), s.Selection(), 0).Flex.FlexGrow)
}

func TestToggles(t *testing.T) {
	s := NewSession()

	s.ToggleOrientation()
	assert.Equal(t, Landscape, s.Orientation())
	s.ToggleOrientation()
	assert.Equal(t, Portrait, s.Orientation())

	s.ToggleStylesPanel()
	assert.False(t, s.StylesPanelVisible())
}

func TestSessionOptions(t *testing.T) {
	container := DefaultContainerProperties()
	container.FlexWrap = WrapWrap

	s := NewSession(
		WithContainer(container),
		WithItemCount(40),
		WithSelectedItem(5),
		WithOrientation(Landscape),
		WithStylesPanel(false),
		WithLogger(nil),
	)

	assert.Equal(t, MaxItems, s.ItemCount())
	assert.Equal(t, WrapWrap, s.Container().FlexWrap)
	idx, ok := s.Selection().Index()
	require.True(t, ok)
	assert.Equal(t, 5, idx)
	assert.Equal(t, TabContainer, s.ActiveTab())
	assert.Equal(t, Landscape, s.Orientation())
	assert.False(t, s.StylesPanelVisible())
}

func TestWithSelectedItemOutOfRangeIsDropped(t *testing.T) {
	s := NewSession(WithItemCount(2), WithSelectedItem(4))

	_, ok := s.Selection().Index()
	assert.False(t, ok)
}

func TestOrientationScreenSize(t *testing.T) {
	w, h := Portrait.ScreenSize()
	assert.Equal(t, [2]int{300, 600}, [2]int{w, h})
	w, h = Landscape.ScreenSize()
	assert.Equal(t, [2]int{600, 300}, [2]int{w, h})
	assert.Equal(t, "landscape", Landscape.String())
}

func TestWithActiveTabKeepsSeededSelection(t *testing.T) {
	s := NewSession(WithSelectedItem(1), WithActiveTab(TabItem))

	idx, ok := s.Selection().Index()
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, TabItem, s.ActiveTab())

	s = NewSession(WithActiveTab(TabItem))
	_, ok = s.Selection().Index()
	assert.False(t, ok, "an item tab does not imply a selection")
	assert.Equal(t, TabItem, s.ActiveTab())
}

func TestMixedOperationsKeepCountAndSelectionInRange(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		s := NewSession()
		for step := 0; step < 200; step++ {
			switch rng.Intn(3) {
			case 0:
				s.AddItem()
			case 1:
				s.RemoveItem()
			default:
				s.SelectItem(rng.Intn(MaxItems+2) - 1)
			}

			count := s.ItemCount()
			require.GreaterOrEqual(t, count, MinItems, "seed %d step %d", seed, step)
			require.LessOrEqual(t, count, MaxItems, "seed %d step %d", seed, step)
			if idx, ok := s.Selection().Index(); ok {
				require.Less(t, idx, count, "seed %d step %d", seed, step)
				require.GreaterOrEqual(t, idx, 0, "seed %d step %d", seed, step)
			}
		}
	}
}
