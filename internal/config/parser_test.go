package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/flexplay/internal/playground"
	flexerrors "github.com/alexisbeaulieu97/flexplay/pkg/errors"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	validYAML := `items: 5
orientation: landscape
styles_panel: false
select: 4
tab: item
container:
  flex_direction: column
  justify_content: space-between
  gap: 1rem
item:
  flex_grow: "2"
  align_self: stretch
  order: "-1"
log:
  level: debug
  file: /tmp/flexplay.log
`

	unknownKey := `items: 3
contianer:
  display: flex
`

	badType := `items: [1, 2]
`

	badEnum := `container:
  flex_direction: diagonal
`

	selectOutOfRange := `select: 3
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, 5, cfg.Items)
				require.Equal(t, "landscape", cfg.Orientation)
				require.NotNil(t, cfg.StylesPanel)
				require.False(t, *cfg.StylesPanel)
				require.Equal(t, 4, *cfg.Select)
				require.Equal(t, "column", cfg.Container.FlexDirection)
				require.Equal(t, "-1", cfg.Item.Order)
				require.Equal(t, "debug", cfg.Log.Level)
			},
		},
		{
			name:     "empty file yields defaults",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, Default(), cfg)
			},
		},
		{
			name:     "unknown keys are rejected with line",
			contents: unknownKey,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *flexerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name:     "type mismatch is a parse error",
			contents: badType,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *flexerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "enumerated values are checked",
			contents: badEnum,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *flexerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "container.flex_direction", validationErr.Field)
				require.Contains(t, err.Error(), "oneof")
			},
		},
		{
			name:     "selection must name an existing item",
			contents: selectOutOfRange,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *flexerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "select", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "flexplay.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o644))

			cfg, err := Load(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	var parseErr *flexerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 0, parseErr.Line)
}

func TestSessionOptionsSeedSession(t *testing.T) {
	t.Parallel()

	cfg, err := Parse("inline", []byte(`items: 4
orientation: landscape
select: 1
container:
  flex_wrap: wrap
  row_gap: 2rem
item:
  flex_basis: 100px
`))
	require.NoError(t, err)

	s := playground.NewSession(cfg.SessionOptions()...)

	require.Equal(t, 4, s.ItemCount())
	require.Equal(t, playground.Landscape, s.Orientation())
	idx, ok := s.Selection().Index()
	require.True(t, ok)
	require.Equal(t, 1, idx)
	require.Equal(t, playground.TabContainer, s.ActiveTab())
	require.Equal(t, playground.WrapWrap, s.Container().FlexWrap)
	require.Equal(t, "2rem", s.Container().RowGap)
	require.Equal(t, "0.5rem", s.Container().Gap, "unset fields keep defaults")
	require.Equal(t, "100px", s.Item().FlexBasis)
	require.Equal(t, "0", s.Item().FlexGrow)
	require.True(t, s.StylesPanelVisible())
}

func TestSessionOptionsNilConfig(t *testing.T) {
	t.Parallel()

	var cfg *Config
	require.Nil(t, cfg.SessionOptions())
}
