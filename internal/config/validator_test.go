package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	flexerrors "github.com/alexisbeaulieu97/flexplay/pkg/errors"
)

func intPtr(v int) *int { return &v }

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		cfg       *Config
		wantField string
	}{
		{name: "nil config", cfg: nil, wantField: "config"},
		{name: "empty config", cfg: &Config{}},
		{name: "too many items", cfg: &Config{Items: 13}, wantField: "items"},
		{name: "negative items", cfg: &Config{Items: -1}, wantField: "items"},
		{name: "bad orientation", cfg: &Config{Orientation: "sideways"}, wantField: "orientation"},
		{name: "bad tab", cfg: &Config{Tab: "both"}, wantField: "tab"},
		{name: "select beyond default count", cfg: &Config{Select: intPtr(3)}, wantField: "select"},
		{name: "select within count", cfg: &Config{Items: 8, Select: intPtr(7)}},
		{name: "select negative", cfg: &Config{Select: intPtr(-1)}, wantField: "select"},
		{name: "gap length", cfg: &Config{Container: ContainerConfig{Gap: "1.5rem"}}},
		{name: "gap percent", cfg: &Config{Container: ContainerConfig{ColumnGap: "10%"}}},
		{name: "gap garbage", cfg: &Config{Container: ContainerConfig{RowGap: "big"}}, wantField: "container.row_gap"},
		{name: "basis auto", cfg: &Config{Item: ItemConfig{FlexBasis: "auto"}}},
		{name: "basis garbage", cfg: &Config{Item: ItemConfig{FlexBasis: "wide"}}, wantField: "item.flex_basis"},
		{name: "grow decimal", cfg: &Config{Item: ItemConfig{FlexGrow: "0.5"}}},
		{name: "grow negative", cfg: &Config{Item: ItemConfig{FlexGrow: "-1"}}, wantField: "item.flex_grow"},
		{name: "order negative", cfg: &Config{Item: ItemConfig{Order: "-3"}}},
		{name: "order decimal", cfg: &Config{Item: ItemConfig{Order: "1.5"}}, wantField: "item.order"},
		{name: "align self", cfg: &Config{Item: ItemConfig{AlignSelf: "middle"}}, wantField: "item.align_self"},
		{name: "log level", cfg: &Config{Log: LogConfig{Level: "chatty"}}, wantField: "log.level"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tc.cfg)
			if tc.wantField == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *flexerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.wantField, validationErr.Field)
		})
	}
}
