package config

import (
	"github.com/alexisbeaulieu97/flexplay/internal/playground"
)

// Config is the optional flexplay.yaml document describing the starting
// state of a session.
type Config struct {
	Items       int             `yaml:"items,omitempty" validate:"omitempty,min=1,max=12"`
	Orientation string          `yaml:"orientation,omitempty" validate:"omitempty,oneof=portrait landscape"`
	StylesPanel *bool           `yaml:"styles_panel,omitempty"`
	Select      *int            `yaml:"select,omitempty" validate:"omitempty,min=0,max=11"`
	Tab         string          `yaml:"tab,omitempty" validate:"omitempty,oneof=container item"`
	Container   ContainerConfig `yaml:"container,omitempty"`
	Item        ItemConfig      `yaml:"item,omitempty"`
	Log         LogConfig       `yaml:"log,omitempty"`
}

// ContainerConfig seeds the container properties. Empty fields keep their
// defaults.
type ContainerConfig struct {
	Display        string `yaml:"display,omitempty" validate:"omitempty,oneof=flex inline-flex"`
	FlexDirection  string `yaml:"flex_direction,omitempty" validate:"omitempty,oneof=row row-reverse column column-reverse"`
	JustifyContent string `yaml:"justify_content,omitempty" validate:"omitempty,oneof=flex-start flex-end center space-between space-around space-evenly"`
	AlignItems     string `yaml:"align_items,omitempty" validate:"omitempty,oneof=flex-start flex-end center stretch baseline"`
	AlignContent   string `yaml:"align_content,omitempty" validate:"omitempty,oneof=flex-start flex-end center stretch space-between space-around"`
	FlexWrap       string `yaml:"flex_wrap,omitempty" validate:"omitempty,oneof=nowrap wrap wrap-reverse"`
	Gap            string `yaml:"gap,omitempty" validate:"omitempty,css_length"`
	RowGap         string `yaml:"row_gap,omitempty" validate:"omitempty,css_length"`
	ColumnGap      string `yaml:"column_gap,omitempty" validate:"omitempty,css_length"`
}

// ItemConfig seeds the item override properties.
type ItemConfig struct {
	FlexGrow   string `yaml:"flex_grow,omitempty" validate:"omitempty,css_number"`
	FlexShrink string `yaml:"flex_shrink,omitempty" validate:"omitempty,css_number"`
	FlexBasis  string `yaml:"flex_basis,omitempty" validate:"omitempty,css_basis"`
	AlignSelf  string `yaml:"align_self,omitempty" validate:"omitempty,oneof=auto flex-start flex-end center baseline stretch"`
	Order      string `yaml:"order,omitempty" validate:"omitempty,css_integer"`
}

// LogConfig controls where diagnostic logs go. The editor owns the terminal,
// so logs are discarded unless a file is given.
type LogConfig struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	File  string `yaml:"file,omitempty"`
}

// Default returns an empty configuration; every field falls back to the
// session defaults.
func Default() *Config {
	return &Config{}
}

func (c ContainerConfig) values() map[playground.ContainerField]string {
	return map[playground.ContainerField]string{
		playground.FieldDisplay:        c.Display,
		playground.FieldFlexDirection:  c.FlexDirection,
		playground.FieldJustifyContent: c.JustifyContent,
		playground.FieldAlignItems:     c.AlignItems,
		playground.FieldAlignContent:   c.AlignContent,
		playground.FieldFlexWrap:       c.FlexWrap,
		playground.FieldGap:            c.Gap,
		playground.FieldRowGap:         c.RowGap,
		playground.FieldColumnGap:      c.ColumnGap,
	}
}

func (c ItemConfig) values() map[playground.ItemField]string {
	return map[playground.ItemField]string{
		playground.FieldFlexGrow:   c.FlexGrow,
		playground.FieldFlexShrink: c.FlexShrink,
		playground.FieldFlexBasis:  c.FlexBasis,
		playground.FieldAlignSelf:  c.AlignSelf,
		playground.FieldOrder:      c.Order,
	}
}

// ContainerProperties returns the defaults overlaid with configured values.
func (c ContainerConfig) ContainerProperties() playground.ContainerProperties {
	props := playground.DefaultContainerProperties()
	for field, value := range c.values() {
		if value != "" {
			props.Set(field, value)
		}
	}
	return props
}

// ItemProperties returns the defaults overlaid with configured values.
func (c ItemConfig) ItemProperties() playground.ItemProperties {
	props := playground.DefaultItemProperties()
	for field, value := range c.values() {
		if value != "" {
			props.Set(field, value)
		}
	}
	return props
}

// SessionOptions converts the configuration into session options.
func (c *Config) SessionOptions() []playground.Option {
	if c == nil {
		return nil
	}
	opts := []playground.Option{
		playground.WithContainer(c.Container.ContainerProperties()),
		playground.WithItem(c.Item.ItemProperties()),
	}
	if c.Items > 0 {
		opts = append(opts, playground.WithItemCount(c.Items))
	}
	if c.Orientation == "landscape" {
		opts = append(opts, playground.WithOrientation(playground.Landscape))
	}
	if c.StylesPanel != nil {
		opts = append(opts, playground.WithStylesPanel(*c.StylesPanel))
	}
	if c.Select != nil {
		opts = append(opts, playground.WithSelectedItem(*c.Select))
	}
	if c.Tab == "item" {
		opts = append(opts, playground.WithActiveTab(playground.TabItem))
	}
	return opts
}
