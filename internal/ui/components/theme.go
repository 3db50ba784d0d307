package components

import (
	"github.com/charmbracelet/lipgloss"

	tokens "github.com/alexisbeaulieu97/spectrum/internal/theme"
)

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
)

const spacingSizeCount = int(SpacingSizeExtraLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantCode
	TypographyVariantEmphasis
	TypographyVariantKicker
	TypographyVariantMeta
)

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
)

// RadiusSize selects one of the three radius tokens.
type RadiusSize int

const (
	RadiusSizeSmall RadiusSize = iota
	RadiusSizeMedium
	RadiusSizeLarge
)

type InputState int

const (
	InputStateDefault InputState = iota
	InputStateFocus
)

// Palette describes semantic colour slots used by components. Every slot is
// resolved from a derived snapshot, so there is one palette per mode.
type Palette struct {
	Accent     ColourSet
	AccentSoft ColourSet
	Surface    ColourSet
	Raised     ColourSet
	Sunken     ColourSet
	// Shadow is the deepest surface tone, used where CSS would cast a shadow.
	Shadow lipgloss.Color
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// RadiusScale maps the radius tokens onto terminal borders.
type RadiusScale struct {
	Small  lipgloss.Border
	Medium lipgloss.Border
	Large  lipgloss.Border
}

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Kicker   lipgloss.Style
	Meta     lipgloss.Style
}

// InputStyles describes default/focus styles for input controls.
type InputStyles struct {
	Default lipgloss.Style
	Focus   lipgloss.Style
}

// VariantRegistry maps component variants to their styling strategies.
// This allows themes to define variant styling data-driven rather than code-driven.
type VariantRegistry struct {
	strategies map[interface{}]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{
		strategies: make(map[interface{}]StyleStrategy),
	}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant interface{}, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant interface{}) StyleStrategy {
	return vr.strategies[variant]
}

// Theme represents an immutable styling theme for components.
// Build one per snapshot with ThemeFromSnapshot and pass it through RenderContext.
type Theme struct {
	Palette    Palette
	Borders    BorderSet
	Radius     RadiusScale
	Spacing    SpacingConfig
	Typography TypographyScale
	Input      InputStyles
	Variants   *VariantRegistry
	Dark       bool
}

// Normalize returns a new theme with all fields properly initialized.
// This ensures that partially-specified themes have sensible defaults.
func (t Theme) Normalize() Theme {
	t.Spacing = normalizeSpacingConfig(t.Spacing)
	if t.Variants == nil {
		t.Variants = defaultVariants()
	}
	return t
}

func normalizeSpacingConfig(cfg SpacingConfig) SpacingConfig {
	if spacingTableIsZero(cfg.Padding) {
		cfg.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(cfg.Margin) {
		cfg.Margin = defaultSpacingTable()
	}
	return cfg
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

// Terminal cells are roughly twice as tall as they are wide, so the scale
// stays small.
func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      1,
		SpacingSizeMedium:     2,
		SpacingSizeLarge:      3,
		SpacingSizeExtraLarge: 4,
	}
}

// roundedRadiusThreshold is the smallest radius, in pixels, drawn with
// rounded corners.
const roundedRadiusThreshold = 12

// BorderForRadius picks the terminal border closest to a CSS corner radius.
func BorderForRadius(px int) lipgloss.Border {
	if px < roundedRadiusThreshold {
		return lipgloss.NormalBorder()
	}
	return lipgloss.RoundedBorder()
}

// DefaultTheme returns the theme derived from the default showcase controls.
func DefaultTheme() Theme {
	return ThemeFromSnapshot(tokens.Derive(tokens.DefaultControls()))
}

// DarkTheme returns the default controls rendered in dark mode.
func DarkTheme() Theme {
	controls := tokens.DefaultControls()
	controls.Dark = true
	return ThemeFromSnapshot(tokens.Derive(controls))
}

// LightTheme returns the default theme.
func LightTheme() Theme {
	return DefaultTheme()
}

// ThemeFromSnapshot resolves every palette slot, border radius and typography
// preset from a derived snapshot.
func ThemeFromSnapshot(s tokens.Snapshot) Theme {
	accent := func(tone tokens.AccentTone) lipgloss.Color {
		return lipgloss.Color(s.Accent[tone].Hex())
	}
	surface := func(tone tokens.SurfaceTone) lipgloss.Color {
		return lipgloss.Color(s.Surface[tone].Hex())
	}
	text := func(tone tokens.TextTone) lipgloss.Color {
		return lipgloss.Color(s.Text[tone].Hex())
	}

	palette := Palette{
		Accent: ColourSet{
			Base:     accent(tokens.Accent500),
			OnBase:   lipgloss.Color(tokens.Hex(s.AccentForeground)),
			Muted:    accent(tokens.Accent600),
			Contrast: accent(tokens.Accent400),
		},
		AccentSoft: ColourSet{
			Base:     accent(tokens.Accent100),
			OnBase:   accent(tokens.Accent600),
			Muted:    accent(tokens.Accent50),
			Contrast: accent(tokens.Accent500),
		},
		Surface: ColourSet{
			Base:     surface(tokens.Surface0),
			OnBase:   text(tokens.Text900),
			Muted:    surface(tokens.Surface100),
			Contrast: accent(tokens.Accent500),
		},
		Raised: ColourSet{
			Base:     surface(tokens.Surface100),
			OnBase:   text(tokens.Text700),
			Muted:    surface(tokens.Surface200),
			Contrast: accent(tokens.Accent600),
		},
		Sunken: ColourSet{
			Base:     surface(tokens.Surface200),
			OnBase:   text(tokens.Text500),
			Muted:    surface(tokens.Surface300),
			Contrast: text(tokens.Text900),
		},
		Shadow: surface(tokens.Surface950),
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}

	radius := RadiusScale{
		Small:  BorderForRadius(s.Radius.SM),
		Medium: BorderForRadius(s.Radius.MD),
		Large:  BorderForRadius(s.Radius.LG),
	}

	input := InputStyles{
		Default: lipgloss.NewStyle().
			BorderStyle(radius.Medium).
			BorderForeground(palette.Sunken.Muted).
			Padding(0, 1).
			Background(palette.Surface.Base).
			Foreground(palette.Surface.OnBase),
		Focus: lipgloss.NewStyle().
			BorderStyle(radius.Medium).
			BorderForeground(palette.Accent.Base).
			Padding(0, 1).
			Background(palette.Surface.Base).
			Foreground(palette.Surface.OnBase),
	}

	t := Theme{
		Palette:    palette,
		Borders:    borders,
		Radius:     radius,
		Typography: defaultTypography(palette),
		Input:      input,
		Variants:   defaultVariants(),
		Dark:       s.Dark,
	}

	return t.Normalize()
}

func defaultVariants() *VariantRegistry {
	variants := NewVariantRegistry()
	registerButtonVariants(variants)
	registerBadgeVariants(variants)
	return variants
}

// registerButtonVariants populates button variant strategies
func registerButtonVariants(registry *VariantRegistry) {
	registry.Register(ButtonVariantPrimary, NewCompositeStrategy(
		Background(PaletteAccent),
		Typography(TypographyVariantEmphasis),
	))
	registry.Register(ButtonVariantOutline, NewCompositeStrategy(
		Foreground(PaletteAccent),
		RadiusBorder(RadiusSizeSmall),
		BorderColor(PaletteAccent),
	))
	registry.Register(ButtonVariantGhost, NewCompositeStrategy(
		Foreground(PaletteAccent),
	))

	registry.Register(ButtonSizeSmall, NewCompositeStrategy(PaddingX(SpacingSizeSmall)))
	registry.Register(ButtonSizeMedium, NewCompositeStrategy(PaddingX(SpacingSizeMedium)))
	registry.Register(ButtonSizeLarge, NewCompositeStrategy(
		PaddingX(SpacingSizeLarge),
		PaddingY(SpacingSizeExtraSmall),
	))
}

// registerBadgeVariants populates badge variant strategies
func registerBadgeVariants(registry *VariantRegistry) {
	registry.Register(BadgeVariantSolid, NewCompositeStrategy(
		Background(PaletteAccent),
		PaddingX(SpacingSizeSmall),
	))
	registry.Register(BadgeVariantSubtle, NewCompositeStrategy(
		Background(PaletteAccentSoft),
		PaddingX(SpacingSizeSmall),
	))
	registry.Register(BadgeVariantOutline, NewCompositeStrategy(
		Foreground(PaletteAccent),
		RadiusBorder(RadiusSizeSmall),
		BorderColor(PaletteAccent),
	))
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	title := base.
		Bold(true)

	subtitle := base.
		Foreground(p.Sunken.OnBase)

	body := base.
		Foreground(p.Raised.OnBase)

	code := base.
		Foreground(p.Surface.OnBase).
		Background(p.Raised.Base)

	emphasis := base.
		Bold(true)

	kicker := base.
		Foreground(p.Accent.Muted).
		Bold(true)

	meta := base.
		Foreground(p.Sunken.OnBase).
		Italic(true)

	return TypographyScale{
		Base:     base,
		Title:    title,
		Subtitle: subtitle,
		Body:     body,
		Code:     code,
		Emphasis: emphasis,
		Kicker:   kicker,
		Meta:     meta,
	}
}

// Helper functions to access theme properties using typed variants

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

// BorderForRadiusSize returns the border the theme assigns to a radius token.
func BorderForRadiusSize(theme Theme, size RadiusSize) lipgloss.Border {
	switch size {
	case RadiusSizeSmall:
		return theme.Radius.Small
	case RadiusSizeLarge:
		return theme.Radius.Large
	default:
		return theme.Radius.Medium
	}
}

// PaddingValue returns the padding value for the given size.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

// MarginValue returns the margin value for the given size.
func MarginValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantBody:
		return typo.Body
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantKicker:
		return typo.Kicker
	case TypographyVariantMeta:
		return typo.Meta
	default:
		return typo.Base
	}
}

// InputStyle returns the input style for the given state.
func InputStyle(theme Theme, state InputState) lipgloss.Style {
	input := theme.Input
	if state == InputStateFocus {
		return input.Focus
	}
	return input.Default
}

// ColourSet represents a semantic color set with base, on-base, muted, and contrast colors.
//
//   - Base: The background or brand color
//   - OnBase: Text/content color that stays legible on Base
//   - Muted: A neighbouring tone for subtle accents
//   - Contrast: An accent color that "pops" against Base
type ColourSet struct {
	Base     lipgloss.Color
	OnBase   lipgloss.Color
	Muted    lipgloss.Color
	Contrast lipgloss.Color
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

// Predefined semantic palette slots for type-safe theme access.
var (
	PaletteAccent     PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteAccentSoft PaletteSlot = func(p Palette) ColourSet { return p.AccentSoft }
	PaletteSurface    PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteRaised     PaletteSlot = func(p Palette) ColourSet { return p.Raised }
	PaletteSunken     PaletteSlot = func(p Palette) ColourSet { return p.Sunken }
)

// Fluent modifier functions

// Background applies a semantic background colour and matching foreground for optimal contrast.
//
// Example:
//
//	card := NewCard("Overview").WithAppliers(Background(PaletteRaised))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Foreground(cs.Base)
	}
}

// BorderColor tints the border with the slot's base colour.
func BorderColor(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.BorderForeground(cs.Base)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// RadiusBorder applies the border matching a radius token.
func RadiusBorder(size RadiusSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForRadiusSize(theme, size))
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.Padding(value)
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, size)
		return base.MarginTop(value).MarginBottom(value)
	}
}

// Typography applies typography styling
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// Predefined style bundles for common component patterns

func CardBaseStyle() []StyleFunc {
	return []StyleFunc{
		Background(PaletteSurface),
		RadiusBorder(RadiusSizeLarge),
		BorderColor(PaletteSunken),
		PaddingX(SpacingSizeMedium),
	}
}

func PreviewCanvasStyle() []StyleFunc {
	return []StyleFunc{
		Background(PaletteRaised),
		RadiusBorder(RadiusSizeLarge),
		func(base lipgloss.Style, theme Theme) lipgloss.Style {
			return base.BorderForeground(theme.Palette.Shadow)
		},
		PaddingX(SpacingSizeMedium),
	}
}
