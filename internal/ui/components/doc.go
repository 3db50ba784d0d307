// Package components is a small theme-aware widget set for terminal previews
// of the Spectrum design system.
//
// # Overview
//
// Components are built on lipgloss and render to strings. Every colour they
// draw comes from a Theme, and a Theme is derived from a theme.Snapshot with
// ThemeFromSnapshot, so changing a control in the showcase re-skins every
// widget at once.
//
// # Architecture
//
//  1. Theme layer: palette slots, radius borders, spacing and typography
//     resolved from a snapshot.
//  2. Modifier layer: StyleFunc values (Background, Foreground, RadiusBorder,
//     PaddingX, Typography) that apply theme data to a style.
//  3. Component layer: Badge, Button, Card, Input, Switch, Swatch,
//     Notification, Stat and the Stack/Container/Panel layouts.
//
// # Rendering
//
// Components implement ui.Renderable. Those that care about the theme or the
// available width also implement ContextualRenderable:
//
//	ctx := components.NewContext(components.ThemeFromSnapshot(snap))
//	view := components.NewCard(
//		components.PrimaryButton("Save"),
//		components.NewSwitch("Notifications").WithChecked(true),
//	).WithTitle("Settings").ViewWithContext(ctx)
//
// Variants are looked up in the theme's VariantRegistry, so a theme can
// restyle a button or badge variant without touching the component.
//
// # Radius
//
// Terminals cannot draw arbitrary corner radii. BorderForRadius maps a pixel
// radius to a square border below 12px and a rounded border from 12px up.
package components
