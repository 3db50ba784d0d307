package page

const (
	// Title is the document title.
	Title = "Spectrum DS — Design System Playground"
	// Description is the document meta description.
	Description = "Explore a modern design system playground with interactive tokens, components, and layout primitives."
)

// MetaItem is a label/value pair in the hero.
type MetaItem struct {
	Label string
	Value string
}

// TokenRef names a token shown in a token group. Foreground tokens are
// drawn as text on surface-0 instead of as a fill.
type TokenRef struct {
	Label      string
	Token      string
	Foreground bool
}

// TokenGroup is one card in the foundations grid.
type TokenGroup struct {
	Title       string
	Description string
	Tokens      []TokenRef
}

// Principle is one card in the principles grid.
type Principle struct {
	Title string
	Body  string
}

// Hero holds the copy of the top section.
type Hero struct {
	Badge      string
	Heading    string
	Subtitle   string
	Meta       []MetaItem
	CardTitle  string
	CardBody   string
	StatLabel  string
	StatValue  string
	Highlights []string
}

// Section is a kicker, heading and lede.
type Section struct {
	Kicker  string
	Heading string
	Lede    string
}

var hero = Hero{
	Badge:    "Design System",
	Heading:  "Design faster with Spectrum DS",
	Subtitle: "Spectrum DS is a flexible interface kit that combines adaptive tokens, polished UI primitives, and elevated guidance so product teams can build accessible experiences on day one.",
	Meta: []MetaItem{
		{Label: "Components", Value: "24"},
		{Label: "Themes", Value: "6"},
		{Label: "Figma Kit", Value: "Included"},
	},
	CardTitle: "Snapshot",
	CardBody:  "Guardrails and building blocks tuned for data-rich applications.",
	StatLabel: "Design tokens",
	StatValue: "146",
	Highlights: []string{
		"Adaptive color ramps with automatic contrast validation.",
		"Motion-ready primitives for micro-interactions and feedback.",
		"Layout scaffolds for boards, dashboards, and flows.",
	},
}

var foundations = Section{
	Kicker:  "Foundations",
	Heading: "Token architecture engineered for themeability",
	Lede:    "Spectrum DS ships with multi-layer token sets that adapt across themes. Pair them with your product semantics to scale experiences from marketing sites to data grids.",
}

var showcase = Section{
	Kicker:  "Component showcase",
	Heading: "Adjust tokens and watch the UI respond instantly",
	Lede:    "Fine-tune Spectrum's color ramps, depth, and curvature. Every change updates live components so you can export ready-to-ship tokens.",
}

var principlesSection = Section{
	Kicker:  "Principles",
	Heading: "Designed for teams shipping complex product surfaces",
	Lede:    "Our design system anchors on clarity, rhythm, and adaptability. These pillars help your product stay legible as you layer in richer workflows and dense data.",
}

var tokenGroups = []TokenGroup{
	{
		Title:       "Accent Palette",
		Description: "Tokens designed for emphasis, focus states, and high-energy surfaces.",
		Tokens: []TokenRef{
			{Label: "Accent 600", Token: "accent-600"},
			{Label: "Accent 500", Token: "accent-500"},
			{Label: "Accent 400", Token: "accent-400"},
			{Label: "Accent 100", Token: "accent-100"},
			{Label: "Accent 50", Token: "accent-50"},
		},
	},
	{
		Title:       "Surface Layers",
		Description: "Layer tokens that build spatial hierarchy through tonal elevation.",
		Tokens: []TokenRef{
			{Label: "Surface 0", Token: "surface-0"},
			{Label: "Surface 100", Token: "surface-100"},
			{Label: "Surface 200", Token: "surface-200"},
			{Label: "Surface 300", Token: "surface-300"},
		},
	},
	{
		Title:       "Typography",
		Description: "Expressive yet accessible typography tuned for dashboards and content.",
		Tokens: []TokenRef{
			{Label: "Text 900", Token: "text-900", Foreground: true},
			{Label: "Text 700", Token: "text-700", Foreground: true},
			{Label: "Text 500", Token: "text-500", Foreground: true},
		},
	},
}

var principles = []Principle{
	{
		Title: "Intentional Density",
		Body:  "Balance data-rich surfaces with generous spacing and structure so teams stay focused.",
	},
	{
		Title: "Adaptive Tokens",
		Body:  "Every token shifts seamlessly across themes, elevating product customization without extra code.",
	},
	{
		Title: "Accessible Interaction",
		Body:  "Components ship with sensible defaults that pass WCAG AA for contrast, focus, and motion.",
	},
	{
		Title: "Composable Primitives",
		Body:  "Build on layered primitives that keep advanced layouts approachable for every product team.",
	},
}

// TokenGroups returns the foundations grid content.
func TokenGroups() []TokenGroup {
	return tokenGroups
}

// Principles returns the principles grid content.
func Principles() []Principle {
	return principles
}
