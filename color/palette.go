package color

// Named TrueColor palette, pure RGB definitions without effect semantics.
// Ordered dark-to-light within each hue group.

var (
	// --- Achromatic ---
	Black     = Color{0, 0, 0}
	DimGray   = Color{55, 55, 55}
	Gray      = Color{120, 120, 120}
	Silver    = Color{180, 180, 180}
	LightGray = Color{200, 200, 200}
	White     = Color{255, 255, 255}

	// --- Red ---
	DarkCrimson = Color{139, 0, 0}
	Red         = Color{255, 0, 0}
	Coral       = Color{255, 80, 80}
	Salmon      = Color{255, 100, 100}

	// --- Orange / Yellow ---
	OrangeRed = Color{255, 69, 0}
	Orange    = Color{255, 165, 0}
	Gold      = Color{255, 215, 0}
	Yellow    = Color{255, 255, 0}

	// --- Green ---
	ForestGreen = Color{34, 139, 34}
	Green       = Color{0, 255, 0}
	LimeGreen   = Color{50, 205, 50}
	MintGreen   = Color{100, 220, 130}

	// --- Cyan / Blue ---
	Teal       = Color{0, 139, 139}
	Cyan       = Color{0, 255, 255}
	SteelBlue  = Color{60, 100, 180}
	RoyalBlue  = Color{65, 105, 225}
	DodgerBlue = Color{40, 180, 255}
	Blue       = Color{0, 0, 255}

	// --- Purple / Magenta ---
	Indigo  = Color{75, 0, 130}
	Violet  = Color{143, 0, 255}
	Orchid  = Color{200, 120, 220}
	Magenta = Color{255, 0, 255}
	HotPink = Color{255, 140, 200}
)

// Rainbow is the seven-color cycle used by the rainbow text effect,
// ordered red through violet.
var Rainbow = []Color{
	{255, 0, 0},
	{255, 127, 0},
	{255, 255, 0},
	{0, 255, 0},
	{0, 0, 255},
	{75, 0, 130},
	{143, 0, 255},
}
