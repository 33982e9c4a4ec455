package config

import "git.home.luguber.info/inful/sitenav/internal/foundation/normalization"

// Bundler names the backend the site generator builds with.
type Bundler string

const (
	BundlerVite    Bundler = "vite"
	BundlerWebpack Bundler = "webpack"
)

// ColorMode is the default theme's initial color scheme.
type ColorMode string

const (
	ColorModeAuto  ColorMode = "auto"
	ColorModeLight ColorMode = "light"
	ColorModeDark  ColorMode = "dark"
)

var bundlerNormalizer = normalization.NewNormalizer(map[string]Bundler{
	"vite":    BundlerVite,
	"webpack": BundlerWebpack,
}, BundlerVite)

var colorModeNormalizer = normalization.NewNormalizer(map[string]ColorMode{
	"auto":  ColorModeAuto,
	"light": ColorModeLight,
	"dark":  ColorModeDark,
}, ColorModeAuto)

// ParseBundler returns the canonical bundler; empty selects vite.
func ParseBundler(raw string) (Bundler, error) { return bundlerNormalizer.Parse(raw) }

// ParseColorMode returns the canonical color mode; empty selects auto.
func ParseColorMode(raw string) (ColorMode, error) { return colorModeNormalizer.Parse(raw) }
