// pkg/render/engo/assets.go
package engo

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font/gofont/goregular"
)

// FontURL is the virtual path the bundled Go Regular font is registered
// under.
const FontURL = "fonts/goregular.ttf"

// AssetManager handles loading and caching the scene's assets. The only
// asset is the bundled font; shapes need no textures.
type AssetManager struct {
	loaded bool
	fonts  map[float64]*common.Font
}

// NewAssetManager creates a new asset manager
func NewAssetManager() *AssetManager {
	return &AssetManager{
		fonts: make(map[float64]*common.Font),
	}
}

// LoadAssets registers the bundled font with engo's file loader. It is safe
// to call more than once.
func (am *AssetManager) LoadAssets() error {
	if am.loaded {
		return nil
	}
	if err := engo.Files.LoadReaderData(FontURL, bytes.NewReader(goregular.TTF)); err != nil {
		return fmt.Errorf("load font %s: %w", FontURL, err)
	}
	am.loaded = true
	return nil
}

// Loaded reports whether LoadAssets succeeded.
func (am *AssetManager) Loaded() bool {
	return am.loaded
}

// Font returns a white font of the given pixel size, creating it on first
// use. Text colour is applied by tinting the render component.
func (am *AssetManager) Font(size float64) (*common.Font, error) {
	if f, ok := am.fonts[size]; ok {
		return f, nil
	}
	if !am.loaded {
		return nil, fmt.Errorf("font %s requested before LoadAssets", FontURL)
	}

	f := &common.Font{
		URL:  FontURL,
		FG:   color.White,
		Size: size,
	}
	if err := f.CreatePreloaded(); err != nil {
		return nil, fmt.Errorf("create font size %.0f: %w", size, err)
	}
	am.fonts[size] = f
	return f, nil
}
