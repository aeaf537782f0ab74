package gamebyte

import (
	"encoding/json"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

// TextureRegion describes a sub-rectangle within an atlas page.
type TextureRegion struct {
	Page      uint16 // atlas page index
	X, Y      uint16 // top-left corner of the sub-image rect within the page
	Width     uint16 // width of the sub-image rect (may differ from OriginalW if trimmed)
	Height    uint16 // height of the sub-image rect (may differ from OriginalH if trimmed)
	OriginalW uint16 // untrimmed sprite width as authored
	OriginalH uint16 // untrimmed sprite height as authored
	OffsetX   int16  // horizontal trim offset
	OffsetY   int16  // vertical trim offset
	Rotated   bool   // true if the region is stored 90 degrees clockwise in the atlas
}

// Atlas holds one or more atlas page images and a map of named regions.
type Atlas struct {
	// Pages contains the atlas page images indexed by page number.
	Pages   []*ebiten.Image
	regions map[string]TextureRegion
}

// Region returns the TextureRegion for the given name. Missing names return
// a 1×1 magenta placeholder region so a typo shows up on screen instead of
// crashing.
func (a *Atlas) Region(name string) TextureRegion {
	if r, ok := a.regions[name]; ok {
		return r
	}
	return magentaRegion()
}

// HasRegion reports whether the atlas defines a region with the given name.
func (a *Atlas) HasRegion(name string) bool {
	_, ok := a.regions[name]
	return ok
}

// PageImage returns the page image backing a region, or the magenta
// placeholder image for placeholder and out-of-range pages.
func (a *Atlas) PageImage(r TextureRegion) *ebiten.Image {
	if r.Page == magentaPlaceholderPage || int(r.Page) >= len(a.Pages) {
		return ensureMagentaImage()
	}
	return a.Pages[r.Page]
}

// magenta placeholder singleton (no sync.Once — the framework is single-threaded)
var magentaImage *ebiten.Image

func ensureMagentaImage() *ebiten.Image {
	if magentaImage == nil {
		magentaImage = ebiten.NewImage(1, 1)
		magentaImage.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return magentaImage
}

// magentaPlaceholderPage is a sentinel page index used for placeholder
// regions. High enough to never collide with real atlas pages.
const magentaPlaceholderPage = 0xFFFF

func magentaRegion() TextureRegion {
	return TextureRegion{
		Page:      magentaPlaceholderPage,
		Width:     1,
		Height:    1,
		OriginalW: 1,
		OriginalH: 1,
	}
}

// LoadAtlas parses TexturePacker JSON data and associates the given page
// images. Supports both the hash format (single "frames" object) and the
// array format ("textures" array with per-page frame lists).
func LoadAtlas(jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	// Probe top-level keys to detect format.
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("gamebyte: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{
		Pages:   pages,
		regions: make(map[string]TextureRegion),
	}

	switch {
	case probe.Textures != nil:
		if err := parseArrayFormat(probe.Textures, atlas); err != nil {
			return nil, err
		}
	case probe.Frames != nil:
		if err := parseHashFrames(probe.Frames, 0, atlas); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("gamebyte: atlas JSON has neither \"frames\" nor \"textures\" key")
	}

	return atlas, nil
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame            jsonRect `json:"frame"`
	Rotated          bool     `json:"rotated"`
	Trimmed          bool     `json:"trimmed"`
	SpriteSourceSize jsonRect `json:"spriteSourceSize"`
	SourceSize       jsonSize `json:"sourceSize"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

// parseHashFrames parses the hash format: {"name": {frame...}, ...}
func parseHashFrames(raw json.RawMessage, pageIndex uint16, atlas *Atlas) error {
	var frames map[string]jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("gamebyte: failed to parse atlas frames: %w", err)
	}
	for name, f := range frames {
		atlas.regions[name] = frameToRegion(f, pageIndex)
	}
	return nil
}

// parseArrayFormat parses the array format: [{"image":"...", "frames":{...}}, ...]
func parseArrayFormat(raw json.RawMessage, atlas *Atlas) error {
	var textures []jsonTexturePage
	if err := json.Unmarshal(raw, &textures); err != nil {
		return fmt.Errorf("gamebyte: failed to parse atlas textures array: %w", err)
	}
	for i, tex := range textures {
		for name, f := range tex.Frames {
			atlas.regions[name] = frameToRegion(f, uint16(i))
		}
	}
	return nil
}

func frameToRegion(f jsonFrame, page uint16) TextureRegion {
	return TextureRegion{
		Page:      page,
		X:         uint16(f.Frame.X),
		Y:         uint16(f.Frame.Y),
		Width:     uint16(f.Frame.W),
		Height:    uint16(f.Frame.H),
		OriginalW: uint16(f.SourceSize.W),
		OriginalH: uint16(f.SourceSize.H),
		OffsetX:   int16(f.SpriteSourceSize.X),
		OffsetY:   int16(f.SpriteSourceSize.Y),
		Rotated:   f.Rotated,
	}
}

// ── Asset registry ───────────────────────────────────────────────────────────

// Assets is a named registry of loaded images and atlases. It implements
// Disposable, so a scene can hand its assets to the resource tracker and
// have them deallocated when the scene's scope is disposed.
type Assets struct {
	images  map[string]*ebiten.Image
	atlases map[string]*Atlas
	log     *zap.Logger
}

// NewAssets creates an empty registry. A nil logger falls back to a no-op
// logger.
func NewAssets(log *zap.Logger) *Assets {
	if log == nil {
		log = zap.NewNop()
	}
	return &Assets{
		images:  make(map[string]*ebiten.Image),
		atlases: make(map[string]*Atlas),
		log:     log,
	}
}

// AddImage registers a pre-loaded image under a name. Re-registering a name
// replaces the prior image.
func (a *Assets) AddImage(name string, img *ebiten.Image) {
	a.images[name] = img
}

// LoadImageFile decodes the image at path and registers it under name.
func (a *Assets) LoadImageFile(name, path string) error {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return fmt.Errorf("gamebyte: loading image %q from %s: %w", name, path, err)
	}
	a.images[name] = img
	return nil
}

// Image returns the named image.
func (a *Assets) Image(name string) (*ebiten.Image, bool) {
	img, ok := a.images[name]
	return img, ok
}

// AddAtlas registers a parsed atlas under a name.
func (a *Assets) AddAtlas(name string, atlas *Atlas) {
	a.atlases[name] = atlas
}

// Atlas returns the named atlas.
func (a *Assets) Atlas(name string) (*Atlas, bool) {
	atlas, ok := a.atlases[name]
	return atlas, ok
}

// Dispose deallocates every registered image and atlas page and clears the
// registry. Always returns nil; it exists to satisfy Disposable.
func (a *Assets) Dispose() error {
	for name, img := range a.images {
		if img != nil {
			img.Deallocate()
		}
		delete(a.images, name)
	}
	for name, atlas := range a.atlases {
		for _, page := range atlas.Pages {
			if page != nil {
				page.Deallocate()
			}
		}
		delete(a.atlases, name)
	}
	a.log.Debug("assets disposed")
	return nil
}

// AssetsProvider binds the shared asset registry into the container under
// "assets". It is deferred: the registry is built on first resolution.
type AssetsProvider struct {
	BaseProvider
}

func (p *AssetsProvider) Register(app *App) error {
	app.Container().Singleton("assets", func(*Container) (any, error) {
		return NewAssets(app.Logger()), nil
	})
	return nil
}

func (p *AssetsProvider) Provides() []string { return []string{"assets"} }
func (p *AssetsProvider) IsDeferred() bool   { return true }
