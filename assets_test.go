package gamebyte

import (
	"context"
	"testing"
)

const singlePageJSON = `{
  "frames": {
    "hero.png": {
      "frame": {"x": 0, "y": 0, "w": 64, "h": 64},
      "rotated": false,
      "trimmed": false,
      "spriteSourceSize": {"x": 0, "y": 0, "w": 64, "h": 64},
      "sourceSize": {"w": 64, "h": 64}
    },
    "trimmed.png": {
      "frame": {"x": 100, "y": 50, "w": 60, "h": 58},
      "rotated": false,
      "trimmed": true,
      "spriteSourceSize": {"x": 2, "y": 3, "w": 60, "h": 58},
      "sourceSize": {"w": 64, "h": 64}
    },
    "rotated.png": {
      "frame": {"x": 200, "y": 0, "w": 48, "h": 32},
      "rotated": true,
      "trimmed": false,
      "spriteSourceSize": {"x": 0, "y": 0, "w": 48, "h": 32},
      "sourceSize": {"w": 32, "h": 48}
    }
  }
}`

const multiPageJSON = `{
  "textures": [
    {
      "image": "atlas-0.png",
      "frames": {
        "page0.png": {
          "frame": {"x": 0, "y": 0, "w": 64, "h": 64},
          "rotated": false,
          "trimmed": false,
          "spriteSourceSize": {"x": 0, "y": 0, "w": 64, "h": 64},
          "sourceSize": {"w": 64, "h": 64}
        }
      }
    },
    {
      "image": "atlas-1.png",
      "frames": {
        "page1.png": {
          "frame": {"x": 16, "y": 16, "w": 32, "h": 32},
          "rotated": false,
          "trimmed": false,
          "spriteSourceSize": {"x": 0, "y": 0, "w": 32, "h": 32},
          "sourceSize": {"w": 32, "h": 32}
        }
      }
    }
  ]
}`

func TestLoadAtlasHashFormat(t *testing.T) {
	atlas, err := LoadAtlas([]byte(singlePageJSON), nil)
	if err != nil {
		t.Fatalf("LoadAtlas() error: %v", err)
	}

	hero := atlas.Region("hero.png")
	if hero.Width != 64 || hero.Height != 64 {
		t.Errorf("hero = %dx%d, want 64x64", hero.Width, hero.Height)
	}

	trimmed := atlas.Region("trimmed.png")
	if trimmed.OffsetX != 2 || trimmed.OffsetY != 3 {
		t.Errorf("trim offsets = %d,%d, want 2,3", trimmed.OffsetX, trimmed.OffsetY)
	}
	if trimmed.OriginalW != 64 || trimmed.OriginalH != 64 {
		t.Errorf("untrimmed size = %dx%d, want 64x64", trimmed.OriginalW, trimmed.OriginalH)
	}

	if !atlas.Region("rotated.png").Rotated {
		t.Error("rotated frame should carry the rotation flag")
	}
}

func TestLoadAtlasArrayFormat(t *testing.T) {
	atlas, err := LoadAtlas([]byte(multiPageJSON), nil)
	if err != nil {
		t.Fatalf("LoadAtlas() error: %v", err)
	}
	if got := atlas.Region("page0.png").Page; got != 0 {
		t.Errorf("page0 page index = %d, want 0", got)
	}
	if got := atlas.Region("page1.png").Page; got != 1 {
		t.Errorf("page1 page index = %d, want 1", got)
	}
}

func TestLoadAtlasInvalid(t *testing.T) {
	if _, err := LoadAtlas([]byte("{not json"), nil); err == nil {
		t.Error("LoadAtlas() should fail on malformed JSON")
	}
	if _, err := LoadAtlas([]byte(`{"meta": {}}`), nil); err == nil {
		t.Error("LoadAtlas() should fail when neither frames nor textures exist")
	}
}

func TestAtlasMissingRegionPlaceholder(t *testing.T) {
	atlas, err := LoadAtlas([]byte(singlePageJSON), nil)
	if err != nil {
		t.Fatal(err)
	}
	if atlas.HasRegion("typo.png") {
		t.Error("HasRegion() should be false for an unknown name")
	}
	r := atlas.Region("typo.png")
	if r.Page != magentaPlaceholderPage {
		t.Errorf("placeholder page = %d, want sentinel %d", r.Page, magentaPlaceholderPage)
	}
	if r.Width != 1 || r.Height != 1 {
		t.Errorf("placeholder = %dx%d, want 1x1", r.Width, r.Height)
	}
}

func TestAssetsRegistry(t *testing.T) {
	a := NewAssets(nil)
	if _, ok := a.Image("missing"); ok {
		t.Error("Image() should report missing names")
	}

	a.AddImage("hero", nil)
	if _, ok := a.Image("hero"); !ok {
		t.Error("Image() should find registered names")
	}

	atlas, _ := LoadAtlas([]byte(singlePageJSON), nil)
	a.AddAtlas("main", atlas)
	if got, ok := a.Atlas("main"); !ok || got != atlas {
		t.Error("Atlas() should return the registered atlas")
	}

	if err := a.Dispose(); err != nil {
		t.Fatalf("Dispose() error: %v", err)
	}
	if _, ok := a.Image("hero"); ok {
		t.Error("Dispose() should clear the registry")
	}
	if _, ok := a.Atlas("main"); ok {
		t.Error("Dispose() should clear atlases")
	}
}

func TestAssetsProviderDeferred(t *testing.T) {
	app := New()
	app.RegisterProvider(&AssetsProvider{})
	if err := app.Initialize(); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}

	if !app.Container().Bound("assets") {
		t.Error("provider should bind during Initialize even when deferred")
	}

	assets, err := Resolve[*Assets](app.Container(), "assets")
	if err != nil {
		t.Fatalf("Resolve(assets) error: %v", err)
	}
	if assets == nil {
		t.Fatal("assets should be constructed on first resolution")
	}

	again, _ := Resolve[*Assets](app.Container(), "assets")
	if again != assets {
		t.Error("assets should be a singleton")
	}
}

func TestAssetsTrackedInSceneScope(t *testing.T) {
	app := New()
	log := &callLog{}
	app.Scenes().Add(newSpyScene("game", log))
	app.Scenes().SwitchTo(context.Background(), "game")

	assets := NewAssets(nil)
	if err := app.Resources().Track(SceneScope("game"), assets); err != nil {
		t.Fatalf("Track() error: %v", err)
	}
	// Disposal happens through the scope when the scene deactivates; the
	// registry just has to satisfy Disposable.
	var _ Disposable = assets
}
