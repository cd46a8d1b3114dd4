package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	cfg "github.com/automoto/jeep-parallax/config"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func testManifest() []cfg.AssetSpec {
	return []cfg.AssetSpec{
		{Name: cfg.AssetSky, Path: "images/sky.png"},
		{Name: cfg.AssetJeep, Path: "images/jeep.png"},
	}
}

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"images/sky.png":  {Data: encodePNG(t, 8, 4)},
		"images/jeep.png": {Data: encodePNG(t, 6, 2)},
	}

	res := Load(context.Background(), FSSource{FS: fsys}, testManifest())
	if res.Err != nil {
		t.Fatalf("load: %v", res.Err)
	}
	if len(res.Images) != 2 {
		t.Fatalf("got %d images, want 2", len(res.Images))
	}
	if got := res.Images[cfg.AssetSky].Bounds().Dx(); got != 8 {
		t.Fatalf("sky width = %d, want 8", got)
	}
	if got := res.Images[cfg.AssetJeep].Bounds().Dy(); got != 2 {
		t.Fatalf("jeep height = %d, want 2", got)
	}
}

func TestLoadMissingIsAllOrNothing(t *testing.T) {
	fsys := fstest.MapFS{
		"images/sky.png": {Data: encodePNG(t, 8, 4)},
	}

	res := Load(context.Background(), FSSource{FS: fsys}, testManifest())
	if res.Err == nil {
		t.Fatal("expected an error for the missing jeep image")
	}
	if res.Images != nil {
		t.Fatalf("partial result returned: %v", res.Images)
	}
	if !errors.Is(res.Err, ErrMissing) {
		t.Fatalf("err = %v, want ErrMissing", res.Err)
	}
	var le *LoadError
	if !errors.As(res.Err, &le) {
		t.Fatalf("err = %T, want *LoadError", res.Err)
	}
	if le.Name != cfg.AssetJeep {
		t.Fatalf("failed asset = %s, want %s", le.Name, cfg.AssetJeep)
	}
}

func TestLoadCorruptImage(t *testing.T) {
	fsys := fstest.MapFS{
		"images/sky.png":  {Data: []byte("not a png")},
		"images/jeep.png": {Data: encodePNG(t, 6, 2)},
	}

	res := Load(context.Background(), FSSource{FS: fsys}, testManifest())
	var le *LoadError
	if !errors.As(res.Err, &le) || le.Name != cfg.AssetSky {
		t.Fatalf("err = %v, want a sky load error", res.Err)
	}
	if errors.Is(res.Err, ErrMissing) {
		t.Fatal("decode failure reported as missing")
	}
}

func TestLoadFromHTTP(t *testing.T) {
	sky := encodePNG(t, 8, 4)
	jeep := encodePNG(t, 6, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/static/images/sky.png":
			w.Write(sky)
		case "/static/images/jeep.png":
			w.Write(jeep)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src := HTTPSource{BaseURL: srv.URL + "/static", Client: srv.Client()}
	res := Load(context.Background(), src, testManifest())
	if res.Err != nil {
		t.Fatalf("load: %v", res.Err)
	}
	if len(res.Images) != 2 {
		t.Fatalf("got %d images, want 2", len(res.Images))
	}

	res = Load(context.Background(), src, []cfg.AssetSpec{{Name: cfg.AssetMountains, Path: "images/mountains.png"}})
	if !errors.Is(res.Err, ErrMissing) {
		t.Fatalf("err = %v, want ErrMissing for a 404", res.Err)
	}
}

func TestLoadHTTPServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	res := Load(context.Background(), HTTPSource{BaseURL: srv.URL}, testManifest())
	if res.Err == nil {
		t.Fatal("expected an error for a 500 response")
	}
	if errors.Is(res.Err, ErrMissing) || errors.Is(res.Err, ErrTimeout) {
		t.Fatalf("err = %v, want a plain load error", res.Err)
	}
}

// stallSource never answers and ignores cancellation.
type stallSource struct {
	release chan struct{}
}

func (s stallSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	<-s.release
	return nil, errors.New("released")
}

func TestLoadTimesOut(t *testing.T) {
	src := stallSource{release: make(chan struct{})}
	defer close(src.release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	res := Load(ctx, src, testManifest())
	if !errors.Is(res.Err, ErrTimeout) {
		t.Fatalf("err = %v, want ErrTimeout", res.Err)
	}
	if res.Images != nil {
		t.Fatal("timed out load returned images")
	}
}

func TestEmbeddedManifest(t *testing.T) {
	res := Load(context.Background(), FSSource{FS: Embedded()}, cfg.Assets.Manifest)
	if res.Err != nil {
		t.Fatalf("embedded load: %v", res.Err)
	}

	side := cfg.C.Height
	for _, layer := range []cfg.LayerConfig{cfg.Sky, cfg.Mountains} {
		b := res.Images[layer.Asset].Bounds()
		if b.Dy() < side {
			t.Fatalf("%s height %d shorter than the surface", layer.Name, b.Dy())
		}
		if need := int(layer.Max) + side; b.Dx() < need {
			t.Fatalf("%s width %d cannot show offset %v (need %d)", layer.Name, b.Dx(), layer.Max, need)
		}
	}

	jeep := res.Images[cfg.AssetJeep].Bounds()
	if jeep.Dx() != int(cfg.Jeep.SheetWidth) || jeep.Dy() != int(cfg.Jeep.Height) {
		t.Fatalf("jeep sheet %dx%d, want %vx%v", jeep.Dx(), jeep.Dy(), cfg.Jeep.SheetWidth, cfg.Jeep.Height)
	}
}

func TestNilBundle(t *testing.T) {
	var b *Bundle
	if b.Image(cfg.AssetSky) != nil || b.Len() != 0 {
		t.Fatal("nil bundle should be empty")
	}
	if _, err := NewBundle(Result{Err: ErrTimeout}); !errors.Is(err, ErrTimeout) {
		t.Fatalf("NewBundle err = %v, want ErrTimeout", err)
	}
}
