package assets

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"time"

	cfg "github.com/automoto/jeep-parallax/config"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
)

var (
	//go:embed all:images
	imageFS embed.FS
)

var (
	// ErrTimeout is returned when the load deadline passes before every image arrived.
	ErrTimeout = errors.New("asset load timed out")
	// ErrMissing is returned when a source has no file at the requested path.
	ErrMissing = errors.New("asset not found")
)

// LoadError records which manifest entry failed to load.
type LoadError struct {
	Name cfg.AssetName
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s (%s): %v", e.Name, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Source opens asset files by manifest path.
type Source interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// FSSource reads assets from a filesystem, typically the embedded images.
type FSSource struct {
	FS fs.FS
}

func (s FSSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.FS.Open(path)
}

// HTTPSource fetches assets relative to a base URL.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

func (s HTTPSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	u, err := url.JoinPath(s.BaseURL, path)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return resp.Body, nil
	case http.StatusNotFound:
		resp.Body.Close()
		return nil, fmt.Errorf("%s: %w", u, fs.ErrNotExist)
	default:
		resp.Body.Close()
		return nil, fmt.Errorf("%s: unexpected status %s", u, resp.Status)
	}
}

// Embedded returns the images compiled into the binary.
func Embedded() fs.FS {
	return imageFS
}

// DefaultSource returns the HTTP source when a base URL is configured,
// otherwise the embedded images.
func DefaultSource() Source {
	if cfg.Assets.BaseURL != "" {
		return HTTPSource{
			BaseURL: cfg.Assets.BaseURL,
			Client:  &http.Client{Timeout: cfg.Assets.LoadTimeout},
		}
	}
	return FSSource{FS: imageFS}
}

// Result is the outcome of a Load: either every image or an error.
type Result struct {
	Images  map[cfg.AssetName]image.Image
	Err     error
	Elapsed time.Duration
}

// Load fetches and decodes every manifest entry concurrently. The first
// failure cancels the remaining fetches and no partial result is returned.
func Load(ctx context.Context, src Source, manifest []cfg.AssetSpec) Result {
	start := time.Now()
	decoded := make([]image.Image, len(manifest))

	g, gctx := errgroup.WithContext(ctx)
	for i, spec := range manifest {
		g.Go(func() error {
			img, err := loadImage(gctx, src, spec.Path)
			if err != nil {
				return &LoadError{Name: spec.Name, Path: spec.Path, Err: err}
			}
			decoded[i] = img
			return nil
		})
	}

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		// A source that ignores cancellation must not stall the caller.
		err = ctx.Err()
	}
	if err != nil {
		return Result{Err: classify(ctx, err), Elapsed: time.Since(start)}
	}

	images := make(map[cfg.AssetName]image.Image, len(manifest))
	for i, spec := range manifest {
		images[spec.Name] = decoded[i]
	}
	return Result{Images: images, Elapsed: time.Since(start)}
}

func loadImage(ctx context.Context, src Source, path string) (image.Image, error) {
	rc, err := src.Open(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrMissing, err)
		}
		return nil, err
	}
	defer rc.Close()

	img, _, err := image.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return img, nil
}

func classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		if errors.Is(err, ErrTimeout) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return err
}

// Bundle holds the GPU images of a successful load, keyed by asset name.
type Bundle struct {
	images map[cfg.AssetName]*ebiten.Image
}

// NewBundle uploads the decoded images of a load result.
func NewBundle(r Result) (*Bundle, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	b := &Bundle{images: make(map[cfg.AssetName]*ebiten.Image, len(r.Images))}
	for name, img := range r.Images {
		b.images[name] = ebiten.NewImageFromImage(img)
	}
	return b, nil
}

// Image returns the named image, or nil if the bundle does not hold it.
func (b *Bundle) Image(name cfg.AssetName) *ebiten.Image {
	if b == nil {
		return nil
	}
	return b.images[name]
}

// Len reports how many images the bundle holds.
func (b *Bundle) Len() int {
	if b == nil {
		return 0
	}
	return len(b.images)
}
