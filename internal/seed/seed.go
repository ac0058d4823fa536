package seed

import (
	"context"
	"io"
	"net/http"
	"path"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Ravi-kumar178/ccjewllery/internal/upstream"
)

// ProductWriter pushes one product to the backend.
type ProductWriter interface {
	AddProduct(ctx context.Context, in upstream.AddProductInput) error
}

// Seeder uploads catalog items through the backend's product add endpoint.
// Images are fetched from their source URLs and attached as uploads; an
// unreachable image is logged and the product goes up without one.
type Seeder struct {
	writer ProductWriter
	images *http.Client
	log    *logrus.Logger
}

func New(writer ProductWriter, log *logrus.Logger) *Seeder {
	return &Seeder{
		writer: writer,
		images: &http.Client{Timeout: 30 * time.Second},
		log:    log,
	}
}

// Apply pushes every item and returns how many made it. It stops at the
// first backend failure so a broken run is visible rather than half silent.
func (s *Seeder) Apply(ctx context.Context, items []Item) (int, error) {
	applied := 0
	for _, item := range items {
		input := upstream.AddProductInput{
			Name:        item.Name,
			Category:    item.Category,
			SubCategory: item.SubCategory,
			Description: item.Description,
			PriceCents:  item.PriceCents,
			Bestseller:  item.Bestseller,
		}
		if item.ImageURL != "" {
			file, err := s.fetchImage(ctx, item.ImageURL)
			if err != nil {
				s.log.WithError(err).WithField("product", item.Name).Warn("image fetch failed, seeding without image")
			} else {
				input.Images = []upstream.MultipartFile{*file}
			}
		}
		if err := s.writer.AddProduct(ctx, input); err != nil {
			return applied, errors.Wrapf(err, "add product %q", item.Name)
		}
		applied++
		s.log.WithField("product", item.Name).Info("seeded")
	}
	return applied, nil
}

func (s *Seeder) fetchImage(ctx context.Context, url string) (*upstream.MultipartFile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build image request")
	}
	resp, err := s.images.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch image")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetch image: status %d", resp.StatusCode)
	}
	content, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, errors.Wrap(err, "read image body")
	}
	return &upstream.MultipartFile{
		Field:    "image1",
		Filename: path.Base(req.URL.Path),
		Content:  content,
	}, nil
}
