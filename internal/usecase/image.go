package usecase

import (
	"context"

	"food-ordering/internal/data/entity"
	"food-ordering/pkg/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const maxImagesPerUpload = 5

type imageManager struct {
	host storage.ImageHost
	log  *zap.Logger
}

func newImageManager(host storage.ImageHost, log *zap.Logger) *imageManager {
	return &imageManager{host: host, log: log}
}

// uploadAll sends every file to the host concurrently and returns the
// images in request order. The first failure aborts the batch; files
// already stored are left on the host.
func (m *imageManager) uploadAll(ctx context.Context, folder string, files []storage.ImageUpload) ([]entity.Image, error) {
	if len(files) == 0 {
		return nil, ErrBadRequest("No images uploaded")
	}
	if len(files) > maxImagesPerUpload {
		return nil, ErrBadRequest("Too many images, at most 5 per upload")
	}

	images := make([]entity.Image, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			stored, err := m.host.Upload(gctx, folder, file)
			if err != nil {
				return err
			}
			images[i] = entity.Image{PublicID: stored.ID, URL: stored.URL}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		m.log.Error("Failed to upload images", zap.Error(err), zap.String("folder", folder))
		return nil, ErrInternal("failed to upload images", err)
	}

	return images, nil
}

// destroyAll removes every image from the host concurrently.
func (m *imageManager) destroyAll(ctx context.Context, images []entity.Image) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, img := range images {
		g.Go(func() error {
			return m.host.Destroy(gctx, img.PublicID)
		})
	}

	if err := g.Wait(); err != nil {
		m.log.Error("Failed to destroy images", zap.Error(err))
		return ErrInternal("failed to delete images", err)
	}
	return nil
}

// detach destroys publicID on the host and returns images without it.
func (m *imageManager) detach(ctx context.Context, images []entity.Image, publicID string) ([]entity.Image, error) {
	idx := entity.IndexOfImage(images, publicID)
	if idx < 0 {
		return nil, ErrNotFound("Image not found")
	}

	if err := m.host.Destroy(ctx, publicID); err != nil {
		m.log.Error("Failed to destroy image", zap.Error(err), zap.String("public_id", publicID))
		return nil, ErrInternal("failed to delete image", err)
	}

	remaining := make([]entity.Image, 0, len(images)-1)
	remaining = append(remaining, images[:idx]...)
	return append(remaining, images[idx+1:]...), nil
}
