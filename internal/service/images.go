package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/azpsen/tailfin-api/internal/models"
	"github.com/azpsen/tailfin-api/internal/repository"
)

// ImageService stores and serves flight photos. Retrieval and deletion are
// restricted to the uploading user or an administrator.
type ImageService interface {
	Upload(ctx context.Context, actor *models.User, filename string, data []byte) (primitive.ObjectID, error)
	Get(ctx context.Context, actor *models.User, id primitive.ObjectID) (*repository.ImageFile, error)
	Delete(ctx context.Context, actor *models.User, id primitive.ObjectID) error
}

type imageService struct {
	images repository.ImageRepository
}

// NewImageService creates a new ImageService instance.
func NewImageService(images repository.ImageRepository) ImageService {
	return &imageService{images: images}
}

func (s *imageService) Upload(ctx context.Context, actor *models.User, filename string, data []byte) (primitive.ObjectID, error) {
	return s.images.Upload(ctx, filename, actor.ID, data)
}

func (s *imageService) Get(ctx context.Context, actor *models.User, id primitive.ObjectID) (*repository.ImageFile, error) {
	file, err := s.images.Download(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !Authorize(actor, file.Owner) {
		logrus.WithFields(logrus.Fields{
			"username": actor.Username,
			"image_id": id.Hex(),
		}).Warn("Attempted access to unauthorized image")
		return nil, ErrForbidden
	}
	return file, nil
}

func (s *imageService) Delete(ctx context.Context, actor *models.User, id primitive.ObjectID) error {
	owner, err := s.images.Owner(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !Authorize(actor, owner) {
		return ErrForbidden
	}
	return s.images.Delete(ctx, id)
}
