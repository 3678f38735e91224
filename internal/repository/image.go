package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ImageFile is a stored image plus the ownership metadata recorded with it.
type ImageFile struct {
	ID       primitive.ObjectID
	Filename string
	Owner    primitive.ObjectID
	Data     []byte
}

// ImageRepository stores flight photos in a GridFS bucket, tagging each file
// with the uploading user so ownership can be enforced on retrieval.
type ImageRepository interface {
	Upload(ctx context.Context, filename string, owner primitive.ObjectID, data []byte) (primitive.ObjectID, error)
	Download(ctx context.Context, id primitive.ObjectID) (*ImageFile, error)
	Owner(ctx context.Context, id primitive.ObjectID) (primitive.ObjectID, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type imageRepository struct {
	bucket *gridfs.Bucket
	files  *mongo.Collection
}

// NewImageRepository creates a GridFS-backed ImageRepository.
func NewImageRepository(db *mongo.Database) (ImageRepository, error) {
	bucket, err := gridfs.NewBucket(db)
	if err != nil {
		return nil, fmt.Errorf("failed to open gridfs bucket: %w", err)
	}
	return &imageRepository{
		bucket: bucket,
		files:  db.Collection("fs.files"),
	}, nil
}

func (r *imageRepository) Upload(ctx context.Context, filename string, owner primitive.ObjectID, data []byte) (primitive.ObjectID, error) {
	opts := options.GridFSUpload().SetMetadata(bson.M{"user": owner})
	id, err := r.bucket.UploadFromStream(filename, bytes.NewReader(data), opts)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to upload image %s: %w", filename, err)
	}
	return id, nil
}

// fileDoc mirrors the subset of the fs.files document this repository reads.
type fileDoc struct {
	ID       primitive.ObjectID `bson:"_id"`
	Filename string             `bson:"filename"`
	Metadata struct {
		User primitive.ObjectID `bson:"user"`
	} `bson:"metadata"`
}

func (r *imageRepository) Download(ctx context.Context, id primitive.ObjectID) (*ImageFile, error) {
	var doc fileDoc
	if err := r.files.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find image %s: %w", id.Hex(), err)
	}

	var buf bytes.Buffer
	if _, err := r.bucket.DownloadToStream(id, &buf); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to download image %s: %w", id.Hex(), err)
	}

	return &ImageFile{
		ID:       doc.ID,
		Filename: doc.Filename,
		Owner:    doc.Metadata.User,
		Data:     buf.Bytes(),
	}, nil
}

func (r *imageRepository) Owner(ctx context.Context, id primitive.ObjectID) (primitive.ObjectID, error) {
	var doc fileDoc
	if err := r.files.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return primitive.NilObjectID, ErrNotFound
		}
		return primitive.NilObjectID, fmt.Errorf("failed to find image %s: %w", id.Hex(), err)
	}
	return doc.Metadata.User, nil
}

func (r *imageRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := r.bucket.Delete(id); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete image %s: %w", id.Hex(), err)
	}
	return nil
}
