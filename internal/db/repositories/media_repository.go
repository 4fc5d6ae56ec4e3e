package repositories

import (
	"context"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aeromart/internal/apperrors"
)

// MediaRepository stores uploaded images and videos in a GridFS bucket.
// Files are addressed by their GridFS object id.
type MediaRepository struct {
	db *mongo.Database
}

func NewMediaRepository(db *mongo.Database) *MediaRepository {
	return &MediaRepository{db: db}
}

// Upload streams src into GridFS under filename and returns the hex id
// of the stored file. The content type is kept in the file metadata so
// downloads can set the right header. Cancelling ctx aborts the stream.
func (r *MediaRepository) Upload(ctx context.Context, src io.Reader, filename, contentType string) (string, error) {
	bucket, err := gridfs.NewBucket(r.db)
	if err != nil {
		return "", fmt.Errorf("MediaRepository.Upload: %w", err)
	}

	opts := options.GridFSUpload().SetMetadata(bson.M{"contentType": contentType})
	_ = ctx
	stream, err := bucket.OpenUploadStream(filename, opts)
	if err != nil {
		return "", fmt.Errorf("MediaRepository.Upload: %w", err)
	}
	defer stream.Close()

	if _, err := io.Copy(stream, src); err != nil {
		return "", fmt.Errorf("MediaRepository.Upload copy: %w", err)
	}
	return stream.FileID.(primitive.ObjectID).Hex(), nil
}

// StoredFile is an open download handle plus the metadata a caller
// needs before streaming the body.
type StoredFile struct {
	Name        string
	ContentType string
	Length      int64
	stream      *gridfs.DownloadStream
}

func (f *StoredFile) Read(p []byte) (int, error) { return f.stream.Read(p) }
func (f *StoredFile) Close() error               { return f.stream.Close() }

// Open returns a readable handle on the stored file. The caller must
// Close it.
func (r *MediaRepository) Open(ctx context.Context, id string) (*StoredFile, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound("File not found")
	}

	bucket, err := gridfs.NewBucket(r.db)
	if err != nil {
		return nil, fmt.Errorf("MediaRepository.Open: %w", err)
	}

	_ = ctx
	stream, err := bucket.OpenDownloadStream(oid)
	if err == gridfs.ErrFileNotFound {
		return nil, apperrors.NewNotFound("File not found")
	}
	if err != nil {
		return nil, fmt.Errorf("MediaRepository.Open: %w", err)
	}

	file := stream.GetFile()
	stored := &StoredFile{Name: file.Name, Length: file.Length, stream: stream}
	if len(file.Metadata) > 0 {
		var meta struct {
			ContentType string `bson:"contentType"`
		}
		if err := bson.Unmarshal(file.Metadata, &meta); err == nil {
			stored.ContentType = meta.ContentType
		}
	}
	return stored, nil
}

// Delete removes the stored file; missing files are not an error.
func (r *MediaRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NewNotFound("File not found")
	}

	bucket, err := gridfs.NewBucket(r.db)
	if err != nil {
		return fmt.Errorf("MediaRepository.Delete: %w", err)
	}
	if err := bucket.DeleteContext(ctx, oid); err != nil && err != gridfs.ErrFileNotFound {
		return fmt.Errorf("MediaRepository.Delete: %w", err)
	}
	return nil
}
