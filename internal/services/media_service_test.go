package services

import (
	"context"
	"io"
	"strings"
	"testing"

	"aeromart/internal/apperrors"
	"aeromart/internal/db/repositories"
)

type uploadCtxKey struct{}

// fakeMediaStore records the context and filename each call received.
type fakeMediaStore struct {
	ctx      context.Context
	filename string
	opened   *repositories.StoredFile
}

func (f *fakeMediaStore) Upload(ctx context.Context, src io.Reader, filename, contentType string) (string, error) {
	f.ctx = ctx
	f.filename = filename
	return "66b1f00d66b1f00d66b1f00d", nil
}

func (f *fakeMediaStore) Open(ctx context.Context, id string) (*repositories.StoredFile, error) {
	f.ctx = ctx
	return f.opened, nil
}

func (f *fakeMediaStore) Delete(ctx context.Context, id string) error {
	f.ctx = ctx
	return nil
}

func TestUploadReturnsServedURL(t *testing.T) {
	store := &fakeMediaStore{}
	svc := NewMediaService(store, nil)

	url, err := svc.Upload(context.Background(), strings.NewReader("img"), "Plane Photo.JPG", "image/jpeg", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "/api/media/66b1f00d66b1f00d66b1f00d" {
		t.Errorf("unexpected url %q", url)
	}
	if !strings.HasSuffix(store.filename, ".jpg") {
		t.Errorf("stored name must keep a lowercased extension, got %q", store.filename)
	}
	if strings.Contains(store.filename, "Plane") {
		t.Errorf("client filename must not survive, got %q", store.filename)
	}
}

func TestUploadRejectsUnknownContentType(t *testing.T) {
	svc := NewMediaService(&fakeMediaStore{}, nil)

	_, err := svc.Upload(context.Background(), strings.NewReader("x"), "doc.pdf", "application/pdf", 3)
	if !apperrors.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestUploadRejectsOversizeFile(t *testing.T) {
	svc := NewMediaService(&fakeMediaStore{}, nil)

	_, err := svc.Upload(context.Background(), strings.NewReader("x"), "big.mp4", "video/mp4", maxUploadBytes+1)
	if !apperrors.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestMediaCallsForwardRequestContext(t *testing.T) {
	store := &fakeMediaStore{opened: &repositories.StoredFile{ContentType: "image/png"}}
	svc := NewMediaService(store, nil)
	ctx := context.WithValue(context.Background(), uploadCtxKey{}, "req")

	if _, err := svc.Upload(ctx, strings.NewReader("img"), "a.png", "image/png", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.ctx.Value(uploadCtxKey{}) != "req" {
		t.Error("upload must run under the caller's context")
	}

	if _, err := svc.Open(ctx, "66b1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.ctx.Value(uploadCtxKey{}) != "req" {
		t.Error("open must run under the caller's context")
	}

	if err := svc.Delete(ctx, "66b1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.ctx.Value(uploadCtxKey{}) != "req" {
		t.Error("delete must run under the caller's context")
	}
}

func TestOpenDefaultsContentType(t *testing.T) {
	store := &fakeMediaStore{opened: &repositories.StoredFile{}}
	svc := NewMediaService(store, nil)

	file, err := svc.Open(context.Background(), "66b1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file.ContentType != "application/octet-stream" {
		t.Errorf("expected octet-stream default, got %q", file.ContentType)
	}
}
