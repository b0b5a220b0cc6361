package video

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidvault/internal/media"
)

type stubRepo struct {
	createErr error
	created   []*Video
}

func (r *stubRepo) Create(_ context.Context, v *Video) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, v)
	return nil
}

func (r *stubRepo) List(_ context.Context) ([]*Video, error) {
	return r.created, nil
}

type recordingUploader struct {
	result      *media.UploadResult
	uploadErr   error
	destroyed   []string
	lastFolder  string
	lastPayload []byte
}

func (u *recordingUploader) Upload(_ context.Context, data []byte, _, folder string) (*media.UploadResult, error) {
	u.lastFolder = folder
	u.lastPayload = data
	if u.uploadErr != nil {
		return nil, u.uploadErr
	}
	return u.result, nil
}

func (u *recordingUploader) Destroy(_ context.Context, publicID string) error {
	u.destroyed = append(u.destroyed, publicID)
	return nil
}

func TestServiceUpload_TagsDestinationFolder(t *testing.T) {
	up := &recordingUploader{result: &media.UploadResult{PublicID: "f/1", Bytes: 5}}
	repo := &stubRepo{}
	s := NewService(repo, up, "nextjs-cloudinary", time.Second)

	v, err := s.Upload(context.Background(), UploadInput{Data: []byte("abc"), Title: "t"})
	require.NoError(t, err)

	assert.Equal(t, "nextjs-cloudinary", up.lastFolder)
	assert.Equal(t, []byte("abc"), up.lastPayload)
	assert.Equal(t, "f/1", v.PublicID)
	assert.Equal(t, "5", v.CompressedSize)
	assert.Len(t, repo.created, 1)
}

func TestServiceUpload_NotConfigured(t *testing.T) {
	repo := &stubRepo{}
	s := NewService(repo, nil, "nextjs-cloudinary", time.Second)

	_, err := s.Upload(context.Background(), UploadInput{Data: []byte("abc")})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Empty(t, repo.created)
	assert.False(t, s.Ready())
}

func TestServiceUpload_EmptyPayload(t *testing.T) {
	up := &recordingUploader{result: &media.UploadResult{PublicID: "f/1"}}
	s := NewService(&stubRepo{}, up, "nextjs-cloudinary", time.Second)

	_, err := s.Upload(context.Background(), UploadInput{})
	assert.ErrorIs(t, err, ErrNoFile)
	assert.Nil(t, up.lastPayload)
}

func TestServiceUpload_HostErrorWrapped(t *testing.T) {
	up := &recordingUploader{uploadErr: errors.New("transfer refused")}
	repo := &stubRepo{}
	s := NewService(repo, up, "nextjs-cloudinary", time.Second)

	_, err := s.Upload(context.Background(), UploadInput{Data: []byte("abc")})
	assert.ErrorIs(t, err, ErrUploadFailed)
	assert.Contains(t, err.Error(), "transfer refused")
	assert.Empty(t, repo.created)
	assert.Empty(t, up.destroyed)
}

func TestServiceUpload_PersistenceFailureDestroysRemoteAsset(t *testing.T) {
	up := &recordingUploader{result: &media.UploadResult{PublicID: "orphan/1", Bytes: 9}}
	repo := &stubRepo{createErr: errors.New("db down")}
	s := NewService(repo, up, "nextjs-cloudinary", time.Second)

	_, err := s.Upload(context.Background(), UploadInput{Data: []byte("abc")})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUploadFailed)
	assert.Equal(t, []string{"orphan/1"}, up.destroyed)
}
