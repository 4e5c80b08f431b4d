package services

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/rentall-backend/internal/models"
)

type fakeS3 struct {
	s3iface.S3API
	puts []*s3.PutObjectInput
	body []byte
}

func (f *fakeS3) PutObjectWithContext(ctx aws.Context, in *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	f.puts = append(f.puts, in)
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func upload(name string, size int64, content []byte) (multipart.File, *multipart.FileHeader) {
	header := &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
	}
	return memFile{bytes.NewReader(content)}, header
}

var fixedNow = time.UnixMilli(1718000000000)

func TestMediaKey(t *testing.T) {
	s := NewStorageServiceWithClient(testConfig(), nil)
	s.now = func() time.Time { return fixedNow }
	user := uuid.MustParse("11111111-2222-3333-4444-555555555555")

	assert.Equal(t,
		"11111111-2222-3333-4444-555555555555/logos/1718000000000-my_logo__1_.png",
		s.MediaKey(user, models.MediaTypeLogo, "my logo (1).png"))
	assert.Equal(t,
		"11111111-2222-3333-4444-555555555555/videos/1718000000000-demo.mp4",
		s.MediaKey(user, models.MediaTypeVideo, "../../demo.mp4"))
}

func TestUploadMediaToS3(t *testing.T) {
	client := &fakeS3{}
	s := NewStorageServiceWithClient(testConfig(), client)
	s.now = func() time.Time { return fixedNow }
	user := uuid.New()

	file, header := upload("shot.png", 4, []byte("data"))
	result, err := s.UploadMedia(context.Background(), user, models.MediaTypeImage, file, header)
	require.NoError(t, err)

	require.Len(t, client.puts, 1)
	assert.Equal(t, "media", aws.StringValue(client.puts[0].Bucket))
	assert.Equal(t, result.Key, aws.StringValue(client.puts[0].Key))
	assert.Equal(t, []byte("data"), client.body)
	assert.Equal(t, "https://media.s3.us-east-1.amazonaws.com/"+result.Key, result.URL)
	assert.Equal(t, int64(4), result.Size)
}

func TestUploadMediaLocalMode(t *testing.T) {
	s := NewStorageServiceWithClient(testConfig(), nil)
	file, header := upload("logo.png", 3, []byte("png"))

	result, err := s.UploadMedia(context.Background(), uuid.New(), models.MediaTypeLogo, file, header)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/"+result.Key, result.URL)
}

func TestUploadMediaValidation(t *testing.T) {
	s := NewStorageServiceWithClient(testConfig(), &fakeS3{})
	ctx := context.Background()

	file, header := upload("logo.png", 1, []byte("x"))
	_, err := s.UploadMedia(ctx, uuid.New(), models.MediaType("banner"), file, header)
	assert.ErrorIs(t, err, ErrInvalidMediaType)

	file, header = upload("logo.exe", 1, []byte("x"))
	_, err = s.UploadMedia(ctx, uuid.New(), models.MediaTypeLogo, file, header)
	assert.ErrorIs(t, err, ErrFileTypeRejected)

	file, header = upload("logo.png", 3*1024*1024, []byte("x"))
	_, err = s.UploadMedia(ctx, uuid.New(), models.MediaTypeLogo, file, header)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}
