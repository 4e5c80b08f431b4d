// internal/services/storage_service.go
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/rentall-backend/internal/config"
	"github.com/javajoker/rentall-backend/internal/models"
)

var (
	ErrInvalidMediaType = errors.New("media type must be logo, image or video")
	ErrFileTooLarge     = errors.New("file exceeds the maximum size")
	ErrFileTypeRejected = errors.New("file type is not allowed")
)

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

type StorageService struct {
	s3Client s3iface.S3API
	config   *config.Config
	now      func() time.Time
}

type UploadResult struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

type UploadOptions struct {
	MaxSize      int64 // in bytes
	AllowedTypes []string
}

func NewStorageService(config *config.Config) (*StorageService, error) {
	if config.AWS.AccessKeyID == "" {
		// Return service without S3 for local development
		return &StorageService{config: config, now: time.Now}, nil
	}

	// Create AWS session
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(config.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AWS.AccessKeyID,
			config.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return NewStorageServiceWithClient(config, s3.New(sess)), nil
}

func NewStorageServiceWithClient(config *config.Config, client s3iface.S3API) *StorageService {
	return &StorageService{s3Client: client, config: config, now: time.Now}
}

// UploadMedia stores a listing asset under {userID}/{type}s/{millis}-{name}.
func (s *StorageService) UploadMedia(ctx context.Context, userID uuid.UUID, mediaType models.MediaType, file multipart.File, header *multipart.FileHeader) (*UploadResult, error) {
	options, err := s.GetUploadOptions(mediaType)
	if err != nil {
		return nil, err
	}

	// Validate file size
	if options.MaxSize > 0 && header.Size > options.MaxSize {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrFileTooLarge, header.Size, options.MaxSize)
	}

	// Validate file type
	fileExt := strings.ToLower(filepath.Ext(header.Filename))
	if !contains(options.AllowedTypes, fileExt) {
		return nil, fmt.Errorf("%w: %s", ErrFileTypeRejected, fileExt)
	}

	key := s.MediaKey(userID, mediaType, header.Filename)

	// Read file content
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	contentType := header.Header.Get("Content-Type")

	// Upload to S3 or local storage
	if s.s3Client != nil {
		return s.uploadToS3(ctx, fileBytes, key, contentType)
	}

	return s.uploadToLocal(fileBytes, key, contentType)
}

// MediaKey builds the object key for an upload.
func (s *StorageService) MediaKey(userID uuid.UUID, mediaType models.MediaType, filename string) string {
	sanitized := unsafeFileChars.ReplaceAllString(filepath.Base(filename), "_")
	return fmt.Sprintf("%s/%ss/%d-%s", userID, mediaType, s.now().UnixMilli(), sanitized)
}

func (s *StorageService) uploadToS3(ctx context.Context, fileBytes []byte, key, contentType string) (*UploadResult, error) {
	// Prepare S3 upload parameters
	params := &s3.PutObjectInput{
		Bucket:        aws.String(s.config.AWS.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileBytes),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileBytes))),
		ACL:           aws.String(s3.ObjectCannedACLPublicRead),
	}

	// Upload to S3
	if _, err := s.s3Client.PutObjectWithContext(ctx, params); err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return &UploadResult{
		URL:      s.getS3URL(key),
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

func (s *StorageService) uploadToLocal(fileBytes []byte, key, contentType string) (*UploadResult, error) {
	// Local mode only simulates storage
	logrus.WithField("key", key).Debug("S3 not configured, simulating upload")

	return &UploadResult{
		URL:      fmt.Sprintf("%s/%s", strings.TrimRight(s.config.Site.UploadURL, "/"), key),
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

func (s *StorageService) GetUploadOptions(mediaType models.MediaType) (UploadOptions, error) {
	switch mediaType {
	case models.MediaTypeLogo:
		return UploadOptions{
			MaxSize:      2 * 1024 * 1024, // 2MB
			AllowedTypes: []string{".jpg", ".jpeg", ".png", ".gif", ".svg", ".webp"},
		}, nil
	case models.MediaTypeImage:
		return UploadOptions{
			MaxSize:      10 * 1024 * 1024, // 10MB
			AllowedTypes: []string{".jpg", ".jpeg", ".png", ".gif", ".webp"},
		}, nil
	case models.MediaTypeVideo:
		return UploadOptions{
			MaxSize:      100 * 1024 * 1024, // 100MB
			AllowedTypes: []string{".mp4", ".mov", ".webm"},
		}, nil
	default:
		return UploadOptions{}, ErrInvalidMediaType
	}
}

func (s *StorageService) getS3URL(key string) string {
	if s.config.AWS.CloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", s.config.AWS.CloudFrontURL, key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.config.AWS.S3Bucket, s.config.AWS.Region, key)
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
