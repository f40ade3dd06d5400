package attachment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
	"ordertracker/internal/entities"
)

const (
	serviceName = "object-storage"

	keyPrefix          = "orders/"
	defaultExtension   = "jpg"
	defaultContentType = "image/jpeg"
	cacheControl       = "max-age=3600"
)

type Gateway struct {
	client        client
	bucket        string
	publicBaseURL string
	now           func() time.Time
	newID         func() string
}

type Option func(*Gateway)

func WithClock(now func() time.Time) Option {
	return func(g *Gateway) {
		g.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(g *Gateway) {
		g.newID = newID
	}
}

func New(client client, bucket, publicBaseURL string, opts ...Option) *Gateway {
	g := &Gateway{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		now:           time.Now,
		newID:         uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Upload stores the attachment under orders/<unix-ms>_<id>.<ext> and returns its public URL.
func (g *Gateway) Upload(ctx context.Context, attachment entities.Attachment) (string, error) {
	if attachment.Body == nil {
		return "", ErrEmptyPayload
	}

	key := g.objectKey(attachment.FileName)

	contentType := attachment.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	input := &s3.PutObjectInput{
		Bucket:       aws.String(g.bucket),
		Key:          aws.String(key),
		Body:         attachment.Body,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String(cacheControl),
	}
	if attachment.Size > 0 {
		input.ContentLength = aws.Int64(attachment.Size)
	}

	err := g.executeWithMetrics(ctx, "PutObject", func(ctx context.Context) error {
		_, err := g.client.PutObject(ctx, input)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("gateway attachment, put object %s: %w", key, err)
	}

	if attachment.Size > 0 {
		UploadedBytesTotal.Add(float64(attachment.Size))
	}

	return g.publicBaseURL + "/" + key, nil
}

// Remove deletes an object previously returned by Upload.
func (g *Gateway) Remove(ctx context.Context, url string) error {
	key, ok := strings.CutPrefix(url, g.publicBaseURL+"/")
	if !ok || key == "" {
		return fmt.Errorf("%w: %s", ErrForeignURL, url)
	}

	err := g.executeWithMetrics(ctx, "DeleteObject", func(ctx context.Context) error {
		_, err := g.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(g.bucket),
			Key:    aws.String(key),
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway attachment, delete object %s: %w", key, err)
	}

	return nil
}

func (g *Gateway) objectKey(fileName string) string {
	return fmt.Sprintf("%s%d_%s.%s", keyPrefix, g.now().UnixMilli(), g.newID(), extension(fileName))
}

// extension is the lowercased alphanumeric part after the last dot, jpg when nothing is left.
func extension(fileName string) string {
	i := strings.LastIndex(fileName, ".")
	if i < 0 {
		return defaultExtension
	}

	ext := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return -1
		}
	}, strings.ToLower(fileName[i+1:]))

	if ext == "" {
		return defaultExtension
	}
	return ext
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	GatewayRequestDuration.WithLabelValues(serviceName, method, errorCode(err)).Observe(time.Since(start).Seconds())
	return err
}

func errorCode(err error) string {
	if err == nil {
		return "OK"
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "DeadlineExceeded"
	}
	return "UNKNOWN"
}
