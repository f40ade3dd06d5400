package s3client

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"ordertracker/internal/pkg/config"
	"ordertracker/pkg/logger"
	"ordertracker/pkg/retrier"
	"ordertracker/pkg/retrier/backoff_adapter"
)

// New builds an S3 client for cfg and waits until the bucket is reachable.
// Static credentials are used when both keys are set, the default AWS chain otherwise.
func New(ctx context.Context, log logger.Logger, cfg *config.Storage) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	s3Log := log.With(
		logger.NewField("bucket", cfg.Bucket),
		logger.NewField("region", cfg.Region),
		logger.NewField("endpoint", cfg.Endpoint),
	)

	if err := pingBucket(ctx, s3Log, client, cfg.Bucket); err != nil {
		return nil, fmt.Errorf("object storage connection: %w", err)
	}

	return client, nil
}

func pingBucket(ctx context.Context, log logger.Logger, client *s3.Client, bucket string) error {
	retry := backoff_adapter.New(retrier.StartupConfig())

	var attempt uint64
	err := retry.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.Info("attempting object storage connection",
			logger.NewField("attempt", attempt),
		)

		_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{
			Bucket: aws.String(bucket),
		})
		return err
	})
	if err != nil {
		log.Error("object storage connection failed after retries",
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		)
		return fmt.Errorf("failed to reach bucket %s: %w", bucket, err)
	}

	log.Info("object storage connection established",
		logger.NewField("attempts", attempt),
	)
	return nil
}
