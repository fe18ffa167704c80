package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"

	"airwave/config"
	"airwave/infras/otel"
	"airwave/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
	defaultRegion     = "auto"
)

// Object describes a single upload. Body must be seekable when Size is unknown.
type Object struct {
	Directory   string
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

func (o Object) Key() string {
	return path.Join(o.Directory, o.Name)
}

type S3 interface {
	Upload(ctx context.Context, object Object) (url string, err error)
	UploadMultipart(ctx context.Context, directory, name string, file multipart.File, header *multipart.FileHeader) (url string, err error)
	Delete(ctx context.Context, directory, name string) error
	ObjectNameFromURL(url string) (name string)
}

type s3Impl struct {
	client *s3.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) S3 {
	staticProvider := credentials.NewStaticCredentialsProvider(
		cfg.External.S3.AccessKeyID,
		cfg.External.S3.SecretAccessKey,
		constant.Empty,
	)

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(staticProvider),
		awsConfig.WithRegion(defaultRegion),
	)
	if err != nil {
		log.Error().Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.External.S3.APIEndpoint)
		o.UsePathStyle = true
	})

	return &s3Impl{
		client: client,
		cfg:    cfg,
		otel:   ot,
	}
}

func (svc *s3Impl) bucket() string {
	return svc.cfg.External.S3.BucketName
}

func (svc *s3Impl) Upload(ctx context.Context, object Object) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Upload")
	defer scope.End()
	defer scope.TraceIfError(&err)

	key := object.Key()

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    svc.bucket(),
	})

	input := &s3.PutObjectInput{
		Bucket:      aws.String(svc.bucket()),
		Key:         aws.String(key),
		Body:        object.Body,
		ContentType: aws.String(object.ContentType),
	}

	if object.Size > 0 {
		input.ContentLength = aws.Int64(object.Size)
	}

	if _, err = svc.client.PutObject(ctx, input); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload object to S3")

		return constant.Empty, fmt.Errorf("failed to upload object to S3: %w", err)
	}

	return svc.publicURL(key), nil
}

func (svc *s3Impl) UploadMultipart(ctx context.Context, directory, name string, file multipart.File, header *multipart.FileHeader) (string, error) {
	return svc.Upload(ctx, Object{
		Directory:   directory,
		Name:        name,
		ContentType: header.Header.Get(constant.RequestHeaderContentType),
		Size:        header.Size,
		Body:        file,
	})
}

func (svc *s3Impl) Delete(ctx context.Context, directory, name string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	key := path.Join(directory, name)

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    svc.bucket(),
	})

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(svc.bucket()),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete object from S3")

		return fmt.Errorf("failed to delete object from S3: %w", err)
	}

	return nil
}

// ObjectNameFromURL returns the last path segment of a url produced by Upload, or "" for foreign urls.
func (svc *s3Impl) ObjectNameFromURL(url string) string {
	prefix := strings.TrimSuffix(svc.cfg.External.S3.PublicDomain, "/") + "/"
	if !strings.HasPrefix(url, prefix) {
		return constant.Empty
	}

	return path.Base(strings.TrimPrefix(url, prefix))
}

func (svc *s3Impl) publicURL(key string) string {
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(svc.cfg.External.S3.PublicDomain, "/"), key)
}
