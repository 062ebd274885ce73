//go:build s3example
// +build s3example

// This file provides an example S3-backed timeline store for teams that
// archive recordings centrally. It is excluded from regular builds; copy
// it into your project and build with -tags s3example:
//
//	go get github.com/aws/aws-sdk-go-v2
//	go get github.com/aws/aws-sdk-go-v2/config
//	go get github.com/aws/aws-sdk-go-v2/service/s3

package timeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store persists recordings as JSON objects in an S3 bucket.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	client := s3.NewFromConfig(cfg)
//	store := timeline.NewS3Store(client, "my-bucket", "recordings/")
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Store creates an S3-backed store. prefix namespaces the recordings
// within the bucket (e.g. "recordings/").
func NewS3Store(client *s3.Client, bucket, prefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: prefix}
}

// Save implements Store.
func (s *S3Store) Save(ctx context.Context, t *Timeline) (string, error) {
	id := newRecordingID()
	data, err := json.Marshal(t)
	if err != nil {
		return "", err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key(id)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
		Metadata: map[string]string{
			"timeline-name": t.Name,
			"recorded-at":   t.RecordedAt.UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload failed: %w", err)
	}
	return id, nil
}

// Load implements Store.
func (s *S3Store) Load(ctx context.Context, id string) (*Timeline, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(id)),
	})
	if err != nil {
		return nil, ErrNotFound
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, err
	}
	var t Timeline
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// List implements Store. Names and timestamps come from object metadata,
// so listing issues one HeadObject per recording.
func (s *S3Store) List(ctx context.Context) ([]Info, error) {
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})

	var out []Info
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			if obj.Key == nil {
				continue
			}
			id := strings.TrimSuffix(strings.TrimPrefix(*obj.Key, s.prefix), ".json")

			info := Info{ID: id}
			head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
				Bucket: aws.String(s.bucket),
				Key:    aws.String(*obj.Key),
			})
			if err == nil {
				info.Name = head.Metadata["timeline-name"]
				if at, err := time.Parse(time.RFC3339, head.Metadata["recorded-at"]); err == nil {
					info.RecordedAt = at
				}
			}
			out = append(out, info)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})
	return out, nil
}

// Delete implements Store.
func (s *S3Store) Delete(ctx context.Context, id string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(id)),
	})
	return err
}

func (s *S3Store) key(id string) string {
	return s.prefix + id + ".json"
}
