// The JPSS NODD object store of reprocessed files.

package vaod

import (
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog"
)

// A NODDStore reads the public NODD bucket with anonymous credentials.
type NODDStore struct {
	Bucket string
	Client *s3.Client
	Log    zerolog.Logger
}

// NewNODDStore connects to the public bucket. No credentials are required or
// looked up.
func NewNODDStore(ctx context.Context, bucket string, log zerolog.Logger) (*NODDStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(DefaultNODDRegion),
		awsconfig.WithCredentialsProvider(aws.AnonymousCredentials{}),
	)
	if err != nil {
		return nil, err
	}
	return &NODDStore{Bucket: bucket, Client: s3.NewFromConfig(cfg), Log: log}, nil
}

// Stat checks existence of a key and returns its size.
func (n *NODDStore) Stat(ctx context.Context, key string) (int64, bool, error) {
	out, err := n.Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(n.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return aws.ToInt64(out.ContentLength), true, nil
}

// List returns every object under a prefix.
func (n *NODDStore) List(ctx context.Context, prefix string) ([]Object, error) {
	var objects []Object
	paginator := s3.NewListObjectsV2Paginator(n.Client, &s3.ListObjectsV2Input{
		Bucket: aws.String(n.Bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			objects = append(objects, Object{
				Key:  aws.ToString(obj.Key),
				Size: aws.ToInt64(obj.Size),
			})
		}
	}
	return objects, nil
}

// Fetch copies an object's bytes to w.
func (n *NODDStore) Fetch(ctx context.Context, key string, w io.Writer) error {
	out, err := n.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(n.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return err
	}
	defer out.Body.Close()
	_, err = io.Copy(w, out.Body)
	return err
}
