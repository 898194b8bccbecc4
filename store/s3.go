package store

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
	"github.com/jsphweid/midisolo/constants"
	"github.com/jsphweid/midisolo/model"
	"github.com/pkg/errors"
)

// Publisher uploads finished archives to an S3 bucket.
type Publisher struct {
	bucket   string
	uploader s3manageriface.UploaderAPI
}

func NewPublisher(bucket string, uploader s3manageriface.UploaderAPI) *Publisher {
	return &Publisher{bucket: bucket, uploader: uploader}
}

// NewS3Publisher builds a publisher from the AWS_REGION and S3_ENDPOINT
// environment. Credentials come from the default AWS chain.
func NewS3Publisher(bucket string) (*Publisher, error) {
	cfg := &aws.Config{
		Region: aws.String(constants.GetAWSRegion()),
	}
	if endpoint := constants.GetS3Endpoint(); endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
		cfg.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "Could not create a new AWS session")
	}
	return NewPublisher(bucket, s3manager.NewUploader(sess)), nil
}

// Publish stores res under "{base name}.zip" and returns the object location.
func (p *Publisher) Publish(ctx context.Context, res *model.Result) (string, error) {
	out, err := p.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(res.ZipName()),
		Body:        bytes.NewReader(res.Zip),
		ContentType: aws.String("application/zip"),
	})
	if err != nil {
		return "", errors.Wrapf(err, "upload %s to %s", res.ZipName(), p.bucket)
	}
	return out.Location, nil
}
