package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"quickpay-backend/config"
)

const pdfContentType = "application/pdf"

// Provider archives rendered payslips in object storage.
type Provider interface {
	IsConfigured() bool
	UploadPayslip(ctx context.Context, employeeID, payslipID string, body []byte) (key string, err error)
	GetFile(ctx context.Context, key string) ([]byte, error)
}

var Instance Provider

func NewHandler(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) IsConfigured() bool {
	return i.s3client != nil
}

func (i impl) UploadPayslip(ctx context.Context, employeeID, payslipID string, body []byte) (key string, err error) {
	if !i.IsConfigured() {
		return "", errors.New("object storage is not configured")
	}
	key = PayslipKey(employeeID, payslipID)
	_, err = i.s3client.PutObject(ctx, config.Conf.S3.BucketName, key, bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: pdfContentType})
	if err != nil {
		return "", errors.Wrap(err, "payslip upload failed")
	}
	return key, nil
}

func (i impl) GetFile(ctx context.Context, key string) ([]byte, error) {
	if !i.IsConfigured() {
		return nil, errors.New("object storage is not configured")
	}
	obj, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "file download failed")
	}
	defer obj.Close()
	body, err := io.ReadAll(obj)
	if err != nil {
		return nil, errors.Wrap(err, "file reading failed")
	}
	return body, nil
}

func PayslipKey(employeeID, payslipID string) string {
	return fmt.Sprintf("payslips/%s/%s.pdf", employeeID, payslipID)
}
