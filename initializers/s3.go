package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"quickpay-backend/config"
	s3client "quickpay-backend/s3"
)

func InitS3() {
	if config.Conf.S3.Endpoint == "" {
		log.Info("S3 endpoint is not set, payslip archive disabled")
		return
	}
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("S3 client initialization failed")
		return
	}
	if err = s3client.MakeBucket(context.Background(), minioClient); err != nil {
		log.WithError(err).Error("S3 bucket check failed, payslip archive disabled")
		return
	}
	s3client.Client = minioClient
	log.Info("S3 client initialized")
}
