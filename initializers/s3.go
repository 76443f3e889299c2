package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	filestorage "uni-payments-backend/lib/file-storage"
	s3client "uni-payments-backend/s3"
)

func InitS3(ctx context.Context) {
	client, err := s3client.NewClient()
	if err != nil {
		panic(err.Error())
	}
	err = client.MakeBucket(ctx)
	if err != nil {
		log.WithError(err).Error("voucher bucket init error")
	}
	filestorage.NewHandler(client)
}
