package filestorage

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	s3client "uni-payments-backend/s3"
)

type Provider interface {
	UploadVoucher(ctx context.Context, requestID string, file []byte) error
	GetVoucher(ctx context.Context, requestID string) ([]byte, error)
}

var Instance Provider

func NewHandler(client s3client.Provider) {
	Instance = impl{
		client: client,
	}
}

type impl struct {
	client s3client.Provider
}

func (i impl) UploadVoucher(ctx context.Context, requestID string, file []byte) error {
	err := i.client.Put(ctx, voucherKey(requestID), file, "application/pdf")
	if err != nil {
		return errors.Wrap(err, "voucher upload error")
	}
	return nil
}

func (i impl) GetVoucher(ctx context.Context, requestID string) ([]byte, error) {
	file, err := i.client.Get(ctx, voucherKey(requestID))
	if err != nil {
		return nil, errors.Wrap(err, "voucher download error")
	}
	return file, nil
}

func voucherKey(requestID string) string {
	return fmt.Sprintf("vouchers/%s.pdf", requestID)
}
