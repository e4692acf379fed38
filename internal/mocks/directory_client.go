package mocks

import (
	"context"

	"github.com/NahoooMac/wedhabesha-sub007/pkg/directory"
	"github.com/stretchr/testify/mock"
)

type DirectoryClient struct {
	mock.Mock
}

func (d *DirectoryClient) GetContact(ctx context.Context, userID int64, userType string) (directory.Contact, error) {
	args := d.Called(ctx, userID, userType)
	return args.Get(0).(directory.Contact), args.Error(1)
}
