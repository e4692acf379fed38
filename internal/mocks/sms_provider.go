package mocks

import (
	"context"

	"github.com/NahoooMac/wedhabesha-sub007/pkg/smsprovider"
	"github.com/stretchr/testify/mock"
)

type SMSProvider struct {
	mock.Mock
}

func (s *SMSProvider) Send(ctx context.Context, to string, text string) (smsprovider.Response, error) {
	args := s.Called(ctx, to, text)
	return args.Get(0).(smsprovider.Response), args.Error(1)
}
