package mocks

import (
	"context"

	"github.com/NahoooMac/wedhabesha-sub007/pkg/smsprovider"
	"github.com/stretchr/testify/mock"
)

type ProviderService struct {
	mock.Mock
}

func (p *ProviderService) SendWithRetry(ctx context.Context, toPhone, text string) (smsprovider.Response, error) {
	args := p.Called(ctx, toPhone, text)
	return args.Get(0).(smsprovider.Response), args.Error(1)
}
