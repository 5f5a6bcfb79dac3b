package services

import (
	"context"

	"github.com/Tomas-vilte/MateNotes/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type MockVCSClient struct {
	mock.Mock
}

func (m *MockVCSClient) ResolveCommit(ctx context.Context, sha string) (*models.CommitResolution, error) {
	args := m.Called(ctx, sha)
	var res *models.CommitResolution
	if args.Get(0) != nil {
		res = args.Get(0).(*models.CommitResolution)
	}
	return res, args.Error(1)
}
