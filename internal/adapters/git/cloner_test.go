package git_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gunchamalik/wheelhouse/internal/adapters/git"
	"github.com/gunchamalik/wheelhouse/internal/core/domain"
	"github.com/gunchamalik/wheelhouse/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCloner_ShallowClone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockExecutor.EXPECT().
		Run(gomock.Any(), domain.Command{
			Name: "git",
			Args: []string{
				"clone",
				"--depth", "1",
				"--single-branch",
				"--branch", "main",
				"https://example.com/repo.git",
				"/tmp/checkout",
			},
		}).
		Return("", nil)

	cloner := git.NewCloner(mockExecutor)
	err := cloner.Clone(context.Background(), "https://example.com/repo.git", "main", "/tmp/checkout")
	require.NoError(t, err)
}

func TestCloner_FailureWrapsSentinel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockExecutor.EXPECT().Run(gomock.Any(), gomock.Any()).Return("", errors.New("exit status 128"))

	cloner := git.NewCloner(mockExecutor)
	err := cloner.Clone(context.Background(), "https://example.com/repo.git", "main", "/tmp/checkout")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCloneFailed))
}
