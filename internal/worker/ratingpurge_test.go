package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"places/internal/catalog"
	mockcatalog "places/internal/catalog/mock"
	"places/internal/worker"
	"places/pkg/domain"
	"places/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, userID uuid.UUID) *river.Job[catalog.PurgeUserRatingsArgs] {
	return &river.Job[catalog.PurgeUserRatingsArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   catalog.PurgeUserRatingsArgs{UserID: userID},
	}
}

func TestPurgeUserRatingsWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockcatalog.NewMockCatalog(ctrl)
	w := worker.NewPurgeUserRatingsWorker(mock)

	userID := uuid.New()
	report := catalog.PurgeReport{
		Purged: []domain.PlaceID{domain.PlaceID(uuid.New()), domain.PlaceID(uuid.New())},
	}
	mock.EXPECT().
		RemoveAllRatingsForUser(gomock.Any(), domain.UserID(userID)).
		Return(report, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, userID)))
}

func TestPurgeUserRatingsWorker_Work_SweepError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockcatalog.NewMockCatalog(ctrl)
	w := worker.NewPurgeUserRatingsWorker(mock)

	userID := uuid.New()
	mock.EXPECT().
		RemoveAllRatingsForUser(gomock.Any(), domain.UserID(userID)).
		Return(catalog.PurgeReport{}, errors.New("boom"))

	require.Error(t, w.Work(context.Background(), makeJob(2, userID)))
}

func TestPurgeUserRatingsWorker_Work_PartialFailureRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockcatalog.NewMockCatalog(ctrl)
	w := worker.NewPurgeUserRatingsWorker(mock)

	userID := uuid.New()
	report := catalog.PurgeReport{
		Purged: []domain.PlaceID{domain.PlaceID(uuid.New())},
		Failed: []catalog.PurgeFailure{
			{PlaceID: domain.PlaceID(uuid.New()), Err: errors.New("write failed")},
		},
	}
	mock.EXPECT().
		RemoveAllRatingsForUser(gomock.Any(), domain.UserID(userID)).
		Return(report, nil)

	// a partial sweep must surface as a job error so the queue retries it
	require.Error(t, w.Work(context.Background(), makeJob(3, userID)))
}
