// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/PsyChonek/spajzka-client/internal/mock"
	"github.com/PsyChonek/spajzka-client/models"
)

func newTestGroupService(t *testing.T, ctrl *gomock.Controller) (*GroupService, *fakeEndpoint[models.Group], *stubOracle, *mock.MockGroupEventPublisher) {
	t.Helper()

	endpoint := &fakeEndpoint[models.Group]{}
	oracle := &stubOracle{online: true}
	bus := mock.NewMockGroupEventPublisher(ctrl)
	log := testLogger()

	store := NewSyncStore[models.Group]("groups", newMemSnapshots(), endpoint, oracle, noGroup{}, &recordingNotifier{}, log)
	return NewGroupService(store, bus, log), endpoint, oracle, bus
}

func echoGroup(id string, v models.Group) models.Group {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	v.ID = id
	v.CreatedAt = now
	v.UpdatedAt = now
	return v
}

func TestGroupService_StartsWithNoSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestGroupService(t, ctrl)
	assert.Empty(t, svc.ActiveGroupID())
}

func TestGroupService_SwitchPublishesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, bus := newTestGroupService(t, ctrl)

	bus.EXPECT().PublishGroupChanged("g1").Return(nil).Times(1)

	svc.Switch("g1")
	svc.Switch("g1") // already active, no republish

	assert.Equal(t, "g1", svc.ActiveGroupID())
}

func TestGroupService_AddSelectsFirstGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, endpoint, _, bus := newTestGroupService(t, ctrl)
	endpoint.createFn = func(_ context.Context, _ string, v models.Group) (models.Group, error) {
		return echoGroup("g1", v), nil
	}
	bus.EXPECT().PublishGroupChanged("g1").Return(nil)

	svc.Add(context.Background(), models.Group{Name: "Home"})

	assert.Equal(t, "g1", svc.ActiveGroupID())
	require.Len(t, svc.List(), 1)
}

func TestGroupService_AddKeepsExistingSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, endpoint, _, bus := newTestGroupService(t, ctrl)
	endpoint.createFn = func(_ context.Context, _ string, v models.Group) (models.Group, error) {
		return echoGroup("g2", v), nil
	}
	bus.EXPECT().PublishGroupChanged("g1").Return(nil)
	svc.Switch("g1")

	svc.Add(context.Background(), models.Group{Name: "Cabin"})

	assert.Equal(t, "g1", svc.ActiveGroupID())
}

func TestGroupService_DeleteActiveClearsSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, endpoint, _, bus := newTestGroupService(t, ctrl)
	endpoint.createFn = func(_ context.Context, _ string, v models.Group) (models.Group, error) {
		return echoGroup("g1", v), nil
	}
	endpoint.deleteFn = func(context.Context, string, string) error { return nil }
	bus.EXPECT().PublishGroupChanged("g1").Return(nil)

	svc.Add(context.Background(), models.Group{Name: "Home"})
	svc.Delete(context.Background(), "g1")

	assert.Empty(t, svc.ActiveGroupID())
	assert.Empty(t, svc.List())
}

func TestGroupService_FetchAllKeepsSurvivingSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, endpoint, _, bus := newTestGroupService(t, ctrl)
	bus.EXPECT().PublishGroupChanged("g1").Return(nil)
	svc.Switch("g1")

	endpoint.listFn = func(context.Context, string) ([]models.Group, error) {
		return []models.Group{
			echoGroup("g1", models.Group{Name: "Home"}),
			echoGroup("g2", models.Group{Name: "Cabin"}),
		}, nil
	}

	svc.FetchAll(context.Background())

	assert.Equal(t, "g1", svc.ActiveGroupID())
}

func TestGroupService_FetchAllFallsBackWhenActiveVanished(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, endpoint, _, bus := newTestGroupService(t, ctrl)
	bus.EXPECT().PublishGroupChanged("g-old").Return(nil)
	svc.Switch("g-old")

	endpoint.listFn = func(context.Context, string) ([]models.Group, error) {
		return []models.Group{echoGroup("g1", models.Group{Name: "Home"})}, nil
	}
	bus.EXPECT().PublishGroupChanged("g1").Return(nil)

	svc.FetchAll(context.Background())

	assert.Equal(t, "g1", svc.ActiveGroupID())
}

func TestGroupService_OfflineFetchKeepsSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, endpoint, oracle, bus := newTestGroupService(t, ctrl)
	bus.EXPECT().PublishGroupChanged("g1").Return(nil)
	svc.Switch("g1")
	oracle.online = false

	svc.FetchAll(context.Background())

	assert.Equal(t, "g1", svc.ActiveGroupID())
	assert.Zero(t, endpoint.listCalls)
}
