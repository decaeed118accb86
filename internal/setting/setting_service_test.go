package setting_test

import (
	"context"
	"testing"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/setting"
	settingerrors "github.com/bruno-marques98/CoreCrewApp/internal/setting/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) setting.Service {
	t.Helper()
	db := testdb.Open(t, domain.Models()...)
	return setting.NewService(db, setting.NewRepository(db))
}

func TestSettingService_Create(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	kind := "string"
	created, err := svc.Create(ctx, setting.SettingRequest{Name: "company.name", Value: "CoreCrew", Type: &kind})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.SettingID)
	require.NoError(t, err)
	assert.Equal(t, "CoreCrew", got.Value)
	require.NotNil(t, got.Type)
	assert.Equal(t, "string", *got.Type)

	t.Run("duplicate name", func(t *testing.T) {
		_, err := svc.Create(ctx, setting.SettingRequest{Name: "company.name", Value: "Other"})
		assert.ErrorIs(t, err, settingerrors.ErrSettingExists)
	})

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSettingService_Update(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	a, err := svc.Create(ctx, setting.SettingRequest{Name: "a", Value: "1"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, setting.SettingRequest{Name: "b", Value: "2"})
	require.NoError(t, err)

	t.Run("rename onto existing name", func(t *testing.T) {
		err := svc.Update(ctx, a.SettingID, setting.SettingRequest{SettingID: a.SettingID, Name: "b", Value: "1"})
		assert.ErrorIs(t, err, settingerrors.ErrSettingExists)
	})

	t.Run("mismatch", func(t *testing.T) {
		err := svc.Update(ctx, a.SettingID, setting.SettingRequest{SettingID: 0, Name: "a", Value: "1"})
		assert.ErrorIs(t, err, apperror.ErrIDMismatch)
	})

	t.Run("replace value", func(t *testing.T) {
		require.NoError(t, svc.Update(ctx, a.SettingID, setting.SettingRequest{SettingID: a.SettingID, Name: "a", Value: "10"}))
		got, err := svc.GetByID(ctx, a.SettingID)
		require.NoError(t, err)
		assert.Equal(t, "10", got.Value)
		assert.Nil(t, got.Type)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, a.SettingID))
		assert.ErrorIs(t, svc.Delete(ctx, a.SettingID), settingerrors.ErrSettingNotFound)
	})
}
