package auditlog_test

import (
	"context"
	"testing"
	"time"

	"github.com/bruno-marques98/CoreCrewApp/internal/auditlog"
	auditlogerrors "github.com/bruno-marques98/CoreCrewApp/internal/auditlog/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) auditlog.Service {
	t.Helper()
	db := testdb.Open(t, domain.Models()...)
	return auditlog.NewService(db, auditlog.NewRepository(db))
}

func TestAuditLogService_CreateDefaultsTimestamp(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	before := time.Now().UTC().Add(-time.Second)
	recordID := int64(7)
	created, err := svc.Create(ctx, auditlog.AuditLogRequest{
		Action:    "UPDATE",
		TableName: "employees",
		RecordID:  &recordID,
		UserName:  "admin@corecrew.io",
	})
	require.NoError(t, err)

	ts, err := time.Parse(time.RFC3339, created.Timestamp)
	require.NoError(t, err)
	assert.False(t, ts.Before(before.Truncate(time.Second)))

	got, err := svc.GetByID(ctx, created.AuditLogID)
	require.NoError(t, err)
	assert.Equal(t, "employees", got.TableName)
	require.NotNil(t, got.RecordID)
	assert.Equal(t, int64(7), *got.RecordID)
}

func TestAuditLogService_KeepsGivenTimestamp(t *testing.T) {
	svc := setupService(t)

	ts := "2024-02-03T04:05:06Z"
	created, err := svc.Create(context.Background(), auditlog.AuditLogRequest{
		Action:    "DELETE",
		TableName: "roles",
		UserName:  "admin@corecrew.io",
		Timestamp: &ts,
	})
	require.NoError(t, err)
	assert.Equal(t, ts, created.Timestamp)
}

func TestAuditLogService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	created, err := svc.Create(ctx, auditlog.AuditLogRequest{Action: "A", TableName: "t", UserName: "u"})
	require.NoError(t, err)

	details := "corrected"
	require.NoError(t, svc.Update(ctx, created.AuditLogID, auditlog.AuditLogRequest{
		AuditLogID: created.AuditLogID,
		Action:     "A",
		TableName:  "t",
		UserName:   "u",
		Details:    &details,
	}))

	require.NoError(t, svc.Delete(ctx, created.AuditLogID))
	_, err = svc.GetByID(ctx, created.AuditLogID)
	assert.ErrorIs(t, err, auditlogerrors.ErrAuditLogNotFound)
}
