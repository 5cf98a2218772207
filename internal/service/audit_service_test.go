package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuditRecordAndList(t *testing.T) {
	repo := &fakeAuditRepo{}
	svc := NewAuditService(repo, zap.NewNop())

	require.NoError(t, svc.Record(context.Background(), "admin@linguahub.example", "Suspended user", "u2@test.example", "report ticket-1: spam"))
	require.NoError(t, svc.Record(context.Background(), "admin@linguahub.example", "Changed role", "u3@test.example", "LEARNER -> ADMIN"))

	entries, err := svc.List(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// newest first
	assert.Equal(t, "Changed role", entries[0].Action)
	assert.Equal(t, "Suspended user", entries[1].Action)
	assert.False(t, entries[0].Timestamp.IsZero())
}

func TestAuditRecordStoreFailure(t *testing.T) {
	repo := &fakeAuditRepo{err: errors.New("disk full")}
	svc := NewAuditService(repo, zap.NewNop())

	err := svc.Record(context.Background(), "admin@linguahub.example", "Suspended user", "u2@test.example", "")
	assert.Equal(t, "STORE_ERROR", errCode(t, err))
}
