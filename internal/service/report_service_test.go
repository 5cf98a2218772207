package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguahub/moderation-service/internal/domain"
	"github.com/linguahub/moderation-service/internal/events"
)

func newReportEnv() (*fakeUserRepo, *fakeReportRepo, *ReportService, *[]events.Event) {
	users := newFakeUserRepo()
	reports := newFakeReportRepo(users)
	dispatcher := events.NewInMemoryDispatcher()

	var published []events.Event
	dispatcher.Subscribe(events.EventReportSubmitted, func(_ context.Context, e events.Event) error {
		published = append(published, e)
		return nil
	})

	return users, reports, NewReportService(reports, users, dispatcher), &published
}

func TestSubmitReport(t *testing.T) {
	users, _, svc, published := newReportEnv()
	reporter := users.put(domain.User{FullName: "Reporter", Email: "r@test.example", Role: domain.RoleLearner})
	reported := users.put(domain.User{FullName: "Reported", Email: "x@test.example", Role: domain.RoleLearner})

	ticket, err := svc.Submit(context.Background(), reporter.ID, SubmitReportInput{
		ReportedUserID: reported.ID,
		Reason:         "  spam  ",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ReportStatusOpen, ticket.Status)
	assert.Equal(t, "spam", ticket.Reason)
	assert.False(t, ticket.CreatedAt.IsZero())
	require.Len(t, *published, 1)
}

func TestSubmitReportEmptyReason(t *testing.T) {
	users, reports, svc, _ := newReportEnv()
	reporter := users.put(domain.User{FullName: "Reporter", Email: "r@test.example"})
	reported := users.put(domain.User{FullName: "Reported", Email: "x@test.example"})

	for _, reason := range []string{"", "   "} {
		_, err := svc.Submit(context.Background(), reporter.ID, SubmitReportInput{
			ReportedUserID: reported.ID,
			Reason:         reason,
		})
		assert.Equal(t, "VALIDATION_FAILED", errCode(t, err))
	}
	assert.Empty(t, reports.tickets)
}

func TestSubmitReportReasonTooLong(t *testing.T) {
	users, reports, svc, _ := newReportEnv()
	reporter := users.put(domain.User{FullName: "Reporter", Email: "r@test.example"})
	reported := users.put(domain.User{FullName: "Reported", Email: "x@test.example"})

	_, err := svc.Submit(context.Background(), reporter.ID, SubmitReportInput{
		ReportedUserID: reported.ID,
		Reason:         strings.Repeat("a", domain.ReasonMaxLen+1),
	})
	assert.Equal(t, "VALIDATION_FAILED", errCode(t, err))
	assert.Empty(t, reports.tickets)
}

func TestSubmitReportSelfReport(t *testing.T) {
	users, _, svc, _ := newReportEnv()
	reporter := users.put(domain.User{FullName: "Reporter", Email: "r@test.example"})

	_, err := svc.Submit(context.Background(), reporter.ID, SubmitReportInput{
		ReportedUserID: reporter.ID,
		Reason:         "self loathing",
	})
	assert.Equal(t, "VALIDATION_FAILED", errCode(t, err))
}

func TestSubmitReportUnknownReportedUser(t *testing.T) {
	users, _, svc, _ := newReportEnv()
	reporter := users.put(domain.User{FullName: "Reporter", Email: "r@test.example"})

	_, err := svc.Submit(context.Background(), reporter.ID, SubmitReportInput{
		ReportedUserID: "missing",
		Reason:         "spam",
	})
	assert.Equal(t, "NOT_FOUND", errCode(t, err))
}

func TestSubmitReportAllowsRepeats(t *testing.T) {
	users, reports, svc, _ := newReportEnv()
	reporter := users.put(domain.User{FullName: "Reporter", Email: "r@test.example"})
	reported := users.put(domain.User{FullName: "Reported", Email: "x@test.example"})

	for i := 0; i < 2; i++ {
		_, err := svc.Submit(context.Background(), reporter.ID, SubmitReportInput{
			ReportedUserID: reported.ID,
			Reason:         "spam",
		})
		require.NoError(t, err)
	}
	assert.Len(t, reports.tickets, 2)
}
