package notify

import (
	"testing"

	"github.com/stretchr/testify/require"
	"uni-payments-backend/models"
)

func TestBuildMessage(t *testing.T) {
	snap := Snapshot{
		RequestID:     "req-1",
		FormType:      models.FormTypeExamDuty,
		SubmitterName: "John Doe",
		Department:    "Electrical Engineering",
		Status:        models.RequestStatusPendingHodApproval,
	}

	t.Run(`submitted check`, func(t *testing.T) {
		subject, body, ok := buildMessage(KindSubmitted, snap)
		require.True(t, ok)
		require.Equal(t, "Exam duty request submitted", subject)
		require.Contains(t, body, "req-1")
		require.Contains(t, body, "Electrical Engineering")
	})

	t.Run(`approval needed check`, func(t *testing.T) {
		subject, body, ok := buildMessage(KindHodApprovalNeeded, snap)
		require.True(t, ok)
		require.Contains(t, subject, "awaiting your approval")
		require.Contains(t, body, "John Doe")

		_, body, ok = buildMessage(KindFinanceApprovalNeeded, snap)
		require.True(t, ok)
		require.Contains(t, body, "awaits finance review")
	})

	t.Run(`rejected check`, func(t *testing.T) {
		snap := snap
		snap.Comments = "missing receipts"
		_, body, ok := buildMessage(KindRejected, snap)
		require.True(t, ok)
		require.Contains(t, body, "Reason: missing receipts")
	})

	t.Run(`unknown kind check`, func(t *testing.T) {
		_, _, ok := buildMessage(TemplateKind("unknown"), snap)
		require.False(t, ok)
	})
}
