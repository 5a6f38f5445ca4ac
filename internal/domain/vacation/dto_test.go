package vacation

import (
	"strings"
	"testing"

	"github.com/careplan/careplan-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRequestValidate(t *testing.T) {
	req := SubmitRequestRequest{
		StartDate:   "2026-03-02",
		EndDate:     "2026-03-06",
		RequestType: "ANNUAL_LEAVE",
	}
	assert.NoError(t, req.Validate())

	req = SubmitRequestRequest{
		StartDate:   "03/02/2026",
		EndDate:     "2026-03-06",
		RequestType: "GARDENING_LEAVE",
		Reason:      strings.Repeat("x", 2001),
	}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Contains(t, details, "start_date")
	assert.Contains(t, details, "request_type")
	assert.Contains(t, details, "reason")
	assert.NotContains(t, details, "end_date")
}

func TestDenyRequestValidateRequiresReason(t *testing.T) {
	req := DenyRequestRequest{Reason: "   "}
	err := req.Validate()
	require.Error(t, err)

	req.Reason = "Coverage shortage that week"
	assert.NoError(t, req.Validate())
}

func TestRequestTypeConsumesBalance(t *testing.T) {
	assert.True(t, TypeAnnualLeave.ConsumesBalance())

	for _, rt := range AllRequestTypes() {
		if rt == TypeAnnualLeave {
			continue
		}
		assert.False(t, rt.ConsumesBalance(), string(rt))
	}
}

func TestStatusTransitions(t *testing.T) {
	pending := Request{Status: StatusPending}
	assert.True(t, pending.CanApprove())
	assert.True(t, pending.CanDeny())
	assert.True(t, pending.CanCancel())

	approved := Request{Status: StatusApproved}
	assert.False(t, approved.CanApprove())
	assert.False(t, approved.CanDeny())
	assert.True(t, approved.CanCancel())

	for _, status := range []RequestStatus{StatusDenied, StatusCancelled} {
		r := Request{Status: status}
		assert.False(t, r.CanApprove(), string(status))
		assert.False(t, r.CanDeny(), string(status))
		assert.False(t, r.CanCancel(), string(status))
		assert.True(t, r.IsTerminal(), string(status))
	}
}
