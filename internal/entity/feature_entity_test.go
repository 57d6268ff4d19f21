package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseFeatureStatus(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   FeatureStatus
		wantOk bool
	}{
		{name: "pending", input: "PENDING", want: StatusPending, wantOk: true},
		{name: "planned", input: "PLANNED", want: StatusPlanned, wantOk: true},
		{name: "in progress", input: "IN_PROGRESS", want: StatusInProgress, wantOk: true},
		{name: "completed", input: "COMPLETED", want: StatusCompleted, wantOk: true},
		{name: "denied", input: "DENIED", want: StatusDenied, wantOk: true},
		{name: "lowercase rejected", input: "pending", wantOk: false},
		{name: "unknown rejected", input: "ARCHIVED", wantOk: false},
		{name: "empty rejected", input: "", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseFeatureStatus(tt.input)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFeatureCanDelete(t *testing.T) {
	creator := uuid.New()
	stranger := uuid.New()
	feature := &Feature{Id: uuid.New(), CreatorId: creator}

	assert.True(t, feature.CanDelete(creator, UserRoleUser))
	assert.True(t, feature.CanDelete(stranger, UserRoleAdmin))
	assert.False(t, feature.CanDelete(stranger, UserRoleUser))
}

func TestAllStatusesCoversEnum(t *testing.T) {
	statuses := AllStatuses()
	assert.Len(t, statuses, 5)

	for _, s := range statuses {
		parsed, ok := ParseFeatureStatus(string(s))
		assert.True(t, ok)
		assert.Equal(t, s, parsed)
	}
}
