package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfile_Onboarding(t *testing.T) {
	tests := []struct {
		name    string
		profile *Profile
		want    OnboardingProgress
	}{
		{
			name:    "nil profile",
			profile: nil,
			want:    OnboardingNone,
		},
		{
			name:    "empty record",
			profile: &Profile{},
			want:    OnboardingNone,
		},
		{
			name:    "username only",
			profile: &Profile{Username: "wanderer"},
			want:    OnboardingProfile,
		},
		{
			name:    "username and age",
			profile: &Profile{Username: "wanderer", Age: 24, Gender: "female"},
			want:    OnboardingDetails,
		},
		{
			name:    "preferences complete the flow",
			profile: &Profile{Username: "wanderer", Age: 24, Preferences: []string{"music"}},
			want:    OnboardingComplete,
		},
		{
			name:    "age without username still counts as none",
			profile: &Profile{Age: 24},
			want:    OnboardingNone,
		},
		{
			name:    "preferences without age stop at the profile step",
			profile: &Profile{Username: "wanderer", Preferences: []string{"music"}},
			want:    OnboardingProfile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.Onboarding())
		})
	}
}

func TestProfile_CloneIsDeep(t *testing.T) {
	original := &Profile{
		ID:          "u1",
		Username:    "wanderer",
		Preferences: []string{"music"},
		MediaRefs:   []string{"m1"},
	}

	clone := original.Clone()
	clone.Username = "other"
	clone.Preferences[0] = "other"
	clone.MediaRefs[0] = "other"

	assert.Equal(t, "wanderer", original.Username)
	assert.Equal(t, "music", original.Preferences[0])
	assert.Equal(t, "m1", original.MediaRefs[0])
}

func TestProfile_CloneNil(t *testing.T) {
	var p *Profile
	assert.Nil(t, p.Clone())
}

func TestSessionState_String(t *testing.T) {
	assert.Equal(t, "initializing", SessionInitializing.String())
	assert.Equal(t, "unauthenticated", SessionUnauthenticated.String())
	assert.Equal(t, "authenticated_no_profile", SessionAuthenticatedNoProfile.String())
	assert.Equal(t, "authenticated_with_profile", SessionAuthenticatedWithProfile.String())
}
