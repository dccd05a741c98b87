package entity

import "time"

// MaxPreferences bounds the preference set stored on a profile.
const MaxPreferences = 5

// Profile is the durable application record describing a user, keyed 1:1 by
// the owning identity's id. IsAnonymous must mirror the owning identity's
// ephemeral flag at the moment of every write.
type Profile struct {
	ID          string    // Owning identity id.
	Username    string    // Chosen handle, set during onboarding.
	Gender      string    // Self-reported gender.
	Age         int       // Self-reported age; zero until the details step completes.
	Preferences []string  // Bounded preference set, at most MaxPreferences entries.
	IsAnonymous bool      // Mirror of the owning identity's ephemeral flag.
	Email       string    // Linked email once the identity is persistent.
	DisplayName string    // Display name merged in from a federated identity.
	AvatarURL   string    // Avatar picture URL merged in from a federated identity.
	CreatedAt   time.Time // Set once at creation.
	LastActive  time.Time // Touched on load and on every write.

	// Optional extension fields.
	Location      string   // Free-form location text.
	Secret        string   // Secret text shown only when SecretVisible is set.
	SecretVisible bool     // Visibility flag for Secret.
	AvatarID      string   // Selected avatar asset id.
	BodyType      string   // Body-type preference.
	MediaRefs     []string // References to uploaded media objects.
}

// OnboardingProgress describes how far a profile has advanced through the
// onboarding flow. It is derived from field presence in exactly one place,
// Profile.Onboarding, instead of being re-inferred from sentinel values at
// each call site.
type OnboardingProgress int

const (
	// OnboardingNone means no profile record exists yet.
	OnboardingNone OnboardingProgress = iota
	// OnboardingProfile means the username step is done.
	OnboardingProfile
	// OnboardingDetails means the age/gender step is done.
	OnboardingDetails
	// OnboardingComplete means preferences were chosen and onboarding is finished.
	OnboardingComplete
)

// String returns a human-readable progress name.
func (p OnboardingProgress) String() string {
	switch p {
	case OnboardingNone:
		return "none"
	case OnboardingProfile:
		return "profile"
	case OnboardingDetails:
		return "details"
	case OnboardingComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Onboarding computes the profile's onboarding progress. The username gates
// the profile step, age gates the details step, and a non-empty preference
// set completes the flow.
func (p *Profile) Onboarding() OnboardingProgress {
	if p == nil || p.Username == "" {
		return OnboardingNone
	}
	if p.Age <= 0 {
		return OnboardingProfile
	}
	if len(p.Preferences) == 0 {
		return OnboardingDetails
	}

	return OnboardingComplete
}

// Clone returns a deep copy of the profile so slot replacements never alias
// slices held by a previously published snapshot.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	clone := *p
	if p.Preferences != nil {
		clone.Preferences = append([]string(nil), p.Preferences...)
	}
	if p.MediaRefs != nil {
		clone.MediaRefs = append([]string(nil), p.MediaRefs...)
	}

	return &clone
}
