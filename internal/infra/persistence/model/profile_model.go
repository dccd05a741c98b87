// Package model contains persistence-layer representations of domain entities.
package model

import (
	"time"

	"linkup/internal/domain/entity"
)

// ProfileModel mirrors a document in the 'profiles' collection. The document
// id is the owning identity's uid, so the id itself is not stored as a field.
type ProfileModel struct {
	Username      string    `firestore:"username"`
	Gender        string    `firestore:"gender"`
	Age           int       `firestore:"age"`
	Preferences   []string  `firestore:"preferences"`
	IsAnonymous   bool      `firestore:"isAnonymous"`
	Email         string    `firestore:"email"`
	DisplayName   string    `firestore:"displayName"`
	AvatarURL     string    `firestore:"avatarUrl"`
	CreatedAt     time.Time `firestore:"createdAt"`
	LastActive    time.Time `firestore:"lastActive"`
	Location      string    `firestore:"location"`
	Secret        string    `firestore:"secret"`
	SecretVisible bool      `firestore:"secretVisible"`
	AvatarID      string    `firestore:"avatarId"`
	BodyType      string    `firestore:"bodyType"`
	MediaRefs     []string  `firestore:"mediaRefs"`
}

// CollectionProfiles is the Firestore collection holding profile documents.
const CollectionProfiles = "profiles"

// FromProfileDomain maps a pure domain entity to its persistence model.
func FromProfileDomain(profile *entity.Profile) *ProfileModel {
	return &ProfileModel{
		Username:      profile.Username,
		Gender:        profile.Gender,
		Age:           profile.Age,
		Preferences:   profile.Preferences,
		IsAnonymous:   profile.IsAnonymous,
		Email:         profile.Email,
		DisplayName:   profile.DisplayName,
		AvatarURL:     profile.AvatarURL,
		CreatedAt:     profile.CreatedAt,
		LastActive:    profile.LastActive,
		Location:      profile.Location,
		Secret:        profile.Secret,
		SecretVisible: profile.SecretVisible,
		AvatarID:      profile.AvatarID,
		BodyType:      profile.BodyType,
		MediaRefs:     profile.MediaRefs,
	}
}

// ToDomain maps the persistence model back to a pure domain entity. The
// document id is supplied by the caller since it lives outside the document.
func (m *ProfileModel) ToDomain(id string) *entity.Profile {
	return &entity.Profile{
		ID:            id,
		Username:      m.Username,
		Gender:        m.Gender,
		Age:           m.Age,
		Preferences:   m.Preferences,
		IsAnonymous:   m.IsAnonymous,
		Email:         m.Email,
		DisplayName:   m.DisplayName,
		AvatarURL:     m.AvatarURL,
		CreatedAt:     m.CreatedAt,
		LastActive:    m.LastActive,
		Location:      m.Location,
		Secret:        m.Secret,
		SecretVisible: m.SecretVisible,
		AvatarID:      m.AvatarID,
		BodyType:      m.BodyType,
		MediaRefs:     m.MediaRefs,
	}
}
