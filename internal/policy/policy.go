// Package policy holds the stateless authorization rules evaluated against the
// principal extracted from a verified access token.
package policy

import "hbnb/internal/domain"

// Principal is the authenticated caller.
type Principal struct {
	UserID  string
	IsAdmin bool
}

func (p Principal) IsSelf(userID string) bool {
	return p.UserID != "" && p.UserID == userID
}

func CanCreateUser(p Principal) bool {
	return p.IsAdmin
}

func CanUpdateUser(p Principal, targetID string) bool {
	return p.IsAdmin || p.IsSelf(targetID)
}

func CanDeleteUser(p Principal, targetID string) bool {
	return p.IsAdmin || p.IsSelf(targetID)
}

// CanGrantAdmin guards changes to the is_admin flag.
func CanGrantAdmin(p Principal) bool {
	return p.IsAdmin
}

func CanManageAmenities(p Principal) bool {
	return p.IsAdmin
}

// CanCreatePlaceFor allows a non-admin to list places under their own account only.
func CanCreatePlaceFor(p Principal, ownerID string) bool {
	return p.IsAdmin || p.IsSelf(ownerID)
}

func CanUpdatePlace(p Principal, place *domain.Place) bool {
	return p.IsAdmin || p.IsSelf(place.OwnerID)
}

// CanReviewPlace rejects reviews of one's own place. Duplicate reviews are a
// conflict, not an authorization failure, and are checked by the review service.
func CanReviewPlace(p Principal, place *domain.Place) bool {
	return p.UserID != "" && place.OwnerID != p.UserID
}

func CanModifyReview(p Principal, review *domain.Review) bool {
	return p.IsAdmin || p.IsSelf(review.UserID)
}
