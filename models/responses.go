package models

// MessageResponse is the generic success/failure envelope used by endpoints
// that report a human-readable outcome only.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse carries the bearer token and the caller's personal referral
// link returned by a successful login.
type LoginResponse struct {
	Token        string `json:"token"`
	ReferralLink string `json:"referralLink"`
}

// RedeemResponse reports the outcome of a rewards redemption together with
// the remaining ledger balance.
type RedeemResponse struct {
	Message      string `json:"message"`
	RewardPoints int64  `json:"rewards"`
}

// ReferralsResponse wraps the list of users referred by the caller.
type ReferralsResponse struct {
	Referrals []Referral `json:"referrals"`
}
