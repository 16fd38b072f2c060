package profile

// Stats are the aggregate usage counts for one user, derived from the
// timeline. They feed the profile header and badge evaluation.
type Stats struct {
	Brews          int `json:"brews"`
	Sips           int `json:"sips"`
	Comments       int `json:"comments"`
	SharesReceived int `json:"shares_received"`
}

// BadgeThreshold describes one achievement tier. The tables themselves
// live with the presentation layer; evaluation here is a pure function
// over whatever table the caller supplies.
type BadgeThreshold struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	MinBrews          int    `json:"min_brews"`
	MinSips           int    `json:"min_sips"`
	MinComments       int    `json:"min_comments"`
	MinSharesReceived int    `json:"min_shares_received"`
}

// Earned reports whether stats satisfy every minimum of the threshold.
func (b BadgeThreshold) Earned(stats Stats) bool {
	return stats.Brews >= b.MinBrews &&
		stats.Sips >= b.MinSips &&
		stats.Comments >= b.MinComments &&
		stats.SharesReceived >= b.MinSharesReceived
}
