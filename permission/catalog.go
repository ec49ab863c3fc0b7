package permission

import (
	"slices"
	"strings"
)

// Role and tier strings accepted by the catalog. They mirror the stable
// values persisted on account records.
const (
	RoleMember  = "member"
	RoleCurator = "curator"
	RoleAdmin   = "admin"

	TierFree       = "free"
	TierPro        = "pro"
	TierEnterprise = "enterprise"
)

// Features describes what a subscription tier unlocks.
// MaxOpportunitiesPerMonth of -1 means unlimited.
type Features struct {
	MaxOpportunitiesPerMonth int
	AIGeneration             bool
	PrioritySupport          bool
}

var rolePermissions = map[string][]string{
	RoleMember: {
		"opportunities:read",
		"opportunities:track",
		"proposals:create",
		"proposals:read",
		"proposals:update",
		"proposals:submit",
		"profile:read",
		"profile:update",
		"notifications:read",
	},
	RoleCurator: {
		"opportunities:read",
		"opportunities:create",
		"opportunities:update",
		"opportunities:delete",
		"opportunities:track",
		"proposals:read",
		"proposals:evaluate",
		"users:read",
		"profile:read",
		"profile:update",
		"notifications:read",
	},
	RoleAdmin: {
		"opportunities:*",
		"proposals:*",
		"users:*",
		"admin:*",
	},
}

var tierFeatures = map[string]Features{
	TierFree:       {MaxOpportunitiesPerMonth: 10},
	TierPro:        {MaxOpportunitiesPerMonth: 100, AIGeneration: true},
	TierEnterprise: {MaxOpportunitiesPerMonth: -1, AIGeneration: true, PrioritySupport: true},
}

// For returns the permission set for role, sorted, as a fresh slice. Unknown
// roles yield an empty set.
func For(role string) []string {
	perms := slices.Clone(rolePermissions[strings.ToLower(role)])
	slices.Sort(perms)
	return perms
}

// Has reports whether an account with the given role and materialized
// permission set holds perm. The admin role always passes; for everyone else
// membership is an exact string match against granted.
func Has(role string, granted []string, perm string) bool {
	if strings.ToLower(role) == RoleAdmin {
		return true
	}
	return slices.Contains(granted, perm)
}

// TierFeatures returns the feature set for tier. The second return is false
// for unknown tiers.
func TierFeatures(tier string) (Features, bool) {
	f, ok := tierFeatures[strings.ToLower(tier)]
	return f, ok
}
