package permission

import (
	"slices"
	"testing"
)

func TestForReturnsRoleSets(t *testing.T) {
	member := For(RoleMember)
	if !slices.Contains(member, "proposals:submit") {
		t.Fatalf("member should be able to submit proposals, got %v", member)
	}
	if slices.Contains(member, "opportunities:create") {
		t.Fatal("member should not create opportunities")
	}

	curator := For(RoleCurator)
	for _, perm := range []string{"opportunities:create", "opportunities:delete", "proposals:evaluate", "users:read"} {
		if !slices.Contains(curator, perm) {
			t.Fatalf("curator missing %q, got %v", perm, curator)
		}
	}
	if slices.Contains(curator, "proposals:create") {
		t.Fatal("curator should not create proposals")
	}

	admin := For(RoleAdmin)
	if !slices.Contains(admin, "admin:*") {
		t.Fatalf("admin missing wildcard, got %v", admin)
	}
}

func TestForUnknownRoleIsEmpty(t *testing.T) {
	if got := For("intern"); len(got) != 0 {
		t.Fatalf("expected empty set for unknown role, got %v", got)
	}
}

func TestForIsSortedAndCopied(t *testing.T) {
	first := For(RoleMember)
	if !slices.IsSorted(first) {
		t.Fatalf("expected sorted permissions, got %v", first)
	}

	first[0] = "mutated"
	second := For(RoleMember)
	if second[0] == "mutated" {
		t.Fatal("For returned a shared slice")
	}
}

func TestHasAdminShortCircuit(t *testing.T) {
	// Admins pass regardless of the materialized set, even for permissions
	// no catalog entry names.
	if !Has(RoleAdmin, nil, "billing:refund") {
		t.Fatal("admin should hold every permission")
	}
}

func TestHasExactMembership(t *testing.T) {
	granted := For(RoleMember)

	if !Has(RoleMember, granted, "proposals:read") {
		t.Fatal("member should read proposals")
	}
	if Has(RoleMember, granted, "users:read") {
		t.Fatal("member should not read users")
	}
	// No wildcard expansion outside the admin short-circuit.
	if Has(RoleCurator, For(RoleCurator), "opportunities:*") {
		t.Fatal("curator set should not match wildcard strings it does not contain")
	}
}

func TestTierFeatures(t *testing.T) {
	cases := []struct {
		tier string
		want Features
	}{
		{TierFree, Features{MaxOpportunitiesPerMonth: 10}},
		{TierPro, Features{MaxOpportunitiesPerMonth: 100, AIGeneration: true}},
		{TierEnterprise, Features{MaxOpportunitiesPerMonth: -1, AIGeneration: true, PrioritySupport: true}},
	}

	for _, tc := range cases {
		t.Run(tc.tier, func(t *testing.T) {
			got, ok := TierFeatures(tc.tier)
			if !ok {
				t.Fatalf("expected features for %s", tc.tier)
			}
			if got != tc.want {
				t.Fatalf("features mismatch: got %+v want %+v", got, tc.want)
			}
		})
	}

	if _, ok := TierFeatures("platinum"); ok {
		t.Fatal("unknown tier should report !ok")
	}
}
