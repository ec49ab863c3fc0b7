package curauth

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestAccountCloneIsDeep(t *testing.T) {
	expiry := time.Now().Add(time.Hour)
	account := &Account{
		ID:               "id-1",
		Email:            "alice@example.com",
		ResetTokenExpiry: &expiry,
		Permissions:      []string{"profile:read"},
	}

	clone := account.Clone()
	*clone.ResetTokenExpiry = clone.ResetTokenExpiry.Add(time.Hour)
	clone.Permissions[0] = "changed"

	if !account.ResetTokenExpiry.Equal(expiry) {
		t.Fatal("clone shares the expiry pointer")
	}
	if account.Permissions[0] != "profile:read" {
		t.Fatal("clone shares the permissions slice")
	}
	if (*Account)(nil).Clone() != nil {
		t.Fatal("nil Clone should stay nil")
	}
}

func TestAccountJSONExcludesPermissions(t *testing.T) {
	account := &Account{
		ID:          "id-1",
		Email:       "alice@example.com",
		Permissions: []string{"profile:read"},
	}

	data, err := json.Marshal(account)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	body := string(data)
	if strings.Contains(body, "profile:read") {
		t.Fatal("permissions must not be serialized")
	}
	if !strings.Contains(body, `"user_id":"id-1"`) {
		t.Fatalf("expected user_id key, got %s", body)
	}
}

func TestRoleAndTierValidity(t *testing.T) {
	for _, r := range []Role{RoleMember, RoleCurator, RoleAdmin} {
		if !r.Valid() {
			t.Fatalf("role %q should be valid", r)
		}
	}
	if Role("superuser").Valid() {
		t.Fatal("unknown role accepted")
	}
	for _, tier := range []Tier{TierFree, TierPro, TierEnterprise} {
		if !tier.Valid() {
			t.Fatalf("tier %q should be valid", tier)
		}
	}
	if Tier("platinum").Valid() {
		t.Fatal("unknown tier accepted")
	}
}
