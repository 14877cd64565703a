package identity

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/siherrmann/lexgraph/helper"
)

// tenantValuePattern enforces 1-25 lowercase alphanumeric characters with
// optional internal periods (no leading or trailing period).
var tenantValuePattern = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9.]{0,23}[a-z0-9])?$`)

// defaultTenantSentinel is treated as a request for the default tenant
// rather than validated as a tenant name.
const defaultTenantSentinel = "default_"

// TenantID is an immutable tenant discriminator. The zero value (empty
// string) is the default tenant, which formats labels, index names and IDs
// without any tenant scoping. A custom tenant gets prefixed/interleaved
// formatting so that multiple tenants can share one graph store without
// collisions.
type TenantID struct {
	value string
}

// DefaultTenantID is the shared default-tenant instance. It is read-only
// and safe to share across goroutines.
var DefaultTenantID = &TenantID{}

// NewTenantID returns the default tenant.
func NewTenantID() *TenantID {
	return DefaultTenantID
}

// NewTenantIDFromString validates value and wraps it in a TenantID.
// The literal string "default_" (case-insensitive) is normalized to the
// default tenant instead of being validated.
func NewTenantIDFromString(value string) (*TenantID, error) {
	if strings.EqualFold(value, defaultTenantSentinel) {
		return DefaultTenantID, nil
	}
	if !tenantValuePattern.MatchString(value) {
		return nil, helper.NewError("tenant id validation", fmt.Errorf("invalid tenant id: %s", value))
	}
	return &TenantID{value: value}, nil
}

// ToTenantID coerces value into a TenantID. A nil value returns the shared
// default tenant, an existing *TenantID is passed through unchanged (same
// pointer, not a copy), and a string is validated and wrapped.
func ToTenantID(value interface{}) (*TenantID, error) {
	switch v := value.(type) {
	case nil:
		return DefaultTenantID, nil
	case *TenantID:
		if v == nil {
			return DefaultTenantID, nil
		}
		return v, nil
	case string:
		if v == "" {
			return DefaultTenantID, nil
		}
		return NewTenantIDFromString(v)
	default:
		return nil, helper.NewError("tenant id conversion", fmt.Errorf("unsupported tenant id type %T", value))
	}
}

// Value returns the raw tenant value, empty for the default tenant.
func (t *TenantID) Value() string {
	return t.value
}

// IsDefault reports whether t is the default tenant.
func (t *TenantID) IsDefault() bool {
	return t.value == ""
}

// FormatLabel formats a graph label for this tenant. The default tenant
// wraps the label in backticks; a custom tenant appends the tenant value
// and a literal "__" inside the backticks.
func (t *TenantID) FormatLabel(label string) string {
	if t.IsDefault() {
		return fmt.Sprintf("`%s`", label)
	}
	return fmt.Sprintf("`%s%s__`", label, t.value)
}

// FormatIndexName formats an index name for this tenant.
func (t *TenantID) FormatIndexName(name string) string {
	if t.IsDefault() {
		return name
	}
	return fmt.Sprintf("%s_%s", name, t.value)
}

// FormatHashable prefixes s with the tenant value before hashing. This is
// the single chokepoint that isolates tenant-scoped node IDs: every ID that
// must differ per tenant is hashed via a string built through this method.
func (t *TenantID) FormatHashable(s string) string {
	if t.IsDefault() {
		return s
	}
	return fmt.Sprintf("%s::%s", t.value, s)
}

// FormatID joins prefix and id with the tenant-specific separator.
func (t *TenantID) FormatID(prefix string, id string) string {
	if t.IsDefault() {
		return fmt.Sprintf("%s::%s", prefix, id)
	}
	return fmt.Sprintf("%s:%s:%s", prefix, t.value, id)
}

// RewriteID inserts the tenant value as the second colon-separated segment
// of id, so "aws::abc:def" becomes "aws:acme:abc:def". For the default
// tenant the ID is returned unchanged. The operation is not idempotent for
// custom tenants: callers rewrite exactly once, at the point an identifier
// is about to leave a single-tenant context.
func (t *TenantID) RewriteID(id string) string {
	if t.IsDefault() {
		return id
	}
	parts := strings.Split(id, ":")
	rest := ""
	if len(parts) > 2 {
		rest = strings.Join(parts[2:], ":")
	}
	return fmt.Sprintf("%s:%s:%s", parts[0], t.value, rest)
}

// String returns the tenant value, or the sentinel for the default tenant.
func (t *TenantID) String() string {
	if t.IsDefault() {
		return defaultTenantSentinel
	}
	return t.value
}
