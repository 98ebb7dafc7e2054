package access

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Role of an administrator account.
type Role string

const (
	RoleSuperAdmin  Role = "SUPER_ADMIN"
	RoleNormalAdmin Role = "NORMAL_ADMIN"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleSuperAdmin || r == RoleNormalAdmin
}

// Feature is an area of the application guarded by the gate.
type Feature string

const (
	FeatureService  Feature = "service"
	FeatureProduct  Feature = "product"
	FeatureStockIn  Feature = "stockIn"
	FeatureStockOut Feature = "stockOut"
	FeatureBrand    Feature = "brand"
	FeatureUser     Feature = "user"
)

// Grantable reports whether the feature is controlled by the per-user permission map.
func (f Feature) Grantable() bool {
	switch f {
	case FeatureService, FeatureProduct, FeatureStockIn, FeatureStockOut:
		return true
	}
	return false
}

func (f Feature) label() string {
	switch f {
	case FeatureService:
		return "services"
	case FeatureProduct:
		return "products"
	case FeatureStockIn:
		return "stock in entries"
	case FeatureStockOut:
		return "stock out entries"
	case FeatureBrand:
		return "brands"
	case FeatureUser:
		return "users"
	}
	return string(f)
}

type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

var allActions = []Action{ActionView, ActionCreate, ActionEdit, ActionDelete}

func (a Action) Valid() bool {
	for _, known := range allActions {
		if a == known {
			return true
		}
	}
	return false
}

// ActionSet is the set of actions granted on one feature.
type ActionSet []Action

// Has reports whether a is in the set.
func (s ActionSet) Has(a Action) bool {
	for _, granted := range s {
		if granted == a {
			return true
		}
	}
	return false
}

// MarshalJSON writes an empty set as [] rather than null.
func (s ActionSet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Action(s))
}

// PermissionSet is the fixed-shape permission map of a NORMAL_ADMIN.
type PermissionSet struct {
	Service  ActionSet `json:"service"`
	Product  ActionSet `json:"product"`
	StockIn  ActionSet `json:"stockIn"`
	StockOut ActionSet `json:"stockOut"`
}

// Allows reports whether action is granted on feature. Non-grantable features are never allowed.
func (p PermissionSet) Allows(feature Feature, action Action) bool {
	switch feature {
	case FeatureService:
		return p.Service.Has(action)
	case FeatureProduct:
		return p.Product.Has(action)
	case FeatureStockIn:
		return p.StockIn.Has(action)
	case FeatureStockOut:
		return p.StockOut.Has(action)
	}
	return false
}

// FullPermissions grants every action on every grantable feature.
func FullPermissions() PermissionSet {
	all := func() ActionSet { return append(ActionSet(nil), allActions...) }
	return PermissionSet{Service: all(), Product: all(), StockIn: all(), StockOut: all()}
}

// ParsePermissions validates a loosely typed permission map from a request body.
// Unknown features or actions are rejected; duplicates are collapsed.
func ParsePermissions(raw map[string][]string) (PermissionSet, error) {
	var set PermissionSet

	features := make([]string, 0, len(raw))
	for k := range raw {
		features = append(features, k)
	}
	sort.Strings(features)

	for _, name := range features {
		feature := Feature(name)
		if !feature.Grantable() {
			return PermissionSet{}, fmt.Errorf("unknown permission feature %q", name)
		}

		var actions ActionSet
		for _, a := range raw[name] {
			action := Action(a)
			if !action.Valid() {
				return PermissionSet{}, fmt.Errorf("unknown permission action %q for %s", a, name)
			}
			if !actions.Has(action) {
				actions = append(actions, action)
			}
		}

		switch feature {
		case FeatureService:
			set.Service = actions
		case FeatureProduct:
			set.Product = actions
		case FeatureStockIn:
			set.StockIn = actions
		case FeatureStockOut:
			set.StockOut = actions
		}
	}

	return set, nil
}
