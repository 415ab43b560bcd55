// Package policy is the capability gate between roles and entity
// mutations. Every service consults CanMutate before calling into a store;
// the HTTP role middleware is a second fence, not the authoritative one,
// so a direct service call cannot bypass the check.
package policy

import "shopstock/internal/domain"

// Resource names one of the managed collections.
type Resource string

const (
	ResourceProducts  Resource = "products"
	ResourceProviders Resource = "providers"
	ResourceUsers     Resource = "users"
	ResourceOrders    Resource = "orders"
	ResourceSales     Resource = "sales"
)

// CanMutate reports whether a role may create, update or deactivate
// records of the given resource. Administrators may mutate everything;
// employees only the product catalog and the point of sale.
func CanMutate(role domain.Role, resource Resource) bool {
	switch role {
	case domain.RoleAdministrator:
		return true
	case domain.RoleEmployee:
		return resource == ResourceProducts || resource == ResourceSales
	default:
		return false
	}
}

// CanView reports whether a role may read records of the given resource.
// No row-level filtering exists anywhere: where a role can see a
// collection at all, it sees all of it. Employees see everything except
// user management.
func CanView(role domain.Role, resource Resource) bool {
	switch role {
	case domain.RoleAdministrator:
		return true
	case domain.RoleEmployee:
		return resource != ResourceUsers
	default:
		return false
	}
}
