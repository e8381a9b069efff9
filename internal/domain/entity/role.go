package entity

import "strings"

// Role is the fixed set of account roles stored on users.role.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

// Permission is a capability checked per route.
type Permission string

const (
	PermContentRead       Permission = "content:read"
	PermContentWrite      Permission = "content:write"
	PermFavoriteRead      Permission = "favorite:read"
	PermFavoriteWrite     Permission = "favorite:write"
	PermFavoriteManageAny Permission = "favorite:manage_any"
	PermProfileWrite      Permission = "profile:write"
	PermVisitRead         Permission = "visit:read"
	PermVisitWrite        Permission = "visit:write"
	PermVisitExport       Permission = "visit:export"
)

var rolePermissions = map[Role]map[Permission]struct{}{
	RoleAdmin: set(
		PermContentRead, PermContentWrite,
		PermFavoriteRead, PermFavoriteWrite, PermFavoriteManageAny,
		PermProfileWrite,
		PermVisitRead, PermVisitWrite, PermVisitExport,
	),
	RoleManager: set(
		PermContentRead,
		PermFavoriteRead, PermFavoriteWrite,
		PermProfileWrite,
		PermVisitRead, PermVisitWrite, PermVisitExport,
	),
	RoleUser: set(
		PermContentRead,
		PermFavoriteRead, PermFavoriteWrite,
		PermProfileWrite,
		PermVisitRead, PermVisitWrite, PermVisitExport,
	),
}

func set(perms ...Permission) map[Permission]struct{} {
	m := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		m[p] = struct{}{}
	}
	return m
}

// ParseRole normalizes a role name. "pengelola" is accepted as manager.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, true
	case "manager", "pengelola":
		return RoleManager, true
	case "user":
		return RoleUser, true
	}
	return "", false
}

func (r Role) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// Can reports whether the role grants p. Unknown roles grant nothing.
func (r Role) Can(p Permission) bool {
	_, ok := rolePermissions[r][p]
	return ok
}
