// Package rbac implementa la política de autorización por rol: una tabla
// estática rol → conjunto de permisos, construida una sola vez al arrancar
// el proceso. Las consultas son lookups puros, sin efectos ni estado mutable.
package rbac

import "strings"

// Permission capacidad nombrada que se chequea contra un rol.
type Permission string

// Permisos de la aplicación.
const (
	PermManageEmployees   Permission = "manage_employees"
	PermViewAllEmployees  Permission = "view_all_employees"
	PermEditAllEmployees  Permission = "edit_all_employees"
	PermDeleteEmployees   Permission = "delete_employees"
	PermApproveLeave      Permission = "approve_leave"
	PermRejectLeave       Permission = "reject_leave"
	PermViewAllAttendance Permission = "view_all_attendance"
	PermEditAttendance    Permission = "edit_attendance"
	PermManageAttendance  Permission = "manage_attendance"
	PermViewPayroll       Permission = "view_payroll"
	PermManagePayroll     Permission = "manage_payroll"
	PermManageRoles       Permission = "manage_roles"
	PermViewReports       Permission = "view_reports"
	PermSystemSettings    Permission = "system_settings"

	PermViewOwnProfile    Permission = "view_own_profile"
	PermEditOwnProfile    Permission = "edit_own_profile"
	PermViewOwnAttendance Permission = "view_own_attendance"
	PermApplyLeave        Permission = "apply_leave"
	PermViewLeaveHistory  Permission = "view_leave_history"
	PermViewOwnSalary     Permission = "view_own_salary"
	PermViewLeaveBalance  Permission = "view_leave_balance"
)

// rolePermissions tabla fija rol → permisos. Admin tiene acceso completo;
// HR pierde delete_employees, manage_payroll, manage_roles y
// system_settings; employee queda limitado a sus propios datos.
var rolePermissions = map[string][]Permission{
	"admin": {
		PermManageEmployees, PermViewAllEmployees, PermEditAllEmployees,
		PermDeleteEmployees, PermApproveLeave, PermRejectLeave,
		PermViewAllAttendance, PermEditAttendance, PermManageAttendance,
		PermViewPayroll, PermManagePayroll, PermManageRoles,
		PermViewReports, PermSystemSettings,
	},
	"hr": {
		PermManageEmployees, PermViewAllEmployees, PermEditAllEmployees,
		PermApproveLeave, PermRejectLeave,
		PermViewAllAttendance, PermEditAttendance, PermManageAttendance,
		PermViewPayroll, PermViewReports,
	},
	"employee": {
		PermViewOwnProfile, PermEditOwnProfile, PermViewOwnAttendance,
		PermApplyLeave, PermViewLeaveHistory, PermViewOwnSalary,
		PermViewLeaveBalance,
	},
}

// permissionSets índice para lookup O(1); se arma una vez en init.
var permissionSets map[string]map[Permission]struct{}

func init() {
	permissionSets = make(map[string]map[Permission]struct{}, len(rolePermissions))
	for role, perms := range rolePermissions {
		set := make(map[Permission]struct{}, len(perms))
		for _, p := range perms {
			set[p] = struct{}{}
		}
		permissionSets[role] = set
	}
}

// HasPermission indica si el rol tiene el permiso. Rol o permiso
// desconocidos devuelven false (deny por defecto), nunca panic.
func HasPermission(role string, perm Permission) bool {
	set, ok := permissionSets[role]
	if !ok {
		return false
	}
	_, ok = set[perm]
	return ok
}

// HasPermissionFor chequea el permiso aplicando alcance de recurso: los
// permisos sobre datos propios (view_own_*, apply_leave, view_leave_*)
// solo pasan cuando el recurso pertenece al solicitante. Los permisos
// globales (view_all_*, manage_*) no miran el owner.
//
// La tabla por sí sola no distingue "mi perfil" de "cualquier perfil";
// este es el punto donde la política incorpora el scoping que de otro
// modo quedaría como responsabilidad dispersa de cada caller.
func HasPermissionFor(role string, perm Permission, requesterID, ownerID int64) bool {
	if !HasPermission(role, perm) {
		return false
	}
	if isOwnScoped(perm) && requesterID != ownerID {
		return false
	}
	return true
}

// isOwnScoped permisos limitados a los datos del propio usuario.
func isOwnScoped(perm Permission) bool {
	switch perm {
	case PermApplyLeave, PermViewLeaveHistory, PermViewLeaveBalance:
		return true
	}
	return strings.Contains(string(perm), "_own_")
}

// Permissions devuelve la lista de permisos del rol (copia; nil si el rol
// no existe). Útil para exponer el set completo al cliente.
func Permissions(role string) []Permission {
	perms, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}
