package workflow

import "github.com/clockwisehq/workforce-go/models"

// CanDecide is the single approval-authority rule shared by every lifecycle:
// admins decide for anyone, managers for their direct reports, and a user for
// themselves only when root-level (no manager above them).
func CanDecide(approver, owner models.User, selfApproval bool) bool {
	if selfApproval {
		return owner.IsRootLevel()
	}
	if approver.Role == models.UserRoleAdmin {
		return true
	}
	return owner.ManagerID != nil && *owner.ManagerID == approver.UID
}
