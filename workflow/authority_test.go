package workflow

import (
	"testing"

	"github.com/clockwisehq/workforce-go/models"
	"github.com/stretchr/testify/assert"
)

func TestCanDecide(t *testing.T) {
	managerID := uint(1)
	admin := models.User{UID: 9, Role: models.UserRoleAdmin}
	manager := models.User{UID: 1, Role: models.UserRoleManager}
	managed := models.User{UID: 2, Role: models.UserRoleEmployee, ManagerID: &managerID}
	other := models.User{UID: 7, Role: models.UserRoleManager}
	root := models.User{UID: 3, Role: models.UserRoleEmployee}

	assert.True(t, CanDecide(admin, managed, false))
	assert.True(t, CanDecide(manager, managed, false))
	assert.False(t, CanDecide(other, managed, false), "manager of someone else has no authority")

	assert.True(t, CanDecide(root, root, true), "root-level users approve their own entries")
	assert.False(t, CanDecide(managed, managed, true), "managed users never self-approve")
}
