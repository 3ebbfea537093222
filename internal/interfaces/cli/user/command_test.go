package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/darasa-app/darasa/internal/infrastructure/auth"
	"github.com/darasa-app/darasa/internal/infrastructure/persistence/models"
	"github.com/darasa-app/darasa/internal/shared/authorization"
	"github.com/darasa-app/darasa/internal/shared/id"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserModel{}))
	return db
}

func TestCreateUserHashesPassword(t *testing.T) {
	db := newTestDB(t)
	hasher := auth.NewBcryptPasswordHasher(4)

	user, err := CreateUser(db, hasher, "admin@darasa.app", "hunter2", "Admin", authorization.RoleAdmin)
	require.NoError(t, err)

	assert.NoError(t, id.ValidatePrefix(user.SID, id.PrefixUser))
	assert.Equal(t, "admin", user.Role)
	assert.NotEqual(t, "hunter2", user.PasswordHash)
	assert.NoError(t, hasher.Verify("hunter2", user.PasswordHash))
	assert.Error(t, hasher.Verify("wrong", user.PasswordHash))

	var stored models.UserModel
	require.NoError(t, db.Where("email = ?", "admin@darasa.app").First(&stored).Error)
	assert.Equal(t, user.PasswordHash, stored.PasswordHash)
}

func TestCreateUserValidation(t *testing.T) {
	db := newTestDB(t)
	hasher := auth.NewBcryptPasswordHasher(4)

	_, err := CreateUser(db, hasher, "", "hunter2", "", authorization.RoleStudent)
	assert.Error(t, err)

	_, err = CreateUser(db, hasher, "someone@darasa.app", "", "", authorization.RoleStudent)
	assert.Error(t, err)

	_, err = CreateUser(db, hasher, "someone@darasa.app", "hunter2", "", authorization.UserRole("superuser"))
	assert.Error(t, err)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	hasher := auth.NewBcryptPasswordHasher(4)

	_, err := CreateUser(db, hasher, "dup@darasa.app", "hunter2", "", authorization.RoleStudent)
	require.NoError(t, err)

	_, err = CreateUser(db, hasher, "dup@darasa.app", "hunter2", "", authorization.RoleStudent)
	assert.Error(t, err)
}
