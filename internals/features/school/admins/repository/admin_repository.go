// file: internals/features/school/admins/repository/admin_repository.go
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	database "schoolhub_backend/internals/databases"
	adminModel "schoolhub_backend/internals/features/school/admins/model"
)

var ErrAdminNotFound = errors.New("admin not found")

// FindAdminByUserID loads the admin (with school) bound to an identity-provider user id.
// Soft-deleted admins are treated as absent.
func FindAdminByUserID(ctx context.Context, db *gorm.DB, userID string) (*adminModel.AdminModel, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrAdminNotFound
	}

	var admin adminModel.AdminModel
	err := db.WithContext(ctx).
		Preload("School").
		Where("admin_user_id = ?", userID).
		First(&admin).Error
	if database.IsNotFound(err) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// CreateAdmin inserts admin unless a live admin already holds its user id.
// created is false when the insert was skipped.
func CreateAdmin(ctx context.Context, db *gorm.DB, admin *adminModel.AdminModel) (created bool, err error) {
	res := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(admin)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// SoftDeleteAdminByUserID returns the number of rows affected.
func SoftDeleteAdminByUserID(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	tx := db.WithContext(ctx).Where("admin_user_id = ?", userID).Delete(&adminModel.AdminModel{})
	return tx.RowsAffected, tx.Error
}
