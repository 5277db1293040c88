package demo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub_backend/internals/databases/dbtest"
	"schoolhub_backend/internals/databases/migrations"
	adminModel "schoolhub_backend/internals/features/school/admins/model"
	examModel "schoolhub_backend/internals/features/school/exams/model"
	schoolModel "schoolhub_backend/internals/features/school/schools/model"
)

func TestSeedTenant(t *testing.T) {
	db := dbtest.Open(t, migrations.Models()...)
	tenant, err := LoadTenant()
	require.NoError(t, err)
	require.NotEmpty(t, tenant.Exams)

	ctx := context.Background()
	require.NoError(t, SeedTenant(ctx, db, tenant, "user_real"))
	// second run is a no-op
	require.NoError(t, SeedTenant(ctx, db, tenant, "user_real"))

	var schools int64
	require.NoError(t, db.Model(&schoolModel.SchoolModel{}).Count(&schools).Error)
	assert.EqualValues(t, 1, schools)

	var admin adminModel.AdminModel
	require.NoError(t, db.Where("admin_user_id = ?", "user_real").First(&admin).Error)
	assert.Equal(t, tenant.Admins[0].AdminFullName, admin.AdminFullName)

	var exams int64
	require.NoError(t, db.Model(&examModel.ExamModel{}).Count(&exams).Error)
	assert.EqualValues(t, len(tenant.Exams), exams)
}

func TestSeedTenant_UnknownClassRollsBack(t *testing.T) {
	db := dbtest.Open(t, migrations.Models()...)
	tenant, err := LoadTenant()
	require.NoError(t, err)
	tenant.Exams = append(tenant.Exams, examSeed{ClassName: "Grade 9Z", SubjectCode: "MATH", ExamTerm: "FINAL", ExamTitle: "Ghost"})

	require.Error(t, SeedTenant(context.Background(), db, tenant, ""))

	var schools int64
	require.NoError(t, db.Model(&schoolModel.SchoolModel{}).Count(&schools).Error)
	assert.Zero(t, schools)
}
