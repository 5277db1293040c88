// Package migrations creates the schema for every model the service owns.
package migrations

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	adminModel "schoolhub_backend/internals/features/school/admins/model"
	classModel "schoolhub_backend/internals/features/school/classes/model"
	examModel "schoolhub_backend/internals/features/school/exams/model"
	resultModel "schoolhub_backend/internals/features/school/results/model"
	schoolModel "schoolhub_backend/internals/features/school/schools/model"
	smsModel "schoolhub_backend/internals/features/school/sms/model"
	subjectModel "schoolhub_backend/internals/features/school/subjects/model"
	authModel "schoolhub_backend/internals/features/users/auth/model"
)

// Models in dependency order.
func Models() []any {
	return []any{
		&schoolModel.SchoolModel{},
		&adminModel.AdminModel{},
		&classModel.ClassModel{},
		&subjectModel.SubjectModel{},
		&examModel.ExamModel{},
		&resultModel.ResultApprovalModel{},
		&smsModel.SmsTestLogModel{},
		&authModel.RevokedSession{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	for _, m := range Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
	}
	log.Info().Int("models", len(Models())).Msg("migration complete")
	return nil
}
