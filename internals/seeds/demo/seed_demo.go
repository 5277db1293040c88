package demo

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	adminModel "schoolhub_backend/internals/features/school/admins/model"
	adminRepo "schoolhub_backend/internals/features/school/admins/repository"
	classModel "schoolhub_backend/internals/features/school/classes/model"
	examModel "schoolhub_backend/internals/features/school/exams/model"
	schoolModel "schoolhub_backend/internals/features/school/schools/model"
	subjectModel "schoolhub_backend/internals/features/school/subjects/model"
)

//go:embed data_demo.json
var demoJSON []byte

type schoolSeed struct {
	SchoolName    string  `json:"school_name"`
	SchoolSlug    string  `json:"school_slug"`
	SchoolAddress *string `json:"school_address"`
	SchoolPhone   *string `json:"school_phone"`
}

type adminSeed struct {
	AdminUserID   string  `json:"admin_user_id"`
	AdminFullName string  `json:"admin_full_name"`
	AdminEmail    *string `json:"admin_email"`
}

type classSeed struct {
	ClassName  string `json:"class_name"`
	ClassLevel *int   `json:"class_level"`
}

type subjectSeed struct {
	SubjectName string  `json:"subject_name"`
	SubjectCode *string `json:"subject_code"`
}

type examSeed struct {
	ClassName    string `json:"class_name"`
	SubjectCode  string `json:"subject_code"`
	ExamTerm     string `json:"exam_term"`
	ExamTitle    string `json:"exam_title"`
	ExamDate     string `json:"exam_date"`
	ExamMaxScore int    `json:"exam_max_score"`
}

type Tenant struct {
	School   schoolSeed    `json:"school"`
	Admins   []adminSeed   `json:"admins"`
	Classes  []classSeed   `json:"classes"`
	Subjects []subjectSeed `json:"subjects"`
	Exams    []examSeed    `json:"exams"`
}

// LoadTenant decodes the embedded demo tenant.
func LoadTenant() (*Tenant, error) {
	var t Tenant
	if err := sonic.Unmarshal(demoJSON, &t); err != nil {
		return nil, fmt.Errorf("decode demo seed: %w", err)
	}
	return &t, nil
}

// SeedTenant inserts the tenant unless a school with the same slug exists.
// A non-empty adminUserID replaces the user id of the first admin.
func SeedTenant(ctx context.Context, db *gorm.DB, t *Tenant, adminUserID string) error {
	var existing schoolModel.SchoolModel
	err := db.WithContext(ctx).Where("school_slug = ?", t.School.SchoolSlug).First(&existing).Error
	if err == nil {
		log.Info().Str("slug", t.School.SchoolSlug).Msg("demo school already seeded, skipping")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup school: %w", err)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		school := schoolModel.SchoolModel{
			SchoolName:    t.School.SchoolName,
			SchoolSlug:    t.School.SchoolSlug,
			SchoolAddress: t.School.SchoolAddress,
			SchoolPhone:   t.School.SchoolPhone,
		}
		if err := tx.Create(&school).Error; err != nil {
			return fmt.Errorf("insert school: %w", err)
		}

		for i, a := range t.Admins {
			userID := a.AdminUserID
			if i == 0 && adminUserID != "" {
				userID = adminUserID
			}
			admin := adminModel.AdminModel{
				AdminUserID:   userID,
				AdminSchoolID: school.SchoolID,
				AdminFullName: a.AdminFullName,
				AdminEmail:    a.AdminEmail,
			}
			// user ids are unique across schools
			created, err := adminRepo.CreateAdmin(ctx, tx, &admin)
			if err != nil {
				return fmt.Errorf("insert admin %s: %w", userID, err)
			}
			if !created {
				log.Warn().Str("user_id", userID).Msg("admin user id already used, skipped")
			}
		}

		classes := make(map[string]classModel.ClassModel, len(t.Classes))
		for _, c := range t.Classes {
			row := classModel.ClassModel{ClassSchoolID: school.SchoolID, ClassName: c.ClassName, ClassLevel: c.ClassLevel}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("insert class %s: %w", c.ClassName, err)
			}
			classes[c.ClassName] = row
		}

		subjects := make(map[string]subjectModel.SubjectModel, len(t.Subjects))
		for _, s := range t.Subjects {
			row := subjectModel.SubjectModel{SubjectSchoolID: school.SchoolID, SubjectName: s.SubjectName, SubjectCode: s.SubjectCode}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("insert subject %s: %w", s.SubjectName, err)
			}
			if s.SubjectCode != nil {
				subjects[*s.SubjectCode] = row
			}
		}

		for _, e := range t.Exams {
			exam, err := e.toModel(classes, subjects)
			if err != nil {
				return err
			}
			if err := tx.Create(exam).Error; err != nil {
				return fmt.Errorf("insert exam %s: %w", e.ExamTitle, err)
			}
		}

		log.Info().
			Str("school", school.SchoolName).
			Int("classes", len(classes)).
			Int("subjects", len(subjects)).
			Int("exams", len(t.Exams)).
			Msg("demo tenant seeded")
		return nil
	})
}

func (e examSeed) toModel(classes map[string]classModel.ClassModel, subjects map[string]subjectModel.SubjectModel) (*examModel.ExamModel, error) {
	class, ok := classes[e.ClassName]
	if !ok {
		return nil, fmt.Errorf("exam %q: unknown class %q", e.ExamTitle, e.ClassName)
	}
	subject, ok := subjects[e.SubjectCode]
	if !ok {
		return nil, fmt.Errorf("exam %q: unknown subject %q", e.ExamTitle, e.SubjectCode)
	}
	term, err := constants.ParseTerm(e.ExamTerm)
	if err != nil {
		return nil, fmt.Errorf("exam %q: %w", e.ExamTitle, err)
	}

	exam := &examModel.ExamModel{
		ExamSchoolID:  class.ClassSchoolID,
		ExamClassID:   class.ClassID,
		ExamSubjectID: subject.SubjectID,
		ExamTerm:      term,
		ExamTitle:     e.ExamTitle,
		ExamMaxScore:  e.ExamMaxScore,
	}
	if e.ExamDate != "" {
		d, err := time.Parse(time.DateOnly, e.ExamDate)
		if err != nil {
			return nil, fmt.Errorf("exam %q: bad date %q: %w", e.ExamTitle, e.ExamDate, err)
		}
		exam.ExamDate = &d
	}
	return exam, nil
}
