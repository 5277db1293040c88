// internals/features/school/exams/dto/exam_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolhub_backend/internals/constants"
	model "schoolhub_backend/internals/features/school/exams/model"
)

/* =========================
   REQUEST
   ========================= */

type CreateExamRequest struct {
	ClassID   string     `json:"exam_class_id"   form:"exam_class_id"   validate:"required,uuid"`
	SubjectID string     `json:"exam_subject_id" form:"exam_subject_id" validate:"required,uuid"`
	Term      string     `json:"exam_term"       form:"exam_term"       validate:"required,term"`
	Title     string     `json:"exam_title"      form:"exam_title"      validate:"required,min=1,max=150"`
	Date      *time.Time `json:"exam_date,omitempty" form:"exam_date"`
	MaxScore  *int       `json:"exam_max_score,omitempty" form:"exam_max_score" validate:"omitempty,min=1,max=1000"`
}

// ToModel expects a validated request.
func (r CreateExamRequest) ToModel(schoolID uuid.UUID) *model.ExamModel {
	term, _ := constants.ParseTerm(r.Term)
	m := &model.ExamModel{
		ExamSchoolID:  schoolID,
		ExamClassID:   uuid.MustParse(r.ClassID),
		ExamSubjectID: uuid.MustParse(r.SubjectID),
		ExamTerm:      term,
		ExamTitle:     strings.TrimSpace(r.Title),
		ExamDate:      r.Date,
		ExamMaxScore:  100,
	}
	if r.MaxScore != nil {
		m.ExamMaxScore = *r.MaxScore
	}
	return m
}

// Query for listing and export
type ExamListQuery struct {
	Term    string `query:"term"     validate:"omitempty,term"`
	ClassID string `query:"class_id" validate:"omitempty,uuid"`
}

/* =========================
   RESPONSE
   ========================= */

type ExamResponse struct {
	ExamID        uuid.UUID      `json:"exam_id"`
	ExamClassID   uuid.UUID      `json:"exam_class_id"`
	ExamClassName string         `json:"exam_class_name,omitempty"`
	ExamSubjectID uuid.UUID      `json:"exam_subject_id"`
	ExamSubject   string         `json:"exam_subject_name,omitempty"`
	ExamTerm      constants.Term `json:"exam_term"`
	ExamTitle     string         `json:"exam_title"`
	ExamDate      *time.Time     `json:"exam_date,omitempty"`
	ExamMaxScore  int            `json:"exam_max_score"`
	ExamCreatedAt time.Time      `json:"exam_created_at"`
}

func FromModel(m *model.ExamModel) ExamResponse {
	out := ExamResponse{
		ExamID:        m.ExamID,
		ExamClassID:   m.ExamClassID,
		ExamSubjectID: m.ExamSubjectID,
		ExamTerm:      m.ExamTerm,
		ExamTitle:     m.ExamTitle,
		ExamDate:      m.ExamDate,
		ExamMaxScore:  m.ExamMaxScore,
		ExamCreatedAt: m.ExamCreatedAt,
	}
	if m.Class != nil {
		out.ExamClassName = m.Class.ClassName
	}
	if m.Subject != nil {
		out.ExamSubject = m.Subject.SubjectName
	}
	return out
}

func FromModels(rows []model.ExamModel) []ExamResponse {
	out := make([]ExamResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
