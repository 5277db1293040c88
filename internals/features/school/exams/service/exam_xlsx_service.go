// internals/features/school/exams/service/exam_xlsx_service.go
package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"schoolhub_backend/internals/constants"
	classModel "schoolhub_backend/internals/features/school/classes/model"
	model "schoolhub_backend/internals/features/school/exams/model"
	subjectModel "schoolhub_backend/internals/features/school/subjects/model"
)

const (
	examSheet      = "Sheet1"
	examDateLayout = "2006-01-02"
)

var ExamSheetHeader = []string{"No", "Title", "Class", "Subject", "Term", "Date", "Max Score"}

var ErrInvalidSheet = errors.New("invalid exam sheet")

// ExportXLSX writes every exam matching the filter (paging ignored) to a workbook,
// one row per exam below the header.
func (s *ExamService) ExportXLSX(ctx context.Context, f ListFilter) (*bytes.Buffer, error) {
	f.Offset, f.Limit = 0, 0
	rows, _, err := s.List(ctx, f)
	if err != nil {
		return nil, err
	}

	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetRow(examSheet, "A1", &ExamSheetHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, e := range rows {
		date := ""
		if e.ExamDate != nil {
			date = e.ExamDate.Format(examDateLayout)
		}
		className, subjectName := "", ""
		if e.Class != nil {
			className = e.Class.ClassName
		}
		if e.Subject != nil {
			subjectName = e.Subject.SubjectName
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []any{i + 1, e.ExamTitle, className, subjectName, string(e.ExamTerm), date, e.ExamMaxScore}
		if err := file.SetSheetRow(examSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return file.WriteToBuffer()
}

type ImportReport struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// ImportXLSX creates exams from a sheet laid out like ExportXLSX output. Class and
// subject are matched by name inside the school. Bad rows are reported, not fatal.
func (s *ExamService) ImportXLSX(ctx context.Context, schoolID uuid.UUID, r io.Reader) (*ImportReport, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSheet, err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrInvalidSheet
	}
	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: header and at least one row expected", ErrInvalidSheet)
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, req := range []string{"title", "class", "subject", "term"} {
		if _, ok := cols[req]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrInvalidSheet, req)
		}
	}

	classes, subjects, err := s.schoolLookups(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	report := &ImportReport{}
	for i, row := range rows[1:] {
		line := i + 2
		get := func(name string) string {
			if idx, ok := cols[name]; ok && idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}

		exam, err := examFromRow(schoolID, get, classes, subjects)
		if err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: %v", line, err))
			continue
		}
		if err := s.Create(ctx, exam); err != nil {
			if errors.Is(err, ErrDuplicateExam) {
				report.Skipped++
				report.Errors = append(report.Errors, fmt.Sprintf("row %d: duplicate exam", line))
				continue
			}
			return report, err
		}
		report.Created++
	}
	return report, nil
}

func (s *ExamService) schoolLookups(ctx context.Context, schoolID uuid.UUID) (map[string]uuid.UUID, map[string]uuid.UUID, error) {
	var cls []classModel.ClassModel
	if err := s.DB.WithContext(ctx).Where("class_school_id = ?", schoolID).Find(&cls).Error; err != nil {
		return nil, nil, err
	}
	var subs []subjectModel.SubjectModel
	if err := s.DB.WithContext(ctx).Where("subject_school_id = ?", schoolID).Find(&subs).Error; err != nil {
		return nil, nil, err
	}

	classes := make(map[string]uuid.UUID, len(cls))
	for _, c := range cls {
		classes[strings.ToLower(c.ClassName)] = c.ClassID
	}
	subjects := make(map[string]uuid.UUID, len(subs))
	for _, sb := range subs {
		subjects[strings.ToLower(sb.SubjectName)] = sb.SubjectID
		if sb.SubjectCode != nil && *sb.SubjectCode != "" {
			subjects[strings.ToLower(*sb.SubjectCode)] = sb.SubjectID
		}
	}
	return classes, subjects, nil
}

func examFromRow(schoolID uuid.UUID, get func(string) string, classes, subjects map[string]uuid.UUID) (*model.ExamModel, error) {
	title := get("title")
	if title == "" {
		return nil, errors.New("title is empty")
	}
	term, err := constants.ParseTerm(get("term"))
	if err != nil {
		return nil, err
	}
	classID, ok := classes[strings.ToLower(get("class"))]
	if !ok {
		return nil, fmt.Errorf("unknown class %q", get("class"))
	}
	subjectID, ok := subjects[strings.ToLower(get("subject"))]
	if !ok {
		return nil, fmt.Errorf("unknown subject %q", get("subject"))
	}

	exam := &model.ExamModel{
		ExamSchoolID:  schoolID,
		ExamClassID:   classID,
		ExamSubjectID: subjectID,
		ExamTerm:      term,
		ExamTitle:     title,
		ExamMaxScore:  100,
	}
	if d := get("date"); d != "" {
		t, err := time.Parse(examDateLayout, d)
		if err != nil {
			return nil, fmt.Errorf("date %q is not YYYY-MM-DD", d)
		}
		exam.ExamDate = &t
	}
	if ms := get("max score"); ms != "" {
		n, err := strconv.Atoi(ms)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("max score %q is not a positive number", ms)
		}
		exam.ExamMaxScore = n
	}
	return exam, nil
}
