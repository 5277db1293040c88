package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/databases/dbtest"
	classModel "schoolhub_backend/internals/features/school/classes/model"
	model "schoolhub_backend/internals/features/school/exams/model"
	subjectModel "schoolhub_backend/internals/features/school/subjects/model"
)

type fixture struct {
	db      *gorm.DB
	svc     *ExamService
	school  uuid.UUID
	class   classModel.ClassModel
	subject subjectModel.SubjectModel
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.Open(t, &classModel.ClassModel{}, &subjectModel.SubjectModel{}, &model.ExamModel{})
	f := &fixture{db: db, svc: NewExamService(db), school: uuid.New()}

	f.class = classModel.ClassModel{ClassSchoolID: f.school, ClassName: "8B"}
	require.NoError(t, db.Create(&f.class).Error)
	code := "MTK"
	f.subject = subjectModel.SubjectModel{SubjectSchoolID: f.school, SubjectName: "Mathematics", SubjectCode: &code}
	require.NoError(t, db.Create(&f.subject).Error)
	return f
}

func (f *fixture) exam(title string, term constants.Term) *model.ExamModel {
	return &model.ExamModel{
		ExamSchoolID: f.school, ExamClassID: f.class.ClassID, ExamSubjectID: f.subject.SubjectID,
		ExamTerm: term, ExamTitle: title, ExamMaxScore: 100,
	}
}

func TestCreate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	e := f.exam("Midterm", constants.TermFirst)
	require.NoError(t, f.svc.Create(ctx, e))
	assert.NotEqual(t, uuid.Nil, e.ExamID)
	require.NotNil(t, e.Class)
	assert.Equal(t, "8B", e.Class.ClassName)

	err := f.svc.Create(ctx, f.exam("Midterm", constants.TermFirst))
	assert.ErrorIs(t, err, ErrDuplicateExam)

	// same title in another term is fine
	require.NoError(t, f.svc.Create(ctx, f.exam("Midterm", constants.TermSecond)))

	foreign := f.exam("Quiz", constants.TermFirst)
	foreign.ExamSchoolID = uuid.New()
	assert.ErrorIs(t, f.svc.Create(ctx, foreign), ErrClassNotInSchool)

	wrongSubject := f.exam("Quiz", constants.TermFirst)
	wrongSubject.ExamSubjectID = uuid.New()
	assert.ErrorIs(t, f.svc.Create(ctx, wrongSubject), ErrSubjectNotInSchool)
}

func TestListAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, term := range constants.AllTerms {
		require.NoError(t, f.svc.Create(ctx, f.exam("Exam "+string(term), term)))
	}
	require.NoError(t, f.svc.Create(ctx, f.exam("Retake", constants.TermFinal)))

	rows, total, err := f.svc.List(ctx, ListFilter{SchoolID: f.school})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, rows, 5)

	rows, total, err = f.svc.List(ctx, ListFilter{SchoolID: f.school, Term: constants.TermFinal, Limit: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, rows, 1)

	_, total, err = f.svc.List(ctx, ListFilter{SchoolID: uuid.New()})
	require.NoError(t, err)
	assert.Zero(t, total)

	require.NoError(t, f.svc.Delete(ctx, f.school, rows[0].ExamID))
	assert.ErrorIs(t, f.svc.Delete(ctx, f.school, rows[0].ExamID), ErrExamNotFound)
	assert.ErrorIs(t, f.svc.Delete(ctx, uuid.New(), uuid.New()), ErrExamNotFound)

	_, total, err = f.svc.List(ctx, ListFilter{SchoolID: f.school, Term: constants.TermFinal})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestExportXLSX(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	e := f.exam("Algebra", constants.TermFirst)
	e.ExamDate = &date
	require.NoError(t, f.svc.Create(ctx, e))
	require.NoError(t, f.svc.Create(ctx, f.exam("Geometry", constants.TermFirst)))
	require.NoError(t, f.svc.Create(ctx, f.exam("Final", constants.TermFinal)))

	buf, err := f.svc.ExportXLSX(ctx, ListFilter{SchoolID: f.school, Term: constants.TermFirst, Limit: 1})
	require.NoError(t, err)

	wb, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer wb.Close()
	rows, err := wb.GetRows("Sheet1")
	require.NoError(t, err)

	require.Len(t, rows, 3, "header plus one row per exam")
	assert.Equal(t, ExamSheetHeader, rows[0])
	assert.Equal(t, []string{"1", "Algebra", "8B", "Mathematics", "FIRST", "2025-03-14", "100"}, rows[1])
	assert.Equal(t, "Geometry", rows[2][1])
}

func TestImportXLSX(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	wb := excelize.NewFile()
	sheet := [][]any{
		{"Title", "Class", "Subject", "Term", "Date", "Max Score"},
		{"Weekly quiz", "8b", "MTK", "second", "2025-05-02", 50},
		{"Weekly quiz", "8B", "Mathematics", "SECOND", "", ""},
		{"Lab", "9Z", "Mathematics", "FIRST", "", ""},
		{"Essay", "8B", "Mathematics", "SUMMER", "", ""},
	}
	for i, r := range sheet {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := r
		require.NoError(t, wb.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := wb.WriteToBuffer()
	require.NoError(t, err)

	report, err := f.svc.ImportXLSX(ctx, f.school, buf)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 3, report.Skipped)
	assert.Len(t, report.Errors, 3)

	rows, _, err := f.svc.List(ctx, ListFilter{SchoolID: f.school})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 50, rows[0].ExamMaxScore)
	assert.Equal(t, constants.TermSecond, rows[0].ExamTerm)
}

func TestImportXLSX_RejectsNonWorkbook(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.ImportXLSX(context.Background(), f.school, strings.NewReader("plain text"))
	assert.ErrorIs(t, err, ErrInvalidSheet)
}
