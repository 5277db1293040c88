package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/databases/dbtest"
	classModel "schoolhub_backend/internals/features/school/classes/model"
	examModel "schoolhub_backend/internals/features/school/exams/model"
	resultModel "schoolhub_backend/internals/features/school/results/model"
	subjectModel "schoolhub_backend/internals/features/school/subjects/model"
)

func TestSummary(t *testing.T) {
	db := dbtest.Open(t, &classModel.ClassModel{}, &subjectModel.SubjectModel{}, &examModel.ExamModel{}, &resultModel.ResultApprovalModel{})
	school, otherSchool := uuid.New(), uuid.New()

	class := classModel.ClassModel{ClassSchoolID: school, ClassName: "7A"}
	require.NoError(t, db.Create(&class).Error)
	require.NoError(t, db.Create(&classModel.ClassModel{ClassSchoolID: otherSchool, ClassName: "X"}).Error)
	subject := subjectModel.SubjectModel{SubjectSchoolID: school, SubjectName: "Biology"}
	require.NoError(t, db.Create(&subject).Error)

	for i, term := range []constants.Term{constants.TermFirst, constants.TermFirst, constants.TermFinal} {
		require.NoError(t, db.Create(&examModel.ExamModel{
			ExamSchoolID: school, ExamClassID: class.ClassID, ExamSubjectID: subject.SubjectID,
			ExamTerm: term, ExamTitle: "Exam " + string(rune('A'+i)), ExamMaxScore: 100,
		}).Error)
	}
	require.NoError(t, db.Create(&resultModel.ResultApprovalModel{
		ResultApprovalClassID: class.ClassID, ResultApprovalTerm: constants.TermFirst,
		ResultApprovalSchoolID: school, ResultApprovalIsApproved: true,
	}).Error)
	require.NoError(t, db.Create(&resultModel.ResultApprovalModel{
		ResultApprovalClassID: class.ClassID, ResultApprovalTerm: constants.TermSecond,
		ResultApprovalSchoolID: school, ResultApprovalIsApproved: false,
	}).Error)

	s, err := NewDashboardService(db).Summary(context.Background(), school)
	require.NoError(t, err)

	assert.EqualValues(t, 1, s.Classes)
	assert.EqualValues(t, 1, s.Subjects)
	assert.EqualValues(t, 3, s.Exams)
	assert.EqualValues(t, 1, s.ApprovedResults)
	assert.Equal(t, []TermCount{
		{Term: constants.TermFirst, Count: 2},
		{Term: constants.TermSecond, Count: 0},
		{Term: constants.TermThird, Count: 0},
		{Term: constants.TermFinal, Count: 1},
	}, s.ExamsPerTerm)
}
