package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/exams/dto"
	"schoolhub_backend/internals/features/school/exams/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
	maxImportBytes = 5 << 20
	xlsxMIME       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ExamController struct {
	Service *service.ExamService
}

func NewExamController(svc *service.ExamService) *ExamController {
	return &ExamController{Service: svc}
}

func (ctrl *ExamController) filterFromQuery(c *fiber.Ctx, schoolID uuid.UUID) (service.ListFilter, map[string][]string) {
	var q dto.ExamListQuery
	if err := c.QueryParser(&q); err != nil {
		return service.ListFilter{}, map[string][]string{"_": {"invalid query"}}
	}
	if err := helper.Validate.Struct(q); err != nil {
		return service.ListFilter{}, helper.ValidationErrorsToMap(err)
	}

	f := service.ListFilter{SchoolID: schoolID}
	if q.Term != "" {
		f.Term, _ = constants.ParseTerm(q.Term)
	}
	if q.ClassID != "" {
		id := uuid.MustParse(q.ClassID)
		f.ClassID = &id
	}
	return f, nil
}

// GET /api/admin/exams?term=&class_id=&page=&per_page=
func (ctrl *ExamController) List(c *fiber.Ctx) error {
	admin := helperAuth.GetAdmin(c)
	f, verrs := ctrl.filterFromQuery(c, admin.AdminSchoolID)
	if verrs != nil {
		return helper.JsonValidationError(c, verrs)
	}

	p := helper.ResolvePaging(c, defaultPerPage, maxPerPage)
	f.Offset, f.Limit = p.Offset, p.Limit

	rows, total, err := ctrl.Service.List(c.UserContext(), f)
	if err != nil {
		log.Error().Err(err).Msg("list exams")
		return helper.JsonError(c, fiber.StatusInternalServerError, constants.MsgInternalServerError)
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows)))
}

// POST /api/admin/exams
func (ctrl *ExamController) Create(c *fiber.Ctx) error {
	admin := helperAuth.GetAdmin(c)

	var req dto.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	exam := req.ToModel(admin.AdminSchoolID)
	err := ctrl.Service.Create(c.UserContext(), exam)
	switch {
	case errors.Is(err, service.ErrDuplicateExam):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrClassNotInSchool), errors.Is(err, service.ErrSubjectNotInSchool):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case err != nil:
		log.Error().Err(err).Msg("create exam")
		return helper.JsonError(c, fiber.StatusInternalServerError, constants.MsgInternalServerError)
	}
	return helper.JsonCreated(c, "Exam created", dto.FromModel(exam))
}

// DELETE /api/admin/exams/:id
func (ctrl *ExamController) Delete(c *fiber.Ctx) error {
	admin := helperAuth.GetAdmin(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam id")
	}

	err = ctrl.Service.Delete(c.UserContext(), admin.AdminSchoolID, id)
	switch {
	case errors.Is(err, service.ErrExamNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
	case err != nil:
		log.Error().Err(err).Msg("delete exam")
		return helper.JsonError(c, fiber.StatusInternalServerError, constants.MsgInternalServerError)
	}
	return helper.JsonDeleted(c, "Exam deleted", fiber.Map{"exam_id": id})
}

// GET /api/admin/exams/export?term=&class_id=
func (ctrl *ExamController) Export(c *fiber.Ctx) error {
	admin := helperAuth.GetAdmin(c)
	f, verrs := ctrl.filterFromQuery(c, admin.AdminSchoolID)
	if verrs != nil {
		return helper.JsonValidationError(c, verrs)
	}

	buf, err := ctrl.Service.ExportXLSX(c.UserContext(), f)
	if err != nil {
		log.Error().Err(err).Msg("export exams")
		return helper.JsonError(c, fiber.StatusInternalServerError, constants.MsgInternalServerError)
	}

	name := "exams"
	if f.Term != "" {
		name += "-" + string(f.Term)
	}
	name += "-" + time.Now().UTC().Format("20060102") + ".xlsx"

	c.Set(fiber.HeaderContentType, xlsxMIME)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
	return c.Send(buf.Bytes())
}

// POST /api/admin/exams/import (multipart, field "file")
func (ctrl *ExamController) Import(c *fiber.Ctx) error {
	admin := helperAuth.GetAdmin(c)

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file is required")
	}
	if fh.Size > maxImportBytes {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "file is too large")
	}
	f, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "cannot read file")
	}
	defer f.Close()

	report, err := ctrl.Service.ImportXLSX(c.UserContext(), admin.AdminSchoolID, f)
	switch {
	case errors.Is(err, service.ErrInvalidSheet):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		log.Error().Err(err).Msg("import exams")
		return helper.JsonError(c, fiber.StatusInternalServerError, constants.MsgInternalServerError)
	}
	return helper.JsonOK(c, "Import finished", report)
}
