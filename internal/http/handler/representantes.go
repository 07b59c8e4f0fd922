package handler

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"representantes/internal/model"
	"representantes/internal/service"
)

const defaultPerPage = 10

// RepresentanteRequest is the body accepted by create and update.
type RepresentanteRequest struct {
	Nombre string `json:"nombre" validate:"required,max=255"`
	Email  string `json:"email" validate:"required,email,max=255"`
}

// PageResponse wraps one page of representantes.
type PageResponse struct {
	Data      []model.Representante `json:"data"`
	Page      int                   `json:"page"`
	PerPage   int                   `json:"perPage"`
	CreatedAt time.Time             `json:"createdAt"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ListRepresentantes godoc
// @Summary List representantes
// @Description Without page/perPage returns every representante; with either returns one page (perPage capped at 100).
// @Tags representantes
// @Produce json
// @Param page query int false "page number, from 0"
// @Param perPage query int false "page size" default(10)
// @Success 200 {object} PageResponse
// @Failure 400 {object} errorPayload
// @Router /api/representantes [get]
func ListRepresentantes(svc service.RepresentanteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pageStr, perPageStr := c.Query("page"), c.Query("perPage")
		if pageStr == "" && perPageStr == "" {
			items, err := svc.FindAll(c.UserContext())
			if err != nil {
				return writeServiceError(c, err)
			}
			return c.JSON(nonNil(items))
		}

		page, err := queryInt(pageStr, 0)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGE", "invalid page")
		}
		perPage, err := queryInt(perPageStr, defaultPerPage)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGE", "invalid perPage")
		}

		items, err := svc.FindAllPageable(c.UserContext(), page, perPage)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(PageResponse{
			Data:      nonNil(items),
			Page:      page,
			PerPage:   perPage,
			CreatedAt: time.Now().UTC(),
		})
	}
}

// FindRepresentantesByNombre godoc
// @Summary Find representantes by exact nombre
// @Tags representantes
// @Produce json
// @Param nombre query string true "nombre"
// @Success 200 {array} model.Representante
// @Failure 400 {object} errorPayload
// @Router /api/representantes/find [get]
func FindRepresentantesByNombre(svc service.RepresentanteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		nombre := c.Query("nombre")
		if nombre == "" {
			return writeError(c, fiber.StatusBadRequest, "NOMBRE_REQUIRED", "nombre is required")
		}
		items, err := svc.FindByNombre(c.UserContext(), nombre)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(nonNil(items))
	}
}

// GetRepresentante godoc
// @Summary Get a representante
// @Tags representantes
// @Produce json
// @Param id path string true "representante id (uuid)"
// @Success 200 {object} model.Representante
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/representantes/{id} [get]
func GetRepresentante(svc service.RepresentanteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		r, err := svc.FindByID(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(r)
	}
}

// CreateRepresentante godoc
// @Summary Create a representante
// @Tags representantes
// @Accept json
// @Produce json
// @Param body body RepresentanteRequest true "representante"
// @Success 201 {object} model.Representante
// @Failure 400 {object} errorPayload
// @Router /api/representantes [post]
func CreateRepresentante(svc service.RepresentanteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := bindRequest(c)
		if err != nil {
			return writeServiceError(c, err)
		}
		r, err := svc.Save(c.UserContext(), &model.Representante{Nombre: req.Nombre, Email: req.Email})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(r)
	}
}

// UpdateRepresentante godoc
// @Summary Update a representante
// @Description The id in the path identifies the row; the stored id never changes.
// @Tags representantes
// @Accept json
// @Produce json
// @Param id path string true "representante id (uuid)"
// @Param body body RepresentanteRequest true "representante"
// @Success 200 {object} model.Representante
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/representantes/{id} [put]
func UpdateRepresentante(svc service.RepresentanteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		req, err := bindRequest(c)
		if err != nil {
			return writeServiceError(c, err)
		}
		r, err := svc.Update(c.UserContext(), id, &model.Representante{Nombre: req.Nombre, Email: req.Email})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(r)
	}
}

// DeleteRepresentante godoc
// @Summary Delete a representante
// @Tags representantes
// @Param id path string true "representante id (uuid)"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/representantes/{id} [delete]
func DeleteRepresentante(svc service.RepresentanteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if _, err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func pathID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	return id, err == nil
}

// bindRequest parses and validates the body.
func bindRequest(c *fiber.Ctx) (*RepresentanteRequest, error) {
	var req RepresentanteRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, &badRequest{code: "INVALID_BODY", message: "invalid request body"}
	}
	req.Nombre = strings.TrimSpace(req.Nombre)
	req.Email = strings.TrimSpace(req.Email)
	if err := validate.Struct(req); err != nil {
		return nil, &badRequest{code: "VALIDATION_ERROR", message: validationMessage(err)}
	}
	return &req, nil
}

func validationMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return "invalid request body"
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		parts = append(parts, fe.Field()+": "+fe.Tag())
	}
	return strings.Join(parts, "; ")
}

func queryInt(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

func nonNil(items []model.Representante) []model.Representante {
	if items == nil {
		return []model.Representante{}
	}
	return items
}
