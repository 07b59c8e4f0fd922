package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"representantes/internal/service"
)

// UploadFile godoc
// @Summary Upload a file (multipart field "file")
// @Tags storage
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "file"
// @Success 201 {object} service.StoredFile
// @Failure 400 {object} errorPayload
// @Router /api/storage [post]
func UploadFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		stored, err := svc.Upload(c.UserContext(), f, fh.Filename, ct, fh.Size)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(stored)
	}
}

// GetFile godoc
// @Summary Download a stored file
// @Tags storage
// @Produce octet-stream
// @Param name path string true "stored name"
// @Success 200 {file} file
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/storage/{name} [get]
func GetFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, info, err := svc.Get(c.UserContext(), c.Params("name"))
		if err != nil {
			return writeServiceError(c, err)
		}
		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		c.Set(fiber.HeaderContentLength, strconv.FormatInt(info.Size, 10))
		// the body stream is closed once fully sent
		return c.SendStream(rc, int(info.Size))
	}
}

// DeleteFile godoc
// @Summary Delete a stored file
// @Tags storage
// @Param name path string true "stored name"
// @Success 204
// @Failure 400 {object} errorPayload
// @Router /api/storage/{name} [delete]
func DeleteFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("name")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
