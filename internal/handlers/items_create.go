package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sbilibin2017/secondchance-backend/internal/logger"
	"github.com/sbilibin2017/secondchance-backend/internal/models"
	"github.com/sbilibin2017/secondchance-backend/internal/services"
)

const maxUploadBytes = 32 << 20

// ItemCreator defines the interface that the item creation service must implement.
type ItemCreator interface {
	Create(ctx context.Context, item models.ItemDB) (models.ItemDB, error)
}

// NewCreateItemHandler returns an HTTP handler that creates a catalog item
// from a multipart form. An optional "file" part is stored under uploadDir
// with its original filename.
// @Summary Create an item
// @Description Assigns the next sequential id, stamps date_added, stores the optional image, and inserts the item.
// @Tags items
// @Accept mpfd
// @Produce json
// @Param file formData file false "Item image"
// @Param name formData string true "Item name"
// @Param category formData string false "Category"
// @Param condition formData string false "Condition"
// @Param description formData string false "Description"
// @Param age_days formData int false "Age in days"
// @Success 201 {object} models.ItemDB "Inserted item"
// @Failure 400 {object} handlers.ItemErrorResponse "Empty payload"
// @Failure 500 {object} handlers.ItemErrorResponse "No items in the collection / internal error"
// @Router /secondchance/items [post]
func NewCreateItemHandler(svc ItemCreator, uploadDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ItemErrorResponse{
				Message: "secondChanceItem data is required",
			})
			return
		}

		item := models.ItemDB{
			Name:        r.FormValue("name"),
			Category:    r.FormValue("category"),
			Condition:   r.FormValue("condition"),
			Description: r.FormValue("description"),
		}
		if v := r.FormValue("age_days"); v != "" {
			ageDays, err := strconv.Atoi(v)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ItemErrorResponse{
					Message: "age_days must be a number",
				})
				return
			}
			item.AgeDays = ageDays
			item.AgeYears = services.AgeYears(ageDays)
		}

		if filename, err := saveUpload(r, uploadDir); err != nil {
			logger.Log.Errorw("failed to store uploaded file", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ItemErrorResponse{
				Message: "Internal server error",
			})
			return
		} else if filename != "" {
			item.Image = "/images/" + filename
		}

		created, err := svc.Create(r.Context(), item)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyPayload):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ItemErrorResponse{
					Message: "secondChanceItem data is required",
				})
			case errors.Is(err, services.ErrNoItems):
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ItemErrorResponse{
					Message: "No items found in the collection",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ItemErrorResponse{
					Message: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// saveUpload stores the optional "file" part under uploadDir using its
// original filename and returns that filename, or "" when no file was sent.
// Collisions overwrite; the upload directory is a shared public space.
func saveUpload(r *http.Request, uploadDir string) (string, error) {
	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer file.Close()

	filename := filepath.Base(header.Filename)
	dst, err := os.Create(filepath.Join(uploadDir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return filename, nil
}
