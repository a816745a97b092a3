package handler

import (
	"log/slog"
	"net/http"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/structura/backend/internal/storage"
)

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadHandler handles admin image uploads for project and service
// galleries.
type UploadHandler struct {
	storage  storage.Storage
	maxBytes int64
}

func NewUploadHandler(store storage.Storage, maxBytes int64) *UploadHandler {
	return &UploadHandler{storage: store, maxBytes: maxBytes}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload handles POST /api/uploads. Content type is taken from the part
// header and checked against the image allow-list; keys are uuid-based so
// uploads never collide or overwrite.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		respondFail(w, http.StatusBadRequest, "file too large or malformed form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondFail(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	if header.Size > h.maxBytes {
		respondFail(w, http.StatusBadRequest, "file too large")
		return
	}

	ct := header.Header.Get("Content-Type")
	ext, ok := allowedContentTypes[ct]
	if !ok {
		respondFail(w, http.StatusBadRequest, "only jpeg, png and webp images are accepted")
		return
	}

	key := path.Join(time.Now().UTC().Format("2006/01"), uuid.NewString()+ext)
	url, err := h.storage.Save(r.Context(), key, file, ct)
	if err != nil {
		slog.Error("upload failed", "error", err, "key", key)
		respondFail(w, http.StatusInternalServerError, "upload failed")
		return
	}

	respondData(w, http.StatusCreated, uploadResponse{URL: url})
}
