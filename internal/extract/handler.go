package extract

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Kamaal2002/interviewai-prepbot/internal/config"
	"github.com/Kamaal2002/interviewai-prepbot/internal/userfile"
)

const maxUploadBytes = 5 << 20 // 5MB, matches the web client's limit

type ExtractResponse struct {
	Success  bool   `json:"success"`
	Text     string `json:"text"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

type Handler struct {
	service Service
	store   ObjectStore
	files   userfile.UserFileRepository
}

func NewHandler(service Service, store ObjectStore, files userfile.UserFileRepository) *Handler {
	return &Handler{service: service, store: store, files: files}
}

func allowedExtension(ext string) bool {
	switch ext {
	case ".pdf", ".txt", ".doc", ".docx":
		return true
	}
	return false
}

func (h *Handler) ExtractText(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		config.Error(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		config.Error(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtension(ext) {
		config.Error(w, http.StatusBadRequest, "Invalid file type. Only PDF, DOC, DOCX, and TXT files are allowed.")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		log.WithError(err).Error("Failed to read uploaded file")
		config.Error(w, http.StatusInternalServerError, "Failed to extract text from file")
		return
	}

	text := h.service.ExtractText(header.Filename, data)

	// When the caller identifies itself, keep the original bytes and record
	// the upload. Neither step may fail the extraction.
	if userID := r.FormValue("userId"); userID != "" {
		h.storeUpload(r, userID, header.Filename, data)
	}

	config.JSON(w, http.StatusOK, ExtractResponse{
		Success:  true,
		Text:     text,
		Filename: header.Filename,
		Size:     header.Size,
	})
}

func (h *Handler) storeUpload(r *http.Request, userID, filename string, data []byte) {
	log := config.WithContext(r.Context())

	uid, err := uuid.Parse(userID)
	if err != nil {
		log.Warnf("Skipping file storage for malformed userId %q", userID)
		return
	}

	fileType := r.FormValue("fileType")
	if fileType == "" {
		fileType = "resume"
	}

	key := ""
	if h.store != nil {
		key = fmt.Sprintf("%s/%d-%s", userID, time.Now().UnixMilli(), filename)
		if err := h.store.Put(r.Context(), key, http.DetectContentType(data), data); err != nil {
			log.WithError(err).Warn("Failed to store uploaded file")
			key = ""
		}
	}

	if h.files != nil {
		record := &userfile.UserFile{
			ID:         uuid.New(),
			UserID:     uid,
			Filename:   filename,
			FileType:   fileType,
			Size:       int64(len(data)),
			StorageKey: key,
		}
		if err := h.files.Create(record); err != nil {
			log.WithError(err).Warn("Failed to record uploaded file")
		}
	}
}
