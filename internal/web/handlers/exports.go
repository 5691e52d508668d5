package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kozaktomas/journal-press/internal/config"
	"github.com/kozaktomas/journal-press/internal/export"
	"github.com/kozaktomas/journal-press/internal/layout"
	"github.com/kozaktomas/journal-press/internal/store"
)

// ExportsHandler handles export job endpoints
type ExportsHandler struct {
	config     *config.Config
	store      *store.Store
	jobManager *JobManager
}

// NewExportsHandler creates a new exports handler
func NewExportsHandler(cfg *config.Config, st *store.Store, jm *JobManager) *ExportsHandler {
	return &ExportsHandler{
		config:     cfg,
		store:      st,
		jobManager: jm,
	}
}

// StartRequest represents an export start request
type StartRequest struct {
	Notebook string `json:"notebook"`
	PageSize string `json:"page_size"`
}

// Start starts a new export job
func (h *ExportsHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	if req.Notebook == "" {
		respondError(w, http.StatusBadRequest, "notebook is required")
		return
	}
	if req.PageSize == "" {
		req.PageSize = h.config.Export.PageSize
	}

	geo, err := h.config.GeometryFor(req.PageSize)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	nb, err := h.store.LoadNotebook(req.Notebook)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "notebook not found")
			return
		}
		respondError(w, http.StatusBadRequest, "loading notebook: "+err.Error())
		return
	}

	jobID := uuid.New().String()
	job := h.jobManager.CreateJob(jobID, nb.Slug, nb.Name, req.PageSize)

	go h.runExportJob(job, nb, geo)

	respondJSON(w, http.StatusAccepted, map[string]string{
		"job_id":   jobID,
		"notebook": nb.Slug,
		"status":   string(JobStatusPending),
	})
}

// Status returns the status of an export job
func (h *ExportsHandler) Status(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobId")
	if jobID == "" {
		respondError(w, http.StatusBadRequest, "missing job ID")
		return
	}

	job := h.jobManager.GetJob(jobID)
	if job == nil {
		respondError(w, http.StatusNotFound, "job not found")
		return
	}

	respondJSON(w, http.StatusOK, job)
}

// Events streams job events via SSE
func (h *ExportsHandler) Events(w http.ResponseWriter, r *http.Request) {
	streamSSEEvents(w, r,
		func(id string) SSEJob {
			job := h.jobManager.GetJob(id)
			if job == nil {
				return nil
			}
			return job
		},
		func(job SSEJob) any {
			return job
		},
	)
}

// Cancel cancels an export job
func (h *ExportsHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobId")
	if jobID == "" {
		respondError(w, http.StatusBadRequest, "missing job ID")
		return
	}

	job := h.jobManager.GetJob(jobID)
	if job == nil {
		respondError(w, http.StatusNotFound, "job not found")
		return
	}

	job.Cancel()
	respondJSON(w, http.StatusOK, map[string]bool{"cancelled": true})
}

// Download serves the published PDF of a completed export job
func (h *ExportsHandler) Download(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobId")
	if jobID == "" {
		respondError(w, http.StatusBadRequest, "missing job ID")
		return
	}

	job := h.jobManager.GetJob(jobID)
	if job == nil {
		respondError(w, http.StatusNotFound, "job not found")
		return
	}

	path := job.OutputPath()
	if path == "" {
		respondError(w, http.StatusConflict, "export not completed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", job.Notebook+".pdf"))
	http.ServeFile(w, r, path)
}

// runExportJob runs the export in the background
func (h *ExportsHandler) runExportJob(job *ExportJob, nb *store.Notebook, geo layout.Geometry) {
	ctx, cancel := context.WithCancel(context.Background())
	job.cancel = cancel
	defer cancel()

	job.mu.Lock()
	job.Status = JobStatusRunning
	job.TotalEntries = len(nb.Logs)
	job.mu.Unlock()
	job.SendEvent(JobEvent{Type: "started", Message: "Export job started"})

	entries := export.NotebookEntries(h.store, nb)
	dest := filepath.Join(h.config.Export.OutputDir, fmt.Sprintf("%s-%s.pdf", nb.Slug, job.ID))

	res, err := export.Run(ctx, export.Request{
		Title:    nb.Name,
		Entries:  entries,
		Dest:     dest,
		Geometry: geo,
		Progress: func(fraction float64, message string) {
			exported := int(fraction * float64(len(entries)))
			job.mu.Lock()
			job.ExportedEntries = exported
			job.Progress = int(fraction * 100)
			job.mu.Unlock()
			job.SendEvent(JobEvent{
				Type: "progress",
				Data: map[string]any{
					"message":          message,
					"exported_entries": exported,
					"total_entries":    len(entries),
					"progress":         int(fraction * 100),
				},
			})
		},
	})

	if err != nil {
		if errors.Is(err, export.ErrCancelled) {
			// Status was already set by Cancel, just record the time.
			now := time.Now()
			job.mu.Lock()
			job.CompletedAt = &now
			job.mu.Unlock()
			log.Printf("Export job %s cancelled", sanitizeForLog(job.ID))
			return
		}
		h.failJob(job, err.Error())
		return
	}

	now := time.Now()
	job.mu.Lock()
	job.Status = JobStatusCompleted
	job.Progress = 100
	job.ExportedEntries = len(entries)
	job.CompletedAt = &now
	job.outputPath = res.Path
	job.Result = &ExportJobResult{
		PageCount: res.PageCount,
		Warnings:  res.Report.Warnings,
		Trace:     res.Report.Pages,
	}
	job.mu.Unlock()

	job.SendEvent(JobEvent{
		Type: "completed",
		Data: map[string]any{"page_count": res.PageCount, "warnings": len(res.Report.Warnings)},
	})
}

func (h *ExportsHandler) failJob(job *ExportJob, message string) {
	now := time.Now()
	job.mu.Lock()
	job.Status = JobStatusFailed
	job.Error = message
	job.CompletedAt = &now
	job.mu.Unlock()
	job.SendEvent(JobEvent{Type: "failed", Message: message})
	log.Printf("WARNING: export job %s failed: %s", sanitizeForLog(job.ID), sanitizeForLog(message))
}
