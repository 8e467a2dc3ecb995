package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/logger"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
)

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

func validateTitle(title string) error {
	if title == "" {
		return errors.New("title must not be empty")
	}
	if len(title) > domain.TitleMaxLen {
		return errors.New("title must be at most 200 characters")
	}
	return nil
}

func validateDescription(desc string) error {
	if len(desc) > domain.DescriptionMaxLen {
		return errors.New("description must be at most 1000 characters")
	}
	return nil
}

func (h *Handler) CreateTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
		return
	}

	var req createTaskRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}
	if err := validateTitle(req.Title); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if err := validateDescription(req.Description); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	now := time.Now().UTC()
	task := &domain.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.Tasks.Create(c.Request.Context(), task); err != nil {
		logger.Error("create task failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *Handler) ListTasks(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
		return
	}

	filter, ok := domain.ParseTaskFilter(c.Query("status_filter"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "status_filter must be one of all, pending, completed"})
		return
	}

	tasks, err := h.Tasks.List(c.Request.Context(), userID, filter)
	if err != nil {
		logger.Error("list tasks failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) UpdateTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid task id"})
		return
	}

	var req updateTaskRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	ctx := c.Request.Context()
	task, err := h.Tasks.GetByOwner(ctx, id, userID)
	if err != nil {
		h.taskError(c, err)
		return
	}

	// Only fields present in the payload are overwritten.
	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		task.Title = *req.Title
	}
	if req.Description != nil {
		if err := validateDescription(*req.Description); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		task.Description = *req.Description
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	task.UpdatedAt = time.Now().UTC()

	if err := h.Tasks.Update(ctx, task); err != nil {
		h.taskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid task id"})
		return
	}

	if err := h.Tasks.Delete(c.Request.Context(), id, userID); err != nil {
		h.taskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

func (h *Handler) ToggleTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid task id"})
		return
	}

	task, err := h.Tasks.ToggleCompleted(c.Request.Context(), id, userID, time.Now().UTC())
	if err != nil {
		h.taskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) taskError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrTaskNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Task not found"})
		return
	}
	logger.Error("task operation failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
}
