package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskdesk/backend/api/transport"
	"github.com/taskdesk/backend/pkg/httpcontext"
	"github.com/taskdesk/backend/repository"
	taskUC "github.com/taskdesk/backend/usecase/task"
)

type TaskHandler struct {
	baseHandler
	uc         *taskUC.UseCase
	maxPerPage int
}

func NewTaskHandler(uc *taskUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger, maxPerPage int) *TaskHandler {
	if maxPerPage <= 0 {
		maxPerPage = 50
	}
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
		maxPerPage:  maxPerPage,
	}
}

// @Summary List tasks
// @Tags tasks
// @Router /api/private/tasks [get]
func (h *TaskHandler) List(ctx *fasthttp.RequestCtx) {
	filter, err := h.parseFilter(ctx.QueryArgs())
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.List(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondList(ctx, tasks, len(tasks))
}

// @Summary Tasks created or completed today
// @Tags tasks
// @Router /api/private/tasks/today [get]
func (h *TaskHandler) Today(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.Today(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondList(ctx, tasks, len(tasks))
}

// @Summary Get task
// @Tags tasks
// @Router /api/private/tasks/{id} [get]
func (h *TaskHandler) Get(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.Get(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

// @Summary Create task
// @Tags tasks
// @Router /api/private/tasks [post]
func (h *TaskHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.CreateTaskRequest
	if !h.decodeJSON(ctx, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(ctx, err)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, req.Task())
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update task
// @Tags tasks
// @Router /api/private/tasks/{id} [put]
func (h *TaskHandler) Update(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	var req transport.UpdateTaskRequest
	if !h.decodeJSON(ctx, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(ctx, err)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.Update(stdCtx, id, req.Patch())
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete task
// @Tags tasks
// @Router /api/private/tasks/{id} [delete]
func (h *TaskHandler) Delete(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondNoContent(ctx)
}

// @Summary Complete task
// @Tags tasks
// @Router /api/private/tasks/{id}/complete [post]
func (h *TaskHandler) Complete(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.Complete(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

// @Summary Reopen task
// @Tags tasks
// @Router /api/private/tasks/{id}/reopen [post]
func (h *TaskHandler) Reopen(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.Reopen(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

func (h *TaskHandler) parseFilter(args *fasthttp.Args) (repository.TaskFilter, error) {
	var filter repository.TaskFilter
	var err error

	if filter.Completed, err = queryBool(args, "completed"); err != nil {
		return filter, err
	}
	if filter.Decisive, err = queryBool(args, "decisive"); err != nil {
		return filter, err
	}
	filter.Search = string(args.Peek("search"))
	if filter.Space, err = querySpace(args, "space"); err != nil {
		return filter, err
	}
	if filter.ProjectID, err = queryInt64(args, "project_id"); err != nil {
		return filter, err
	}
	inbox, err := queryBool(args, "inbox")
	if err != nil {
		return filter, err
	}
	filter.Inbox = inbox != nil && *inbox
	if filter.DueFrom, err = queryDate(args, "due_from"); err != nil {
		return filter, err
	}
	if filter.DueTo, err = queryDate(args, "due_to"); err != nil {
		return filter, err
	}
	if filter.Limit, err = queryLimit(args, h.maxPerPage); err != nil {
		return filter, err
	}
	if filter.Offset, err = queryOffset(args); err != nil {
		return filter, err
	}
	return filter, nil
}
