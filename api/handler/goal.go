package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskdesk/backend/api/transport"
	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/pkg/httpcontext"
	"github.com/taskdesk/backend/repository"
	goalUC "github.com/taskdesk/backend/usecase/goal"
)

type GoalHandler struct {
	baseHandler
	uc *goalUC.UseCase
}

func NewGoalHandler(uc *goalUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *GoalHandler {
	return &GoalHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List goals
// @Tags goals
// @Router /api/private/goals [get]
func (h *GoalHandler) List(ctx *fasthttp.RequestCtx) {
	filter, err := parseGoalFilter(ctx.QueryArgs())
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	goals, err := h.uc.List(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondList(ctx, goals, len(goals))
}

// @Summary Get goal
// @Tags goals
// @Router /api/private/goals/{id} [get]
func (h *GoalHandler) Get(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	goal, err := h.uc.Get(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, goal)
}

// @Summary Create goal
// @Tags goals
// @Router /api/private/goals [post]
func (h *GoalHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.CreateGoalRequest
	if !h.decodeJSON(ctx, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(ctx, err)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, req.Goal())
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update goal
// @Tags goals
// @Router /api/private/goals/{id} [put]
func (h *GoalHandler) Update(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	var req transport.UpdateGoalRequest
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

// @Summary Delete goal with its projects and their tasks
// @Tags goals
// @Router /api/private/goals/{id} [delete]
func (h *GoalHandler) Delete(ctx *fasthttp.RequestCtx) {
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

// @Summary Achieve goal
// @Tags goals
// @Router /api/private/goals/{id}/achieve [post]
func (h *GoalHandler) Achieve(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	goal, err := h.uc.Achieve(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, goal)
}

// @Summary Restore achieved goal
// @Tags goals
// @Router /api/private/goals/{id}/restore [post]
func (h *GoalHandler) Restore(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	goal, err := h.uc.Restore(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, goal)
}

func parseGoalFilter(args *fasthttp.Args) (repository.GoalFilter, error) {
	var filter repository.GoalFilter
	var err error

	if filter.Achieved, err = queryBool(args, "achieved"); err != nil {
		return filter, err
	}
	if filter.Year, err = queryInt(args, "year"); err != nil {
		return filter, err
	}
	if yearMin := time.Now().Year(); filter.Year != nil && *filter.Year < yearMin {
		return filter, domain.BadRequest("year",
			fmt.Sprintf("ensure this value is greater than or equal to %d", yearMin))
	}
	if filter.Month, err = queryInt(args, "month"); err != nil {
		return filter, err
	}
	if filter.Month != nil {
		if *filter.Month < 1 {
			return filter, domain.BadRequest("month", "ensure this value is greater than or equal to 1")
		}
		if *filter.Month > 12 {
			return filter, domain.BadRequest("month", "ensure this value is less than or equal to 12")
		}
		if filter.Year == nil {
			return filter, domain.ErrMonthRequiresYear
		}
	}
	filter.Search = string(args.Peek("search"))
	return filter, nil
}
