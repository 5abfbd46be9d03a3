package planapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-pathfinder/api/identity"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlanController serves planning requests for authenticated operators.
type PlanController struct {
	planner i.Planner
	logger  i.Logger
}

// NewPlanController initializes a PlanController.
func NewPlanController(p i.Planner, l i.Logger) (*PlanController, error) {
	if p == nil || l == nil {
		return nil, errors.New("planner and logger are required")
	}
	return &PlanController{
		planner: p,
		logger:  l,
	}, nil
}

// RegisterPublic registers public routes.
func (pc *PlanController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (pc *PlanController) RegisterProtected(route *gin.RouterGroup) {
	plans := route.Group("/plans")
	{
		plans.POST("", pc.plan)
		plans.GET("", pc.history)
		plans.GET("/:ID", pc.planByID)
	}
}

// plan solves a grid and stores the resulting plan.
func (pc *PlanController) plan(ctx *gin.Context) {
	ownerID, ok := identity.OperatorID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var request i.PlanRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := pc.planner.Plan(ctx.Request.Context(), ownerID, request)
	if err != nil {
		if errors.Is(err, service.ErrInvalidProblem) {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		pc.logger.Error("Planning failed: " + err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while planning"})
		return
	}

	ctx.JSON(http.StatusCreated, toResponse(plan))
}

// planByID retrieves one of the operator's plans.
func (pc *PlanController) planByID(ctx *gin.Context) {
	ownerID, ok := identity.OperatorID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	plan, err := pc.planner.ByID(ctx.Request.Context(), ownerID, ID)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		pc.logger.Error("Loading plan failed: " + err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading plan"})
		return
	}

	ctx.JSON(http.StatusOK, toResponse(plan))
}

// history lists the operator's most recent plans.
func (pc *PlanController) history(ctx *gin.Context) {
	ownerID, ok := identity.OperatorID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var limit int64
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	plans, err := pc.planner.ByOwner(ctx.Request.Context(), ownerID, limit)
	if err != nil {
		pc.logger.Error("Listing plans failed: " + err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while listing plans"})
		return
	}

	response := &HistoryResponse{Plans: make([]*PlanResponse, 0, len(plans))}
	for _, p := range plans {
		response.Plans = append(response.Plans, toResponse(p))
	}
	ctx.JSON(http.StatusOK, response)
}
