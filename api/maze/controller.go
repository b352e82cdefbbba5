package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/vinom-maze/infrastruture/formatter"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

// MazeController serves maze operations.
type MazeController struct {
	mazeService i.MazeService
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze controller requires a maze service")
	}
	return &MazeController{
		mazeService: ms,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
		mazes.GET("/render", mc.render)
		mazes.GET("/:name", mc.get)
	}
}

// create generates a maze and stores it.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := mc.mazeService.Create(request.Width, request.Height, request.Seed)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	path, err := mc.mazeService.Save(m, request.Name, request.Format)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(path, m))
}

// render generates a maze and returns its picture without storing it.
func (mc *MazeController) render(ctx *gin.Context) {
	var query RenderQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := mc.mazeService.Create(query.Width, query.Height, query.Seed)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.String(http.StatusOK, m.String())
}

// get loads a stored maze.
func (mc *MazeController) get(ctx *gin.Context) {
	name := ctx.Params.ByName("name")
	format := ctx.DefaultQuery("format", formatter.YAMLFormat)

	m, path, err := mc.mazeService.Load(name, format)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(path, m))
}

func newMazeResponse(path string, m *maze.OrthogonalMaze) *MazeResponse {
	return &MazeResponse{
		Path:  path,
		ASCII: m.String(),
		Valid: m.IsValid(),
	}
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrMazeNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrMazeTooLarge),
		errors.Is(err, service.ErrFormatNotLoadable),
		errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, formatter.ErrUnknownFormat),
		errors.Is(err, i.ErrInvalidKey):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
