package controller

import (
	"io"
	"strconv"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"

	"github.com/finanzas-pro/backend/internal/application/usecase/dashboard"
	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
	"github.com/finanzas-pro/backend/internal/integration/entrypoint/dto"
)

// StreamController pushes a fresh dashboard summary whenever the data changes.
type StreamController struct {
	streamUseCase *dashboard.StreamSummaryUseCase
}

// NewStreamController creates a new stream controller instance.
func NewStreamController(streamUseCase *dashboard.StreamSummaryUseCase) *StreamController {
	return &StreamController{
		streamUseCase: streamUseCase,
	}
}

// Stream handles GET /stream requests as server-sent events. Each event is
// named "summary" and carries the snapshot version as its id.
func (c *StreamController) Stream(ctx *gin.Context) {
	updates, err := c.streamUseCase.Execute(ctx.Request.Context(), dashboard.GetSummaryInput{
		Range: rangeFromQuery(ctx),
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeDashboardInternalError))
		return
	}

	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("X-Accel-Buffering", "no")

	ctx.Stream(func(io.Writer) bool {
		update, ok := <-updates
		if !ok {
			return false
		}
		ctx.Render(-1, sse.Event{
			Event: "summary",
			Id:    strconv.FormatUint(update.Version, 10),
			Data:  dto.ToSummaryResponse(&update.Metrics),
		})
		return true
	})
}
