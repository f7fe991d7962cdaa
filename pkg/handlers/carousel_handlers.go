package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"frotaweb/pkg/carousel"
	"frotaweb/pkg/logger"
)

// EventTick is the server-sent event carrying the active image index.
const EventTick = "tick"

// Tick is the payload of EventTick.
type Tick struct {
	Index int `json:"index"`
}

// StreamCarousel streams the active image index of a carousel set
// @Summary Follow a carousel
// @Description Server-sent events stream. Every connection starts a rotator at index 0 and emits a "tick" event with the active index on each interval until the client disconnects.
// @Tags Site
// @Produce text/event-stream
// @Param name path string true "Carousel set" example(home-dashboard)
// @Success 200 {object} Tick
// @Failure 404 {object} models.ErrorResponse
// @Router /carousel/{name}/stream [get]
func (h *HandlerService) StreamCarousel(c *gin.Context) {
	set, err := carousel.Lookup(c.Param("name"))
	if err != nil {
		HandleError(c, err)
		return
	}

	interval := set.Interval
	if h.tickInterval > 0 {
		interval = h.tickInterval
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// the stream outlives the server write timeout; ignored where unsupported
	_ = http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{})

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	rotator := carousel.NewRotator(len(set.Images))
	c.SSEvent(EventTick, Tick{Index: rotator.Current()})
	c.Writer.Flush()

	ticks := make(chan int)
	done := make(chan error, 1)
	go func() {
		done <- rotator.Run(ctx, interval, func(index int) {
			select {
			case ticks <- index:
			case <-ctx.Done():
			}
		})
	}()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case index := <-ticks:
			c.SSEvent(EventTick, Tick{Index: index})
			return true
		}
	})

	cancel()
	if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
		logger.FromContext(c.Request.Context()).Warn("Carousel stream ended", zap.String("carousel", set.Name), zap.Error(err))
	}
}
