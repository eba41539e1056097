package handler

import (
	"context"
	"errors"
	"net/http"

	"clickgate/internal/classifier"
	"clickgate/internal/encoder"
	"clickgate/internal/model"
	"clickgate/internal/mq"
	"clickgate/internal/service"
	"clickgate/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var verdictStatus = map[model.Verdict]int{
	model.VerdictSuccess:            http.StatusFound,
	model.VerdictInvalid:            http.StatusNotFound,
	model.VerdictInactive:           http.StatusForbidden,
	model.VerdictShowCounter:        http.StatusOK,
	model.VerdictExpired:            http.StatusGone,
	model.VerdictMaxTransferReached: http.StatusGone,
	model.VerdictShowPasswordPrompt: http.StatusUnauthorized,
	model.VerdictPasswordIncorrect:  http.StatusUnauthorized,
}

// StatusForVerdict returns the HTTP status a verdict is served with
func StatusForVerdict(v model.Verdict) int {
	if status, ok := verdictStatus[v]; ok {
		return status
	}
	return http.StatusNotFound
}

type passwordForm struct {
	Password string `json:"password" form:"password"`
}

// RedirectHandler resolves short codes and records successful clicks
type RedirectHandler struct {
	resolver   service.ResolverInterface
	recorder   service.RecorderInterface
	classifier *classifier.Classifier
	mqProducer mq.ProducerInterface
}

// NewRedirectHandler creates a new RedirectHandler. mqProducer may be nil.
func NewRedirectHandler(
	resolver service.ResolverInterface,
	recorder service.RecorderInterface,
	clicks *classifier.Classifier,
	mqProducer mq.ProducerInterface,
) *RedirectHandler {
	return &RedirectHandler{
		resolver:   resolver,
		recorder:   recorder,
		classifier: clicks,
		mqProducer: mqProducer,
	}
}

// Redirect handles GET and POST /:shortCode
// @Summary Resolve a short link
// @Description Redirects to the destination on SUCCESS, otherwise returns the verdict. POST carries a password.
// @Tags redirect
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param shortCode path string true "Short code"
// @Param password formData string false "Link password"
// @Success 302
// @Success 200 {object} Response{data=model.Resolution}
// @Failure 401 {object} Response{data=model.Resolution}
// @Failure 403 {object} Response{data=model.Resolution}
// @Failure 404 {object} Response{data=model.Resolution}
// @Failure 410 {object} Response{data=model.Resolution}
// @Router /{shortCode} [get]
// @Router /{shortCode} [post]
func (h *RedirectHandler) Redirect(c *gin.Context) {
	shortCode := c.Param("shortCode")
	if !encoder.ValidCode(shortCode) {
		h.respond(c, model.NewResolution(model.VerdictInvalid))
		return
	}

	req := &model.ResolveRequest{ShortCode: shortCode}
	if c.Request.Method == http.MethodPost {
		var form passwordForm
		if err := c.ShouldBind(&form); err == nil {
			req.Password = form.Password
		}
	}

	res, err := h.resolver.Resolve(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to resolve short code")
		c.JSON(http.StatusInternalServerError, Response{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
			Data:    model.NewResolution(model.VerdictInvalid),
		})
		return
	}

	if res.Verdict != model.VerdictSuccess {
		h.respond(c, res)
		return
	}

	h.recordClick(c, shortCode)
	c.Redirect(http.StatusFound, res.Destination)
}

func (h *RedirectHandler) respond(c *gin.Context, res *model.Resolution) {
	status := StatusForVerdict(res.Verdict)
	c.JSON(status, Response{
		Code:    status,
		Message: string(res.Verdict),
		Data:    res,
	})
}

// recordClick records the click before the redirect is sent, so the next
// request already sees the decremented quota. The click event is published in
// the background; a failed recording is published for replay.
func (h *RedirectHandler) recordClick(c *gin.Context, shortCode string) {
	ctx := context.WithoutCancel(c.Request.Context())
	click := h.classifier.FromRequest(c.Request, c.ClientIP())

	err := h.recorder.Record(ctx, shortCode, click)
	if err != nil {
		log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to record click")
	}

	if h.mqProducer == nil {
		return
	}
	retry := err != nil && !errors.Is(err, service.ErrAnalyticsMissing)
	if err != nil && !retry {
		return
	}

	msg := model.NewClickMessage(util.GenerateUUID(), shortCode, c.Request.Referer(), click, retry)
	go func() {
		if err := h.mqProducer.SendClick(ctx, msg); err != nil {
			log.Error().Err(err).Str("short_code", shortCode).Bool("retry", retry).Msg("Failed to send click event to MQ")
		}
	}()
}
