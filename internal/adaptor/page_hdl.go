package adaptor

import (
	"bytes"
	"net/http"

	"movie-booking/pkg/utils"
	"movie-booking/web"

	"go.uber.org/zap"
)

type PageHandler struct {
	appName string
	log     *zap.Logger
}

func NewPageHandler(appName string, log *zap.Logger) *PageHandler {
	return &PageHandler{
		appName: appName,
		log:     log.With(zap.String("handler", "page")),
	}
}

type indexPage struct {
	AppName string
	APIBase string
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := web.Templates.ExecuteTemplate(&buf, "index.html", indexPage{AppName: h.appName, APIBase: "/api"}); err != nil {
		h.log.Error("Failed to render index page", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
