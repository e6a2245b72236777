package handlers

import (
	"net/http"

	"fiscalblog/internal/logger"
	"fiscalblog/internal/reqctx"
	"fiscalblog/internal/services"
	helpers "fiscalblog/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type ClusterHandler struct{ svc services.ClusterService }

func NewClusterHandler(s services.ClusterService) *ClusterHandler {
	return &ClusterHandler{svc: s}
}

// ListClusters
// @Summary      Тематические кластеры
// @Description  Названия на языке из ?lang= / Accept-Language, с количеством статей.
// @Tags         clusters
// @Produce      json
// @Param        lang  query  string  false  "es | en | ca"
// @Success      200 {object} helpers.Response{data=[]models.ClusterSummary}
// @Router       /api/clusters [get]
func (h *ClusterHandler) ListClusters(w http.ResponseWriter, r *http.Request) {
	loc, _ := reqctx.GetLocale(r.Context())
	list := h.svc.ListClusters(loc)
	logger.WithCtx(r.Context()).Debug("cluster: список кластеров", zap.Int("count", len(list)))
	helpers.JSON(w, http.StatusOK, list)
}

// GetCluster
// @Summary      Страница кластера
// @Description  Кластер без статей — валидное состояние (comingSoon=true).
// @Tags         clusters
// @Produce      json
// @Param        locale  path  string  true  "es | en | ca"
// @Param        id      path  string  true  "ID кластера"
// @Success      200 {object} helpers.Response{data=models.ClusterView}
// @Failure      404 {object} helpers.Response
// @Router       /api/{locale}/clusters/{id} [get]
func (h *ClusterHandler) GetCluster(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	loc, _ := reqctx.GetLocale(r.Context())
	id := mux.Vars(r)["id"]

	view, err := h.svc.ClusterPage(r.Context(), id, loc)
	if err != nil {
		log.Warn("cluster: страница не отдана", zap.String("cluster_id", id), zap.Error(err))
		writeServiceError(w, err)
		return
	}

	log.Info("cluster: страница отдана", zap.String("cluster_id", id), zap.Int("posts_count", len(view.Posts)))
	helpers.JSON(w, http.StatusOK, view)
}
