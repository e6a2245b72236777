package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fiscalblog/internal/logger"
	"fiscalblog/internal/reqctx"
	"fiscalblog/internal/services"
	helpers "fiscalblog/internal/utils/helpers"

	"go.uber.org/zap"
)

type AdminHandler struct {
	svc *services.AdminService
}

func NewAdminHandler(svc *services.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

type loginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"secret"`
}

// Login
// @Summary      Вход администратора
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Логин и пароль"
// @Success      200 {object} helpers.Response{data=map[string]string}
// @Failure      401 {object} helpers.Response
// @Router       /api/admin/login [post]
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("admin: невалидный JSON при входе", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "bad json")
		return
	}

	token, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		helpers.Error(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"access_token": token})
}

// Integrity
// @Summary      Проверка целостности данных
// @Description  Сверка clusters-index.json с живыми счётчиками и прочие предупреждения.
// @Tags         admin
// @Security     ApiKeyAuth
// @Produce      json
// @Success      200 {object} helpers.Response{data=models.IntegrityReport}
// @Router       /api/admin/integrity [get]
func (h *AdminHandler) Integrity(w http.ResponseWriter, r *http.Request) {
	helpers.JSON(w, http.StatusOK, h.svc.Integrity(r.Context()))
}

// Reload
// @Summary      Перечитать JSON-файлы блога
// @Description  При ошибке валидации продолжает работать прежний каталог.
// @Tags         admin
// @Security     ApiKeyAuth
// @Produce      json
// @Success      200 {object} helpers.Response{data=models.IntegrityReport}
// @Failure      422 {object} helpers.Response
// @Router       /api/admin/reload [post]
func (h *AdminHandler) Reload(w http.ResponseWriter, r *http.Request) {
	admin, _ := reqctx.GetAdmin(r.Context())
	logger.WithCtx(r.Context()).Info("admin: запрошена перезагрузка каталога", zap.String("admin", admin))

	report, err := h.svc.Reload(r.Context())
	if err != nil {
		helpers.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	helpers.JSON(w, http.StatusOK, report)
}

// FlushCache
// @Summary      Сбросить кэш текстов
// @Tags         admin
// @Security     ApiKeyAuth
// @Produce      json
// @Success      200 {object} helpers.Response{data=map[string]int}
// @Failure      500 {object} helpers.Response
// @Router       /api/admin/cache/flush [post]
func (h *AdminHandler) FlushCache(w http.ResponseWriter, r *http.Request) {
	admin, _ := reqctx.GetAdmin(r.Context())
	logger.WithCtx(r.Context()).Info("admin: запрошен сброс кэша", zap.String("admin", admin))

	n, err := h.svc.FlushCache(r.Context())
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Ошибка сброса кэша")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]int{"removed": n})
}

// Health
// @Summary  Liveness
// @Tags     system
// @Success  200 {string} string "ok"
// @Router   /healthz [get]
func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
