package handlers

import (
	"errors"
	"net/http"

	"fiscalblog/internal/services"
	helpers "fiscalblog/internal/utils/helpers"
)

// writeServiceError переводит ошибки сервисов в HTTP-статусы.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrPostNotFound):
		helpers.Error(w, http.StatusNotFound, "Статья не найдена")
	case errors.Is(err, services.ErrContentNotFound):
		helpers.Error(w, http.StatusNotFound, "Текст статьи не найден")
	case errors.Is(err, services.ErrClusterNotFound):
		helpers.Error(w, http.StatusNotFound, "Кластер не найден")
	case errors.Is(err, services.ErrUnsupportedLocale):
		helpers.Error(w, http.StatusBadRequest, "Неподдерживаемый язык")
	default:
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка")
	}
}
