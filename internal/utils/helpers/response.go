package helpers

import (
	"encoding/json"
	"net/http"

	"fiscalblog/internal/logger"

	"go.uber.org/zap"
)

// Response — общий конверт ответов API: либо data, либо error.
type Response struct {
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	write(w, status, Response{Data: data})
}

func Error(w http.ResponseWriter, status int, errMsg string) {
	write(w, status, Response{Error: errMsg})
}

// write кодирует конверт. Заголовок уже отправлен, поэтому ошибку кодирования можно только залогировать.
func write(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Log.Error("helpers: не удалось закодировать ответ", zap.Int("status", status), zap.Error(err))
	}
}
