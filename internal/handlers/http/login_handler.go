// internal/handlers/http/login_handler.go
package http

import (
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"weather-agent/internal/config"
	"weather-agent/internal/middleware"
	"weather-agent/internal/util"
)

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResp struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"` // epoch seconds
	User      string `json:"user"`
	Role      string `json:"role"`
}

func NewLoginHandler(admin config.AdminConfig, clock util.Clock) http.HandlerFunc {
	if clock == nil {
		clock = util.RealClock{}
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var in loginReq
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			util.WriteError(w, http.StatusBadRequest, util.BadInput("bad request"))
			return
		}

		if admin.User == "" || admin.PassHash == "" {
			util.WriteError(w, http.StatusForbidden, util.APIError{Error: "admin not configured"})
			return
		}
		if in.Username != admin.User ||
			bcrypt.CompareHashAndPassword([]byte(admin.PassHash), []byte(in.Password)) != nil {
			util.WriteError(w, http.StatusUnauthorized, util.APIError{Error: "invalid credentials"})
			return
		}

		token, exp, err := middleware.GenerateAdminToken(admin.JWTSecret, admin.User, clock.Now())
		if err != nil {
			util.WriteError(w, http.StatusInternalServerError, util.Internal("token error"))
			return
		}

		util.WriteJSON(w, http.StatusOK, loginResp{
			Token:     token,
			ExpiresAt: exp,
			User:      admin.User,
			Role:      "admin",
		})
	}
}
