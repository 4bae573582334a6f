package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"purrlog/internal/assistant"
	"purrlog/internal/domain/activities"
	"purrlog/internal/middleware"
	"purrlog/internal/ports/capabilities"
)

const dayLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, ws *Workspaces, caps capabilities.Resolver) {
	r.Get("/activities", listActivitiesHandler())

	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(ws))
		pr.Post("/", addPetHandler(ws))
		pr.Delete("/{petID}", removePetHandler(ws))
	})

	r.Route("/state", func(sr chi.Router) {
		sr.Get("/", getStateHandler(ws))
		sr.Put("/active-pet", selectPetHandler(ws))
		sr.Put("/day", selectDayHandler(ws))
		sr.Post("/day/previous", previousDayHandler(ws))
		sr.Post("/day/next", nextDayHandler(ws))
		sr.Put("/view", setViewHandler(ws))
	})

	r.Post("/entries", logActivityHandler(ws))
	r.Delete("/entries/{entryID}", deleteEntryHandler(ws))

	r.Get("/timeline", timelineHandler(ws))
	r.Get("/stats", statsHandler(ws))

	r.Route("/assistant", func(ar chi.Router) {
		ar.Use(requireCapability(caps, capabilities.AssistantChat))
		ar.Get("/transcript", transcriptHandler(ws))
		ar.Post("/messages", sendMessageHandler(ws))
	})
}

// listActivitiesHandler godoc
// @Summary Catálogo de actividades
// @Description Tipos de actividad en orden canónico con su metadata de presentación (label, icono, colores).
// @Tags activities
// @Produce json
// @Success 200 {array} activities.Presentation
// @Router /activities [get]
func listActivitiesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, activities.Catalog())
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} petResponse
// @Failure 401 {string} string "unauthorized"
// @Router /pets [get]
func listPetsHandler(ws *Workspaces) http.HandlerFunc {
	return withShell(ws, func(w http.ResponseWriter, r *http.Request, s *Shell) {
		items := s.Pets()
		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	})
}

type addPetRequest struct {
	Name string `json:"name"`
}

// addPetHandler godoc
// @Summary Agregar mascota
// @Description Crea un perfil con avatar generado y tema por defecto, y lo deja como mascota activa.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body addPetRequest true "Nombre de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / nombre vacío"
// @Failure 401 {string} string "unauthorized"
// @Router /pets [post]
func addPetHandler(ws *Workspaces) http.HandlerFunc {
	return withShell(ws, func(w http.ResponseWriter, r *http.Request, s *Shell) {
		var req addPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		p, err := s.AddPet(r.Context(), req.Name)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toPetResponse(p))
	})
}

// removePetHandler godoc
// @Summary Eliminar mascota
// @Description Quita el perfil. Las entradas de la mascota se conservan pero ya no aparecen en las vistas. Requiere confirmación.
// @Tags pets
// @Param petID path string true "ID de la mascota"
// @Param confirm query bool false "Debe ser true (o header X-Confirm: true)"
// @Success 204
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "última mascota"
// @Failure 428 {string} string "confirmation required"
// @Router /pets/{petID} [delete]
func removePetHandler(ws *Workspaces) http.HandlerFunc {
	return withShell(ws, func(w http.ResponseWriter, r *http.Request, s *Shell) {
		if err := s.RemovePet(r.Context(), chi.URLParam(r, "petID"), confirmed(r)); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// getStateHandler godoc
// @Summary Estado del workspace
// @Tags state
// @Produce json
// @Success 200 {object} stateResponse
// @Router /state [get]
func getStateHandler(ws *Workspaces) http.HandlerFunc {
	return withShell(ws, func(w http.ResponseWriter, r *http.Request, s *Shell) {
		writeJSON(w, http.StatusOK, toStateResponse(s.State()))
	})
}

type selectPetRequest struct {
	PetID string `json:"pet_id"`
}

// selectPetHandler godoc
// @Summary Cambiar mascota activa
// @Tags state
// @Accept json
// @Produce json
// @Param payload body selectPetRequest true "Mascota a activar"
// @Success 200 {object} stateResponse
// @Failure 404 {string} string "not found"
// @Router /state/active-pet [put]
func selectPetHandler(ws *Workspaces) http.HandlerFunc {
	return withShell(ws, func(w http.ResponseWriter, r *http.Request, s *Shell) {
		var req selectPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := s.SelectPet(r.Context(), req.PetID); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toStateResponse(s.State()))
	})
}

type selectDayRequest struct {
	Day string `json:"day"` // YYYY-MM-DD
}

// selectDayHandler godoc
// @Summary Elegir día
// @Tags state
// @Accept json
// @Produce json
// @Param payload body selectDayRequest true "Día YYYY-MM-DD (no futuro)"
// @Success 200 {object} stateResponse
// @Failure 400 {string} string "day inválido / día futuro"
// @Router /state/day [put]
func selectDayHandler(ws *Workspaces) http.HandlerFunc {
	return withShell(ws, func(w http.ResponseWriter, r *http.Request, s *Shell) {
		var req selectDayRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		day, err := time.ParseInLocation(dayLayout, strings.TrimSpace(req.Day), s.loc)
		if err != nil {
			http.Error(w, "day must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if err := s.SelectDay(day); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toStateResponse(s.State()))
	})
}

// previousDayHandler godoc
// @Summary Día anterior
// @Tags state
// @Produce json
// @Success 200 {object} stateResponse
// @Router /state/day/previous [post]
func previousDayHandler(ws *Workspaces) http.HandlerFunc {
	return withShell(ws, func(w http.ResponseWriter, r *http.Request, s *Shell) {
		s.PreviousDay()
		writeJSON(w, http.StatusOK, toStateResponse(s.State()))
	})
}

// nextDayHandler godoc
// @Summary Día siguiente
// @Description Falla si el día seleccionado ya es hoy.
// @Tags state
// @Produce json
// @Success 200 {object} stateResponse
// @Failure 400 {string} string "ya es hoy"
// @Router /state/day/next [post]
func nextDayHandler(ws *Workspaces) http.HandlerFunc {
	return withShell(ws, func(w http.ResponseWriter, r *http.Request, s *Shell) {
		if _, err := s.NextDay(); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toStateResponse(s.State()))
	})
}

type setViewRequest struct {
	View string `json:"view"` // timeline|statistics|assistant
}

// setViewHandler godoc
// @Summary Cambiar vista
// @Tags state
// @Accept json
// @Produce json
// @Param payload body setViewRequest true "timeline, statistics o assistant"
// @Success 200 {object} stateResponse
// @Failure 400 {string} string "vista inválida"
// @Router /state/view [put]
func setViewHandler(ws *Workspaces) http.HandlerFunc {
	return withShell(ws, func(w http.ResponseWriter, r *http.Request, s *Shell) {
		var req setViewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := s.SetView(View(req.View)); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toStateResponse(s.State()))
	})
}

type logActivityRequest struct {
	Type       string `json:"type"`
	Notes      string `json:"notes"`
	OccurredAt string `json:"occurred_at"` // RFC3339 opcional; por defecto ahora
}

// logActivityHandler godoc
// @Summary Registrar actividad
// @Description Registra una actividad para la mascota activa.
// @Tags entries
// @Accept json
// @Produce json
// @Param payload body logActivityRequest true "Tipo, nota opcional y occurred_at RFC3339 opcional"
// @Success 201 {object} entryResponse
// @Failure 400 {string} string "invalid json / tipo desconocido / occurred_at inválido"
// @Failure 500 {string} string "storage error"
// @Router /entries [post]
func logActivityHandler(ws *Workspaces) http.HandlerFunc {
	return withShell(ws, func(w http.ResponseWriter, r *http.Request, s *Shell) {
		var req logActivityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		typ, err := activities.Parse(req.Type)
		if err != nil {
			http.Error(w, "unknown activity type", http.StatusBadRequest)
			return
		}
		in := LogInput{Type: typ, Note: req.Notes}
		if v := strings.TrimSpace(req.OccurredAt); v != "" {
			at, err := time.Parse(time.RFC3339, v)
			if err != nil {
				http.Error(w, "occurred_at must be RFC3339", http.StatusBadRequest)
				return
			}
			in.At = &at
		}
		e, err := s.LogActivity(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toEntryResponse(e, s.loc))
	})
}

// deleteEntryHandler godoc
// @Summary Eliminar entrada
// @Description Borrado irreversible. Requiere confirm=true o header X-Confirm: true. Una entrada inexistente responde 204 igual.
// @Tags entries
// @Param entryID path string true "ID de la entrada"
// @Param confirm query bool false "Confirmación"
// @Success 204
// @Failure 428 {string} string "confirmation required"
// @Router /entries/{entryID} [delete]
func deleteEntryHandler(ws *Workspaces) http.HandlerFunc {
	return withShell(ws, func(w http.ResponseWriter, r *http.Request, s *Shell) {
		if _, err := s.DeleteEntry(r.Context(), chi.URLParam(r, "entryID"), confirmed(r)); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// timelineHandler godoc
// @Summary Timeline del día
// @Description Entradas de la mascota activa en el día pedido (o el seleccionado), de más nueva a más vieja.
// @Tags views
// @Produce json
// @Param day query string false "YYYY-MM-DD"
// @Success 200 {object} timelineResponse
// @Failure 400 {string} string "day inválido"
// @Router /timeline [get]
func timelineHandler(ws *Workspaces) http.HandlerFunc {
	return withShell(ws, func(w http.ResponseWriter, r *http.Request, s *Shell) {
		var tl Timeline
		if v := strings.TrimSpace(r.URL.Query().Get("day")); v != "" {
			day, err := time.ParseInLocation(dayLayout, v, s.loc)
			if err != nil {
				http.Error(w, "day must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			tl = s.TimelineFor(day)
		} else {
			tl = s.Timeline()
		}
		writeJSON(w, http.StatusOK, toTimelineResponse(tl, s.loc))
	})
}

// statsHandler godoc
// @Summary Estadísticas
// @Description Conteo por tipo de actividad del historial completo de la mascota activa.
// @Tags views
// @Produce json
// @Success 200 {object} statsResponse
// @Router /stats [get]
func statsHandler(ws *Workspaces) http.HandlerFunc {
	return withShell(ws, func(w http.ResponseWriter, r *http.Request, s *Shell) {
		writeJSON(w, http.StatusOK, toStatsResponse(s.Statistics()))
	})
}

// transcriptHandler godoc
// @Summary Transcript del asistente
// @Tags assistant
// @Produce json
// @Success 200 {array} messageResponse
// @Failure 403 {string} string "forbidden"
// @Router /assistant/transcript [get]
func transcriptHandler(ws *Workspaces) http.HandlerFunc {
	return withShell(ws, func(w http.ResponseWriter, r *http.Request, s *Shell) {
		msgs := s.Transcript()
		out := make([]messageResponse, 0, len(msgs))
		for _, m := range msgs {
			out = append(out, toMessageResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	})
}

type sendMessageRequest struct {
	Text string `json:"text"`
	// Imagen como data URL (data:image/jpeg;base64,...) o como media type + base64.
	Image          string `json:"image"`
	ImageMediaType string `json:"image_media_type"`
	ImageBase64    string `json:"image_base64"`
}

// sendMessageHandler godoc
// @Summary Enviar mensaje al asistente
// @Description Texto y/o una imagen. Si el servicio de IA falla, la respuesta es un mensaje de disculpa (no un error HTTP).
// @Tags assistant
// @Accept json
// @Produce json
// @Param payload body sendMessageRequest true "Mensaje"
// @Success 200 {object} messageResponse
// @Failure 400 {string} string "mensaje vacío / imagen inválida"
// @Failure 403 {string} string "forbidden"
// @Failure 409 {string} string "esperando respuesta anterior"
// @Router /assistant/messages [post]
func sendMessageHandler(ws *Workspaces) http.HandlerFunc {
	return withShell(ws, func(w http.ResponseWriter, r *http.Request, s *Shell) {
		var req sendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		turn := assistant.Turn{Text: req.Text}
		switch {
		case strings.TrimSpace(req.Image) != "":
			img, err := assistant.ParseDataURL(req.Image)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			turn.Image = img
		case strings.TrimSpace(req.ImageBase64) != "":
			img, err := assistant.DecodeImage(req.ImageMediaType, req.ImageBase64)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			turn.Image = img
		}

		msg, err := s.Chat(r.Context(), turn)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toMessageResponse(msg))
	})
}

// --- helpers ---

// withShell resuelve el workspace del usuario autenticado.
func withShell(ws *Workspaces, fn func(http.ResponseWriter, *http.Request, *Shell)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		s, err := ws.Get(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}
		fn(w, r, s)
	}
}

func requireCapability(caps capabilities.Resolver, capability string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if caps == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := middleware.GetClaims(r.Context())
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			allowed, err := caps.Has(r.Context(), claims.UserID, capability)
			if err != nil {
				http.Error(w, "capabilities unavailable", http.StatusBadGateway)
				return
			}
			if !allowed {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func confirmed(r *http.Request) bool {
	if ok, _ := strconv.ParseBool(r.URL.Query().Get("confirm")); ok {
		return true
	}
	ok, _ := strconv.ParseBool(r.Header.Get("X-Confirm"))
	return ok
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrNoFutureDays),
		errors.Is(err, assistant.ErrEmptyTurn),
		errors.Is(err, assistant.ErrInvalidImage):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ErrLastPet), errors.Is(err, assistant.ErrBusy):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrConfirmationRequired):
		http.Error(w, err.Error(), http.StatusPreconditionRequired)
	case errors.Is(err, context.Canceled):
		http.Error(w, "request canceled", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
