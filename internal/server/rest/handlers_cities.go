package rest

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/citykeeper/internal/common"
	"github.com/dmitrijs2005/citykeeper/internal/server/dto"
	"github.com/dmitrijs2005/citykeeper/internal/server/models"
)

func cityIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["cityId"])
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid city id")
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) handleCityList(w http.ResponseWriter, r *http.Request) {
	cities, err := s.cities.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "listing cities failed", "error", err.Error())
		writeError(w, err)
		return
	}
	if cities == nil {
		cities = []models.City{}
	}
	writeJSON(w, http.StatusOK, cities)
}

func (s *Server) handleCityGet(w http.ResponseWriter, r *http.Request) {
	id, ok := cityIDFromPath(w, r)
	if !ok {
		return
	}

	city, err := s.cities.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "city not found")
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, city)
}

func (s *Server) handleCityCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.CityRequest
	if !decodeBody(w, r, &req) {
		return
	}

	city, err := s.cities.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, city)
}

func (s *Server) handleCityUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := cityIDFromPath(w, r)
	if !ok {
		return
	}

	var req dto.CityRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := s.cities.Update(r.Context(), id, req); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "city not found")
			return
		}
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCityDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := cityIDFromPath(w, r)
	if !ok {
		return
	}

	if err := s.cities.Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "city not found")
			return
		}
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCityNames is the v2 shape of the list: names only.
func (s *Server) handleCityNames(w http.ResponseWriter, r *http.Request) {
	cities, err := s.cities.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	names := make([]string, 0, len(cities))
	for _, c := range cities {
		names = append(names, c.Name)
	}
	writeJSON(w, http.StatusOK, names)
}
