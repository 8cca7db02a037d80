package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/aserravalle/travelling-salesman-backend/internal/api/dto"
	"github.com/aserravalle/travelling-salesman-backend/internal/config"
	"github.com/aserravalle/travelling-salesman-backend/internal/domain"
	"github.com/aserravalle/travelling-salesman-backend/internal/ports"
	"github.com/aserravalle/travelling-salesman-backend/internal/services"
)

type RosterHandler struct {
	Provider ports.TravelTimeProvider
	Geocoder ports.Geocoder
	Dispatch config.Dispatch
}

// AssignJobs builds a roster for the submitted jobs and salesmen.
// Malformed input is rejected before dispatch begins; an unassignable
// job is not an error and shows up in the response's unassigned list.
func (h *RosterHandler) AssignJobs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RosterRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	jobs, salesmen, err := toDomain(req)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	svcReq := services.ScheduleRequest{
		Jobs:     jobs,
		Salesmen: salesmen,
		Clusters: req.Clusters,
	}

	roster, err := services.BuildRoster(r.Context(), svcReq, h.Provider, h.Geocoder, h.Dispatch)
	if err != nil {
		log.Printf("build roster failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toRosterResponse(roster))
}

func toDomain(req dto.RosterRequest) ([]*domain.Job, []*domain.Salesman, error) {
	jobs := make([]*domain.Job, 0, len(req.Jobs))
	for _, j := range req.Jobs {
		if strings.TrimSpace(j.JobID) == "" {
			return nil, nil, fmt.Errorf("job_id is required")
		}

		loc, err := toLocation(j.Location)
		if err != nil {
			return nil, nil, fmt.Errorf("job %s: %w", j.JobID, err)
		}

		job, err := domain.NewJob(j.JobID, j.Date, loc, j.DurationMins, j.EntryTime, j.ExitTime)
		if err != nil {
			return nil, nil, err
		}
		job.ClientName = j.ClientName
		jobs = append(jobs, job)
	}

	salesmen := make([]*domain.Salesman, 0, len(req.Salesmen))
	for _, s := range req.Salesmen {
		if strings.TrimSpace(s.SalesmanID) == "" {
			return nil, nil, fmt.Errorf("salesman_id is required")
		}
		if s.EndTime.Before(s.StartTime) {
			return nil, nil, fmt.Errorf("salesman %s: end_time before start_time", s.SalesmanID)
		}

		home, err := toLocation(s.HomeLocation)
		if err != nil {
			return nil, nil, fmt.Errorf("salesman %s: %w", s.SalesmanID, err)
		}

		salesmen = append(salesmen, &domain.Salesman{
			SalesmanID:     s.SalesmanID,
			Name:           s.SalesmanName,
			HomeLocation:   home,
			StartTime:      s.StartTime,
			EndTime:        s.EndTime,
			MaxWorkdayMins: s.MaxWorkdayMins,
		})
	}

	return jobs, salesmen, nil
}

func toLocation(l dto.LocationDTO) (domain.Location, error) {
	loc := domain.Location{Address: strings.TrimSpace(l.Address)}

	if l.Latitude != nil || l.Longitude != nil {
		if l.Latitude == nil || l.Longitude == nil {
			return domain.Location{}, fmt.Errorf("location requires both latitude and longitude")
		}
		c := domain.Coordinates{Latitude: *l.Latitude, Longitude: *l.Longitude}
		if !c.Valid() {
			return domain.Location{}, fmt.Errorf("location coordinates out of range (%f, %f)", c.Latitude, c.Longitude)
		}
		loc.Coordinates = &c
	}

	if loc.Coordinates == nil && loc.Address == "" {
		return domain.Location{}, fmt.Errorf("location requires coordinates or an address")
	}
	return loc, nil
}

func toRosterResponse(roster *domain.Roster) dto.RosterResponse {
	res := dto.RosterResponse{
		RosterID:       roster.RosterID,
		Date:           roster.Date,
		Jobs:           make(map[string][]dto.JobResponse, len(roster.Jobs)),
		UnassignedJobs: make([]dto.JobResponse, 0, len(roster.UnassignedJobs)),
		Message:        roster.Message,
	}

	for id, jobs := range roster.Jobs {
		out := make([]dto.JobResponse, 0, len(jobs))
		for _, j := range jobs {
			out = append(out, toJobResponse(j))
		}
		res.Jobs[id] = out
	}
	for _, j := range roster.UnassignedJobs {
		res.UnassignedJobs = append(res.UnassignedJobs, toJobResponse(j))
	}
	return res
}

func toJobResponse(j *domain.Job) dto.JobResponse {
	res := dto.JobResponse{
		JobID:        j.JobID,
		ClientName:   j.ClientName,
		Date:         j.Date,
		Location:     toLocationDTO(j.Location),
		DurationMins: j.DurationMins,
		EntryTime:    j.EntryTime,
		ExitTime:     j.ExitTime,
		Cluster:      j.Cluster,
		StartTime:    j.StartTime,
	}
	if j.Assigned() {
		id := j.SalesmanID
		res.SalesmanID = &id
		if j.SalesmanName != "" {
			name := j.SalesmanName
			res.SalesmanName = &name
		}
	}
	return res
}

func toLocationDTO(loc domain.Location) dto.LocationDTO {
	res := dto.LocationDTO{Address: loc.Address}
	if loc.Coordinates != nil {
		lat, lon := loc.Coordinates.Latitude, loc.Coordinates.Longitude
		res.Latitude = &lat
		res.Longitude = &lon
	}
	return res
}
