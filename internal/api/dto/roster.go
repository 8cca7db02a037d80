package dto

import "time"

type LocationDTO struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Address   string   `json:"address,omitempty"`
}

type JobRequest struct {
	JobID        string      `json:"job_id"`
	ClientName   string      `json:"client_name,omitempty"`
	Date         time.Time   `json:"date"`
	Location     LocationDTO `json:"location"`
	DurationMins int         `json:"duration_mins"`
	EntryTime    time.Time   `json:"entry_time"`
	ExitTime     time.Time   `json:"exit_time"`
}

type SalesmanRequest struct {
	SalesmanID     string      `json:"salesman_id"`
	SalesmanName   string      `json:"salesman_name,omitempty"`
	HomeLocation   LocationDTO `json:"home_location"`
	StartTime      time.Time   `json:"start_time"`
	EndTime        time.Time   `json:"end_time"`
	MaxWorkdayMins int         `json:"max_workday_mins,omitempty"`
}

type RosterRequest struct {
	Jobs     []JobRequest      `json:"jobs"`
	Salesmen []SalesmanRequest `json:"salesmen"`
	Clusters int               `json:"n_clusters,omitempty"`
}

type JobResponse struct {
	JobID        string      `json:"job_id"`
	ClientName   string      `json:"client_name,omitempty"`
	Date         time.Time   `json:"date"`
	Location     LocationDTO `json:"location"`
	DurationMins int         `json:"duration_mins"`
	EntryTime    time.Time   `json:"entry_time"`
	ExitTime     time.Time   `json:"exit_time"`
	Cluster      *int        `json:"cluster,omitempty"`
	SalesmanID   *string     `json:"salesman_id"`
	SalesmanName *string     `json:"salesman_name,omitempty"`
	StartTime    *time.Time  `json:"start_time"`
}

type RosterResponse struct {
	RosterID       string                   `json:"roster_id"`
	Date           time.Time                `json:"date"`
	Jobs           map[string][]JobResponse `json:"jobs"`
	UnassignedJobs []JobResponse            `json:"unassigned_jobs"`
	Message        string                   `json:"message"`
}
