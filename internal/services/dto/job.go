package dto

import "jobify_backend/internal/models"

// JobListQuery carries the raw job-search parameters. Page and limit stay
// strings on purpose: a non-numeric value falls back to the default
// instead of failing the request.
type JobListQuery struct {
	Search    string `form:"search"`
	JobStatus string `form:"jobStatus"`
	JobType   string `form:"jobType"`
	Sort      string `form:"sort"`
	Page      string `form:"page"`
	Limit     string `form:"limit"`
}

type CreateJobRequest struct {
	Company     string           `json:"company" binding:"required"`
	Position    string           `json:"position" binding:"required"`
	JobStatus   models.JobStatus `json:"jobStatus" validate:"omitempty,oneof=pending interview declined"`
	JobType     models.JobType   `json:"jobType" validate:"omitempty,oneof=full-time part-time internship"`
	JobLocation string           `json:"jobLocation"`
}

// UpdateJobRequest is a partial update; nil fields are left untouched.
type UpdateJobRequest struct {
	Company     *string           `json:"company"`
	Position    *string           `json:"position"`
	JobStatus   *models.JobStatus `json:"jobStatus" validate:"omitempty,oneof=pending interview declined"`
	JobType     *models.JobType   `json:"jobType" validate:"omitempty,oneof=full-time part-time internship"`
	JobLocation *string           `json:"jobLocation"`
}

type JobListResponse struct {
	TotalJobs   int64        `json:"totalJobs"`
	NumOfPages  int          `json:"numOfPages"`
	CurrentPage int          `json:"currentPage"`
	Jobs        []models.Job `json:"jobs"`
}

// DefaultStats is the fixed-shape status breakdown; a status with no jobs
// is reported as 0, never omitted.
type DefaultStats struct {
	Pending   int64 `json:"pending"`
	Interview int64 `json:"interview"`
	Declined  int64 `json:"declined"`
}

// MonthlyApplication is one point of the monthly series.
type MonthlyApplication struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type StatsResponse struct {
	DefaultStats        DefaultStats         `json:"defaultStats"`
	MonthlyApplications []MonthlyApplication `json:"monthlyApplications"`
}
