package services

import (
	"time"

	"jobify_backend/internal/models"
	"jobify_backend/internal/repositories"
	"jobify_backend/internal/services/dto"
	"jobify_backend/pkg/apperrors"

	"github.com/google/uuid"
)

const monthlySeriesLen = 6

type JobService interface {
	ListJobs(ownerID string, query *dto.JobListQuery) (*dto.JobListResponse, error)
	CreateJob(ownerID string, req *dto.CreateJobRequest) (*models.Job, error)
	GetJob(ownerID, jobID string) (*models.Job, error)
	UpdateJob(ownerID, jobID string, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ownerID, jobID string) (*models.Job, error)
	ShowStats(ownerID string) (*dto.StatsResponse, error)
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{
		jobRepo: jobRepo,
	}
}

// ListJobs runs the search in two steps: count first, then fetch the
// requested page; pagination is derived from the count between them.
func (s *JobServiceImpl) ListJobs(ownerID string, query *dto.JobListQuery) (*dto.JobListResponse, error) {
	q := models.JobQuery{
		OwnerID: ownerID,
		Search:  query.Search,
		Status:  models.ParseFieldFilter(query.JobStatus),
		Type:    models.ParseFieldFilter(query.JobType),
		Sort:    models.ParseSortKey(query.Sort),
	}

	totalJobs, err := s.jobRepo.Count(q)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	page := models.ParsePageParam(query.Page, 1)
	limit := models.ParsePageParam(query.Limit, 0)
	pagination := models.NewPagination(totalJobs, page, limit)

	jobs, err := s.jobRepo.List(q, pagination.Skip, pagination.Limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if jobs == nil {
		jobs = []models.Job{}
	}

	return &dto.JobListResponse{
		TotalJobs:   pagination.TotalJobs,
		NumOfPages:  pagination.NumOfPages,
		CurrentPage: pagination.CurrentPage,
		Jobs:        jobs,
	}, nil
}

func (s *JobServiceImpl) CreateJob(ownerID string, req *dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		CreatedBy:   ownerID,
		Company:     req.Company,
		Position:    req.Position,
		JobStatus:   req.JobStatus,
		JobType:     req.JobType,
		JobLocation: req.JobLocation,
	}

	if job.JobStatus == "" {
		job.JobStatus = models.JobStatusPending
	}
	if job.JobType == "" {
		job.JobType = models.JobTypeFullTime
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return job, nil
}

// findOwned resolves a job id for the owner. A malformed id is treated
// the same as a missing record: 404, never 500.
func (s *JobServiceImpl) findOwned(ownerID, jobID string) (*models.Job, error) {
	if err := uuid.Validate(jobID); err != nil {
		return nil, apperrors.ErrJobNotFound
	}

	job, err := s.jobRepo.FindOwned(ownerID, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return job, nil
}

func (s *JobServiceImpl) GetJob(ownerID, jobID string) (*models.Job, error) {
	return s.findOwned(ownerID, jobID)
}

func (s *JobServiceImpl) UpdateJob(ownerID, jobID string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.findOwned(ownerID, jobID)
	if err != nil {
		return nil, err
	}

	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Position != nil {
		job.Position = *req.Position
	}
	if req.JobStatus != nil {
		job.JobStatus = *req.JobStatus
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.JobLocation != nil {
		job.JobLocation = *req.JobLocation
	}

	if err := s.jobRepo.Save(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return job, nil
}

func (s *JobServiceImpl) DeleteJob(ownerID, jobID string) (*models.Job, error) {
	job, err := s.findOwned(ownerID, jobID)
	if err != nil {
		return nil, err
	}

	if err := s.jobRepo.Delete(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return job, nil
}

// ShowStats builds the status breakdown and the monthly series for one
// user. The breakdown always carries all three statuses; the series keeps
// only the six most recent non-empty months, oldest first.
func (s *JobServiceImpl) ShowStats(ownerID string) (*dto.StatsResponse, error) {
	statusRows, err := s.jobRepo.CountByStatus(ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats := dto.DefaultStats{}
	for _, row := range statusRows {
		switch row.JobStatus {
		case models.JobStatusPending:
			stats.Pending = row.Count
		case models.JobStatusInterview:
			stats.Interview = row.Count
		case models.JobStatusDeclined:
			stats.Declined = row.Count
		}
	}

	monthRows, err := s.jobRepo.MonthlyCounts(ownerID, monthlySeriesLen)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	monthly := make([]dto.MonthlyApplication, 0, len(monthRows))
	// rows arrive most recent first; walk backwards to end up ascending
	for i := len(monthRows) - 1; i >= 0; i-- {
		row := monthRows[i]
		monthly = append(monthly, dto.MonthlyApplication{
			Date:  MonthLabel(row.Year, row.Month),
			Count: row.Count,
		})
	}

	return &dto.StatsResponse{
		DefaultStats:        stats,
		MonthlyApplications: monthly,
	}, nil
}

// MonthLabel renders a (year, month) pair as an abbreviated month name
// plus two-digit year, e.g. "Sep 25". Months are calendar months in UTC.
func MonthLabel(year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("Jan 06")
}
