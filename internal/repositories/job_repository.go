package repositories

import (
	"errors"

	"jobify_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// StatusCount is one row of the status breakdown aggregation.
type StatusCount struct {
	JobStatus models.JobStatus
	Count     int64
}

// MonthlyCount is one row of the monthly aggregation, keyed by calendar
// year and month of the creation timestamp in UTC.
type MonthlyCount struct {
	Year  int
	Month int
	Count int64
}

type JobRepository interface {
	Count(q models.JobQuery) (int64, error)
	List(q models.JobQuery, skip, limit int) ([]models.Job, error)
	FindOwned(ownerID, jobID string) (*models.Job, error)
	Create(job *models.Job) error
	Save(job *models.Job) error
	Delete(job *models.Job) error
	CountByStatus(ownerID string) ([]StatusCount, error)
	MonthlyCounts(ownerID string, months int) ([]MonthlyCount, error)
	CountAll() (int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

// applyQuery translates a JobQuery into predicates. The owner predicate
// is unconditional; every other clause is optional.
func (r *JobRepositoryImpl) applyQuery(q models.JobQuery) *gorm.DB {
	tx := r.db.Model(&models.Job{}).Where("created_by = ?", q.OwnerID)

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where("position ILIKE ? OR company ILIKE ?", pattern, pattern)
	}

	if status, ok := q.Status.Value(); ok {
		tx = tx.Where("job_status = ?", status)
	}

	if jobType, ok := q.Type.Value(); ok {
		tx = tx.Where("job_type = ?", jobType)
	}

	return tx
}

func (r *JobRepositoryImpl) Count(q models.JobQuery) (int64, error) {
	var count int64
	err := r.applyQuery(q).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) List(q models.JobQuery, skip, limit int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.applyQuery(q).
		Order(q.Sort.OrderClause()).
		Offset(skip).
		Limit(limit).
		Find(&jobs).Error
	return jobs, err
}

// FindOwned fetches a job only when it belongs to the owner. A job owned
// by someone else is indistinguishable from a missing one.
func (r *JobRepositoryImpl) FindOwned(ownerID, jobID string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ? AND created_by = ?", jobID, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) Save(job *models.Job) error {
	return r.db.Save(job).Error
}

func (r *JobRepositoryImpl) Delete(job *models.Job) error {
	return r.db.Delete(job).Error
}

func (r *JobRepositoryImpl) CountByStatus(ownerID string) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.Model(&models.Job{}).
		Select("job_status, COUNT(*) AS count").
		Where("created_by = ?", ownerID).
		Group("job_status").
		Scan(&rows).Error
	return rows, err
}

// MonthlyCounts groups the owner's jobs by creation month. Months are
// calendar months in UTC; rows come back most recent first, at most
// `months` of them, and only months with at least one job appear.
func (r *JobRepositoryImpl) MonthlyCounts(ownerID string, months int) ([]MonthlyCount, error) {
	var rows []MonthlyCount
	err := r.db.Model(&models.Job{}).
		Select("EXTRACT(YEAR FROM created_at AT TIME ZONE 'UTC')::int AS year, EXTRACT(MONTH FROM created_at AT TIME ZONE 'UTC')::int AS month, COUNT(*) AS count").
		Where("created_by = ?", ownerID).
		Group("year, month").
		Order("year DESC, month DESC").
		Limit(months).
		Scan(&rows).Error
	return rows, err
}

func (r *JobRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Count(&count).Error
	return count, err
}
