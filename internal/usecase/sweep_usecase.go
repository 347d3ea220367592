package usecase

import (
	"context"
	"time"

	"peso-job-portal/internal/domain"
	"peso-job-portal/internal/lifecycle"
	"peso-job-portal/pkg/logger"
)

type sweepUsecase struct {
	docsRepo    domain.CompanyDocumentsRepository
	companyRepo domain.CompanyRepository
	vacancyRepo domain.JobVacancyRepository
	gracePeriod time.Duration
}

// NewSweepUsecase creates the daily lifecycle sweep. gracePeriod is the
// window before a document's expiry during which it gets flagged.
func NewSweepUsecase(
	docsRepo domain.CompanyDocumentsRepository,
	companyRepo domain.CompanyRepository,
	vacancyRepo domain.JobVacancyRepository,
	gracePeriod time.Duration,
) domain.SweepUsecase {
	if gracePeriod <= 0 {
		gracePeriod = lifecycle.DefaultGracePeriod
	}
	return &sweepUsecase{
		docsRepo:    docsRepo,
		companyRepo: companyRepo,
		vacancyRepo: vacancyRepo,
		gracePeriod: gracePeriod,
	}
}

// Run performs the three sweep passes. Every write is a conditional
// "set unless already in the target state" update, so concurrent or
// repeated runs are redundant but harmless. The grace pass only ever
// sets the flag; clearing happens on the explicit expiration-date
// update path, nowhere in the sweep.
func (u *sweepUsecase) Run(ctx context.Context, now time.Time) (*domain.SweepReport, error) {
	report := &domain.SweepReport{StartedAt: now}

	u.markGracePeriods(ctx, now, report)
	u.expireDocuments(ctx, now, report)
	u.expireVacancies(ctx, now, report)

	report.FinishedAt = time.Now()
	logger.Log.Info("Lifecycle sweep finished",
		"grace_marked", report.GraceMarked,
		"documents_expired", report.DocumentsExpired,
		"companies_revoked", report.CompaniesRevoked,
		"vacancies_expired", report.VacanciesExpired,
		"record_errors", report.RecordErrors,
	)
	return report, nil
}

// Pass 1: flag documents whose earliest slot expiry falls inside the
// grace window. The record status is untouched.
func (u *sweepUsecase) markGracePeriods(ctx context.Context, now time.Time, report *domain.SweepReport) {
	candidates, err := u.docsRepo.ListInGraceWindow(ctx, now, now.Add(u.gracePeriod))
	if err != nil {
		logger.Log.Error("Grace pass query failed", "error", err)
		report.RecordErrors++
		return
	}
	for i := range candidates {
		docs := &candidates[i]
		if !lifecycle.DocumentInGraceWindow(docs, now, u.gracePeriod) || docs.GracePeriod {
			continue
		}
		if err := u.docsRepo.MarkGracePeriod(ctx, docs.ID); err != nil {
			logger.Log.Error("Failed to mark grace period", "documents_id", docs.ID, "error", err)
			report.RecordErrors++
			continue
		}
		report.GraceMarked++
	}
}

// Pass 2: expire documents whose expiry has passed, then cascade the
// revocation to the owning company. The document write happens first;
// if the company write fails the statuses disagree until the next run,
// which readers tolerate.
func (u *sweepUsecase) expireDocuments(ctx context.Context, now time.Time, report *domain.SweepReport) {
	candidates, err := u.docsRepo.ListExpiryDue(ctx, now)
	if err != nil {
		logger.Log.Error("Document expiry pass query failed", "error", err)
		report.RecordErrors++
		return
	}
	for i := range candidates {
		docs := &candidates[i]
		if !lifecycle.DocumentExpiryDue(docs, now) {
			continue
		}
		if err := u.docsRepo.MarkExpired(ctx, docs.ID); err != nil {
			logger.Log.Error("Failed to expire documents", "documents_id", docs.ID, "error", err)
			report.RecordErrors++
			continue
		}
		report.DocumentsExpired++

		if err := u.companyRepo.SetStatusClearingAccreditation(ctx, docs.CompanyID, domain.CompanyStatusRevoked); err != nil {
			logger.Log.Error("Failed to revoke company after document expiry", "company_id", docs.CompanyID, "error", err)
			report.RecordErrors++
			continue
		}
		report.CompaniesRevoked++
	}
}

// Pass 3: expire vacancies whose application deadline has passed. The
// transition is monotonic; nothing here re-opens an expired vacancy.
func (u *sweepUsecase) expireVacancies(ctx context.Context, now time.Time, report *domain.SweepReport) {
	candidates, err := u.vacancyRepo.ListExpiryDue(ctx, now)
	if err != nil {
		logger.Log.Error("Vacancy expiry pass query failed", "error", err)
		report.RecordErrors++
		return
	}
	for i := range candidates {
		v := &candidates[i]
		if !lifecycle.VacancyExpiryDue(v, now) {
			continue
		}
		if err := u.vacancyRepo.MarkExpired(ctx, v.ID); err != nil {
			logger.Log.Error("Failed to expire vacancy", "vacancy_id", v.ID, "error", err)
			report.RecordErrors++
			continue
		}
		report.VacanciesExpired++
	}
}
