package usecase

import (
	"context"
	"sort"

	"prenatal-care-api/internal/converter"
	"prenatal-care-api/internal/delivery/dto"
	"prenatal-care-api/internal/domain/entity"
	"prenatal-care-api/internal/domain/gestation"
	"prenatal-care-api/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	topExamTypesLimit   = 10
	recentExamsPerType  = 5
	examResultMaxLength = 100
	visitSummaryLimit   = 100
	dueSoonDays         = 7
	dueLaterDays        = 30
)

type ReportUsecase interface {
	GeneralStatistics(ctx context.Context) (*dto.GeneralReportResponse, error)
	PatientsByPeriod(ctx context.Context, req *dto.ReportPeriodRequest) (*dto.PatientsByPeriodResponse, error)
	VisitsByPeriod(ctx context.Context, req *dto.ReportPeriodRequest) (*dto.VisitsByPeriodResponse, error)
	ExamsByType(ctx context.Context) (*dto.ExamsByTypeResponse, error)
	UpcomingDueDates(ctx context.Context, req *dto.UpcomingDueDatesRequest) (*dto.UpcomingDueDatesResponse, error)
}

type reportUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	clock      Clock
	reportRepo repository.ReportRepository
}

func NewReportUsecase(db *gorm.DB, log *logrus.Logger, clock Clock, reportRepo repository.ReportRepository) ReportUsecase {
	return &reportUsecase{
		db:         db,
		log:        log,
		clock:      clock,
		reportRepo: reportRepo,
	}
}

func (u *reportUsecase) GeneralStatistics(ctx context.Context) (*dto.GeneralReportResponse, error) {
	day := today(u.clock)
	db := u.db.WithContext(ctx)

	var patients, visits, exams, withVisits, dueSoon int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		patients, err = u.reportRepo.CountPatients(gctx, db)
		return err
	})
	g.Go(func() (err error) {
		visits, err = u.reportRepo.CountVisits(gctx, db)
		return err
	})
	g.Go(func() (err error) {
		exams, err = u.reportRepo.CountExams(gctx, db)
		return err
	})
	g.Go(func() (err error) {
		withVisits, err = u.reportRepo.CountPatientsWithVisits(gctx, db)
		return err
	})
	g.Go(func() (err error) {
		dueSoon, err = u.reportRepo.CountPatientsDue(gctx, db, entity.DateRange{Start: day, End: day.AddDate(0, 0, dueLaterDays)})
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to count totals: %+v", err)
		return nil, err
	}

	response := &dto.GeneralReportResponse{
		Totals: dto.GeneralTotals{
			Patients:            patients,
			Visits:              visits,
			Exams:               exams,
			AvgVisitsPerPatient: ratio(visits, withVisits, 2),
			DueNext30Days:       dueSoon,
		},
		GeneratedAt: u.clock.Now(),
	}

	loc := u.clock.Location()
	for _, month := range trailingMonths(firstOfMonth(day), trendMonths) {
		label := month.Start.Format("2006-01")

		registered, err := u.reportRepo.CountPatientsRegistered(ctx, u.db, dayWindow(month.Start, month.End, loc))
		if err != nil {
			u.log.Warnf("Failed to count patients by month: %+v", err)
			return nil, err
		}
		monthVisits, err := u.reportRepo.CountVisitsIn(ctx, u.db, month)
		if err != nil {
			u.log.Warnf("Failed to count visits by month: %+v", err)
			return nil, err
		}
		monthExams, err := u.reportRepo.CountExamsIn(ctx, u.db, month)
		if err != nil {
			u.log.Warnf("Failed to count exams by month: %+v", err)
			return nil, err
		}

		response.Trends.Patients = append(response.Trends.Patients, dto.MonthCount{Month: label, Total: registered})
		response.Trends.Visits = append(response.Trends.Visits, dto.MonthCount{Month: label, Total: monthVisits})
		response.Trends.Exams = append(response.Trends.Exams, dto.MonthCount{Month: label, Total: monthExams})
	}

	top, err := u.reportRepo.CountExamsByType(ctx, u.db, entity.DateRange{}, topExamTypesLimit)
	if err != nil {
		u.log.Warnf("Failed to count exam types: %+v", err)
		return nil, err
	}
	response.TopExamTypes = toGroupCounts(top)

	return response, nil
}

func (u *reportUsecase) PatientsByPeriod(ctx context.Context, req *dto.ReportPeriodRequest) (*dto.PatientsByPeriodResponse, error) {
	day := today(u.clock)
	period, err := resolvePeriod(req.Start, req.End, day)
	if err != nil {
		return nil, err
	}

	loc := u.clock.Location()
	patients, err := u.reportRepo.FindPatientsRegistered(ctx, u.db, dayWindow(period.Start, period.End, loc))
	if err != nil {
		u.log.Warnf("Failed to find patients by period: %+v", err)
		return nil, err
	}

	response := &dto.PatientsByPeriodResponse{
		Period:   toPeriod(period, nil),
		PerDay:   []dto.DayCount{},
		Patients: make([]dto.PatientSummary, 0, len(patients)),
	}
	response.Stats.Total = int64(len(patients))

	perDay := make(map[string]int64)
	var ages []int
	for i := range patients {
		p := &patients[i]
		perDay[p.RegisteredAt.In(loc).Format(dateLayout)]++
		if !p.DateOfBirth.IsZero() {
			ages = append(ages, gestation.AgeYears(p.DateOfBirth, day))
		}
		response.Patients = append(response.Patients, dto.PatientSummary{
			ID:           p.ID,
			Name:         p.Name,
			DateOfBirth:  converter.FormatDate(p.DateOfBirth),
			RegisteredAt: p.RegisteredAt,
			DueDate:      converter.PatientToResponse(p, day).DueDate,
		})
	}

	for d, total := range perDay {
		response.PerDay = append(response.PerDay, dto.DayCount{Day: d, Total: total})
	}
	sort.Slice(response.PerDay, func(i, j int) bool {
		return response.PerDay[i].Day < response.PerDay[j].Day
	})

	if len(ages) > 0 {
		sum, lo, hi := 0, ages[0], ages[0]
		for _, a := range ages {
			sum += a
			lo = min(lo, a)
			hi = max(hi, a)
		}
		response.Stats.AgeMean = ratio(int64(sum), int64(len(ages)), 1)
		response.Stats.AgeMin = lo
		response.Stats.AgeMax = hi
	}

	return response, nil
}

func (u *reportUsecase) VisitsByPeriod(ctx context.Context, req *dto.ReportPeriodRequest) (*dto.VisitsByPeriodResponse, error) {
	period, err := resolvePeriod(req.Start, req.End, today(u.clock))
	if err != nil {
		return nil, err
	}

	visits, err := u.reportRepo.FindVisitsIn(ctx, u.db, period)
	if err != nil {
		u.log.Warnf("Failed to find visits by period: %+v", err)
		return nil, err
	}

	response := &dto.VisitsByPeriodResponse{
		Period: toPeriod(period, nil),
		Visits: make([]dto.VisitSummary, 0, min(len(visits), visitSummaryLimit)),
	}
	response.Stats.Total = int64(len(visits))

	byProvider := make(map[string]int64)
	byLocation := make(map[string]int64)
	weightSum := decimal.Zero
	weighed := 0
	for i := range visits {
		v := &visits[i]
		byProvider[v.Provider]++
		byLocation[v.Location]++

		var weight *float64
		if v.Weight.IsPositive() {
			weightSum = weightSum.Add(v.Weight)
			weighed++
			w := v.Weight.InexactFloat64()
			weight = &w
		}

		if i < visitSummaryLimit {
			response.Visits = append(response.Visits, dto.VisitSummary{
				ID:            v.ID,
				PatientName:   v.Patient.Name,
				Date:          converter.FormatDate(v.Date),
				Provider:      v.Provider,
				Location:      v.Location,
				Weight:        weight,
				BloodPressure: v.BloodPressure,
			})
		}
	}

	if weighed > 0 {
		response.Stats.MeanWeight = weightSum.Div(decimal.NewFromInt(int64(weighed))).Round(2).InexactFloat64()
	}
	response.Stats.ByProvider = rankCounts(byProvider)
	response.Stats.ByLocation = rankCounts(byLocation)

	return response, nil
}

func (u *reportUsecase) ExamsByType(ctx context.Context) (*dto.ExamsByTypeResponse, error) {
	day := today(u.clock)

	byType, err := u.reportRepo.CountExamsByType(ctx, u.db, entity.DateRange{}, 0)
	if err != nil {
		u.log.Warnf("Failed to count exams by type: %+v", err)
		return nil, err
	}

	recent, err := u.reportRepo.CountExamsByType(ctx, u.db, entity.DateRange{Start: day.AddDate(0, 0, -defaultReportDays)}, 0)
	if err != nil {
		u.log.Warnf("Failed to count recent exams by type: %+v", err)
		return nil, err
	}

	response := &dto.ExamsByTypeResponse{
		ByType:     toGroupCounts(byType),
		Last30Days: toGroupCounts(recent),
		Details:    make([]dto.ExamTypeDetail, 0, len(byType)),
	}
	response.Summary.TypeCount = len(byType)

	for _, group := range byType {
		response.Summary.ExamCount += group.Total

		exams, err := u.reportRepo.FindRecentExamsByType(ctx, u.db, group.Key, recentExamsPerType)
		if err != nil {
			u.log.Warnf("Failed to find recent exams: %+v", err)
			return nil, err
		}

		detail := dto.ExamTypeDetail{
			ExamType: group.Key,
			Total:    group.Total,
			Recent:   make([]dto.ExamSummary, 0, len(exams)),
		}
		for _, e := range exams {
			detail.Recent = append(detail.Recent, dto.ExamSummary{
				ID:          e.ID,
				PatientName: e.Patient.Name,
				Date:        converter.FormatDate(e.Date),
				Result:      truncateText(e.Result, examResultMaxLength),
			})
		}
		response.Details = append(response.Details, detail)
	}

	return response, nil
}

func (u *reportUsecase) UpcomingDueDates(ctx context.Context, req *dto.UpcomingDueDatesRequest) (*dto.UpcomingDueDatesResponse, error) {
	days := defaultReportDays
	if req.Days != nil {
		days = *req.Days
	}
	if days < 0 {
		return nil, ErrInvalidLookahead
	}

	day := today(u.clock)
	period := entity.DateRange{Start: day, End: day.AddDate(0, 0, days)}

	patients, err := u.reportRepo.FindPatientsDue(ctx, u.db, period)
	if err != nil {
		u.log.Warnf("Failed to find upcoming due dates: %+v", err)
		return nil, err
	}

	response := &dto.UpcomingDueDatesResponse{
		Period: toPeriod(period, &days),
		ByWeek: []dto.DueWeekGroup{},
		All:    make([]dto.UpcomingDue, 0, len(patients)),
	}

	soon := day.AddDate(0, 0, min(dueSoonDays, days))
	later := day.AddDate(0, 0, min(dueLaterDays, days))
	weekIndex := make(map[string]int)

	for i := range patients {
		p := &patients[i]
		if p.DueDate == nil {
			continue
		}
		due := *p.DueDate

		item := dto.UpcomingDue{
			ID:            p.ID,
			Name:          p.Name,
			DueDate:       converter.FormatDate(due),
			Phone:         p.Phone,
			Email:         p.Email,
			DaysRemaining: gestation.DaysBetween(day, due),
		}
		if weeks, ok := gestation.WeeksAtDueDate(p.LastMenstrualPeriod, due); ok {
			item.WeeksAtDueDate = &weeks
		}

		response.All = append(response.All, item)
		if !due.After(soon) {
			response.Stats.DueWithin7++
		}
		if !due.After(later) {
			response.Stats.DueWithin30++
		}

		key := gestation.WeekKey(due)
		idx, ok := weekIndex[key]
		if !ok {
			idx = len(response.ByWeek)
			weekIndex[key] = idx
			response.ByWeek = append(response.ByWeek, dto.DueWeekGroup{Week: key})
		}
		response.ByWeek[idx].Patients = append(response.ByWeek[idx].Patients, item)
	}
	response.Stats.Total = len(response.All)

	return response, nil
}

// ratio divides num by den rounded to places, and is 0 when den is 0.
func ratio(num, den int64, places int32) float64 {
	if den == 0 {
		return 0
	}
	return decimal.NewFromInt(num).Div(decimal.NewFromInt(den)).Round(places).InexactFloat64()
}

// rankCounts orders counts by total descending, then name ascending.
func rankCounts(counts map[string]int64) []dto.GroupCount {
	groups := make([]dto.GroupCount, 0, len(counts))
	for name, total := range counts {
		groups = append(groups, dto.GroupCount{Name: name, Total: total})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Total != groups[j].Total {
			return groups[i].Total > groups[j].Total
		}
		return groups[i].Name < groups[j].Name
	})
	return groups
}

func toGroupCounts(rows []entity.GroupCount) []dto.GroupCount {
	groups := make([]dto.GroupCount, len(rows))
	for i, row := range rows {
		groups[i] = dto.GroupCount{Name: row.Key, Total: row.Total}
	}
	return groups
}

func toPeriod(r entity.DateRange, days *int) dto.Period {
	return dto.Period{
		Start: converter.FormatDate(r.Start),
		End:   converter.FormatDate(r.End),
		Days:  days,
	}
}
