package dashboardService

import (
	"FinanceTracker/internal/api/dashboard"
	"FinanceTracker/internal/entity"
	"FinanceTracker/internal/report"
	contextPkg "FinanceTracker/pkg/context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

type snapshot struct {
	transactions []entity.Transaction
	table        *report.CategoryTable
	now          time.Time
}

// load fetches both collections at once; either failure cancels the other.
func (s *dashboardService) load(ctx context.Context, userID string, locale entity.Locale) (snapshot, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var txs []entity.Transaction
	var custom []entity.CustomCategory

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		repo, err := s.transactionRepository.NewClient(false)
		if err != nil {
			return err
		}
		txs, err = repo.Transactions.GetTransactionsByUserID(gctx, userID)
		return err
	})

	g.Go(func() error {
		repo, err := s.categoryRepository.NewClient(false)
		if err != nil {
			return err
		}
		custom, err = repo.Categories.GetCategoriesByUserID(gctx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to load dashboard data")
		return snapshot{}, dashboard.ErrLoadDashboard
	}

	return snapshot{
		transactions: txs,
		table:        report.NewCategoryTable(locale, custom),
		now:          s.now().In(s.location),
	}, nil
}

func (s *dashboardService) Summary(ctx context.Context, userID string) (report.Totals, error) {
	snap, err := s.load(ctx, userID, entity.DefaultLocale)
	if err != nil {
		return report.Totals{}, err
	}

	return report.ComputeTotals(snap.transactions), nil
}

func (s *dashboardService) Groups(ctx context.Context, userID string, locale entity.Locale) (dashboard.GroupsResponse, error) {
	snap, err := s.load(ctx, userID, locale)
	if err != nil {
		return dashboard.GroupsResponse{}, err
	}

	return groupsView(snap), nil
}

func (s *dashboardService) Distribution(ctx context.Context, userID string, view string, locale entity.Locale) (dashboard.DistributionResponse, error) {
	mode, err := report.ParseViewMode(view)
	if err != nil {
		return dashboard.DistributionResponse{}, dashboard.ErrInvalidViewMode
	}

	snap, err := s.load(ctx, userID, locale)
	if err != nil {
		return dashboard.DistributionResponse{}, err
	}

	return distributionView(snap, mode)
}

func (s *dashboardService) Bills(ctx context.Context, userID string, locale entity.Locale) (dashboard.BillsResponse, error) {
	snap, err := s.load(ctx, userID, locale)
	if err != nil {
		return dashboard.BillsResponse{}, err
	}

	return dashboard.BillsResponse{Bills: billsView(snap)}, nil
}

func (s *dashboardService) Overview(ctx context.Context, userID string, view string, locale entity.Locale) (dashboard.OverviewResponse, error) {
	mode, err := report.ParseViewMode(view)
	if err != nil {
		return dashboard.OverviewResponse{}, dashboard.ErrInvalidViewMode
	}

	snap, err := s.load(ctx, userID, locale)
	if err != nil {
		return dashboard.OverviewResponse{}, err
	}

	distribution, err := distributionView(snap, mode)
	if err != nil {
		return dashboard.OverviewResponse{}, err
	}

	return dashboard.OverviewResponse{
		Totals:       report.ComputeTotals(snap.transactions),
		Groups:       groupsView(snap),
		Distribution: distribution,
		Bills:        billsView(snap),
	}, nil
}

func groupsView(snap snapshot) dashboard.GroupsResponse {
	groups := report.GroupByCategory(snap.transactions)

	return dashboard.GroupsResponse{
		Income:  toGroupResponses(groups.Income, snap.table),
		Expense: toGroupResponses(groups.Expense, snap.table),
	}
}

func toGroupResponses(groups []report.CategoryGroup, table *report.CategoryTable) []dashboard.GroupResponse {
	res := make([]dashboard.GroupResponse, 0, len(groups))
	for _, g := range groups {
		info := table.Resolve(g.Category)
		views := make([]dashboard.TransactionView, 0, len(g.Transactions))
		for _, t := range g.Transactions {
			views = append(views, dashboard.TransactionView{
				ID:          t.ID,
				Description: t.Description,
				Amount:      t.Amount,
				Date:        t.Date.Format(time.RFC3339),
				Type:        string(t.Type),
				Category:    t.Category,
			})
		}
		res = append(res, dashboard.GroupResponse{
			Category:     g.Category,
			Name:         info.Name,
			Color:        info.Color,
			Total:        g.Total,
			Transactions: views,
		})
	}
	return res
}

func distributionView(snap snapshot, mode report.ViewMode) (dashboard.DistributionResponse, error) {
	shares, window, err := report.Distribution(snap.transactions, mode, snap.now)
	if err != nil {
		return dashboard.DistributionResponse{}, dashboard.ErrInvalidViewMode
	}

	res := dashboard.DistributionResponse{
		View:   string(mode),
		Window: window,
		Empty:  len(shares) == 0,
		Shares: make([]dashboard.ShareResponse, 0, len(shares)),
		Arcs:   make([]dashboard.ArcResponse, 0, len(shares)),
	}

	total := decimal.Zero
	for _, sh := range shares {
		info := snap.table.Resolve(sh.Category)
		total = total.Add(decimal.NewFromFloat(sh.Total))
		res.Shares = append(res.Shares, dashboard.ShareResponse{
			Category:   sh.Category,
			Name:       info.Name,
			Color:      info.Color,
			Total:      sh.Total,
			Percentage: sh.Percentage,
		})
	}

	res.Total = total.InexactFloat64()

	for _, arc := range report.PieArcs(shares, pieCenter, pieCenter, pieRadius) {
		info := snap.table.Resolve(arc.Category)
		res.Arcs = append(res.Arcs, dashboard.ArcResponse{Arc: arc, Name: info.Name, Color: info.Color})
	}

	return res, nil
}

func billsView(snap snapshot) []dashboard.BillResponse {
	bills := report.UpcomingBills(snap.transactions, snap.now)
	locale := snap.table.Locale()

	res := make([]dashboard.BillResponse, 0, len(bills))
	for _, b := range bills {
		info := snap.table.Resolve(b.Transaction.Category)
		res = append(res, dashboard.BillResponse{
			ID:          b.Transaction.ID,
			Description: b.Transaction.Description,
			Amount:      b.Transaction.Amount,
			Category:    b.Transaction.Category,
			Name:        info.Name,
			Color:       info.Color,
			DueDate:     b.Transaction.Recurrence.DueDate.Format("2006-01-02"),
			IsPaid:      b.Transaction.Recurrence.IsPaid,
			DiffDays:    b.DiffDays,
			Status:      string(b.Status),
			StatusText:  b.StatusText(locale),
		})
	}
	return res
}
