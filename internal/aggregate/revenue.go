package aggregate

import (
	"sort"

	"property-analytics-service/internal/model"
)

// Revenue groups payments three ways: paid amounts by calendar month, all
// amounts by payment type, and all amounts by payment status. Months with no
// paid payments are omitted rather than zero-filled. A paid payment without
// a paid date cannot be bucketed by month but still counts in the type and
// status groupings.
func Revenue(payments []model.Payment) model.RevenueAnalytics {
	type sumCount struct {
		amount float64
		count  int64
	}

	monthly := make(map[string]sumCount)
	byType := make(map[model.PaymentType]sumCount)
	byStatus := make(map[model.PaymentStatus]sumCount)

	for _, p := range payments {
		t := byType[p.Type]
		t.amount += p.Amount
		t.count++
		byType[p.Type] = t

		s := byStatus[p.Status]
		s.amount += p.Amount
		s.count++
		byStatus[p.Status] = s

		if p.Status == model.PaymentPaid && p.PaidAt != nil {
			key := monthKey(*p.PaidAt)
			m := monthly[key]
			m.amount += p.Amount
			m.count++
			monthly[key] = m
		}
	}

	result := model.RevenueAnalytics{
		MonthlyRevenue: make([]model.MonthlyRevenue, 0, len(monthly)),
		PaymentTypes:   make([]model.PaymentTypeBucket, 0, len(byType)),
		PaymentStatus:  make([]model.PaymentStatusBucket, 0, len(byStatus)),
	}

	for _, month := range sortedKeys(monthly) {
		bucket := monthly[month]
		result.MonthlyRevenue = append(result.MonthlyRevenue, model.MonthlyRevenue{
			Month:   month,
			Revenue: bucket.amount,
			Count:   bucket.count,
		})
	}

	for paymentType, bucket := range byType {
		result.PaymentTypes = append(result.PaymentTypes, model.PaymentTypeBucket{
			Type:   paymentType,
			Amount: bucket.amount,
			Count:  bucket.count,
		})
	}
	sort.Slice(result.PaymentTypes, func(i, j int) bool {
		return result.PaymentTypes[i].Type < result.PaymentTypes[j].Type
	})

	for status, bucket := range byStatus {
		result.PaymentStatus = append(result.PaymentStatus, model.PaymentStatusBucket{
			Status: status,
			Amount: bucket.amount,
			Count:  bucket.count,
		})
	}
	sort.Slice(result.PaymentStatus, func(i, j int) bool {
		return result.PaymentStatus[i].Status < result.PaymentStatus[j].Status
	})

	return result
}
