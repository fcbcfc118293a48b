package dataset

import (
	"fmt"
	"time"

	"github.com/promodesk/promodesk/internal/model"
)

// Issue is a data problem found in a loaded Dataset. Issues do not stop the
// console; they are logged so bad fixtures are noticed.
type Issue struct {
	Kind     string `json:"kind"`
	RecordID string `json:"recordId"`
	Problem  string `json:"problem"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s/%s: %s", i.Kind, i.RecordID, i.Problem)
}

// Validate reports duplicate IDs and intervals that end before they start.
func Validate(ds *Dataset) []Issue {
	var issues []Issue
	issues = append(issues, check(KindActivities, ds.Activities)...)
	issues = append(issues, check(KindCoupons, ds.Coupons)...)
	issues = append(issues, check(KindRetailers, ds.Retailers)...)
	issues = append(issues, check(KindProducts, ds.Products)...)
	issues = append(issues, check(KindMonitoringTasks, ds.MonitoringTasks)...)
	issues = append(issues, check(KindReceiveRecords, ds.ReceiveRecords)...)
	issues = append(issues, check(KindVerifyRecords, ds.VerifyRecords)...)
	issues = append(issues, check(KindMerchants, ds.Merchants)...)
	issues = append(issues, check(KindPriceRecords, ds.PriceRecords)...)
	return issues
}

func check[R model.Record](kind string, records []R) []Issue {
	var issues []Issue
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		id := r.RecordID()
		if id == "" {
			issues = append(issues, Issue{Kind: kind, Problem: "missing id"})
			continue
		}
		if _, dup := seen[id]; dup {
			issues = append(issues, Issue{Kind: kind, RecordID: id, Problem: "duplicate id"})
		}
		seen[id] = struct{}{}

		start, okStart := r.Date(model.FieldStartDate)
		end, okEnd := r.Date(model.FieldEndDate)
		if okStart && okEnd && end.Before(start) {
			issues = append(issues, Issue{Kind: kind, RecordID: id, Problem: "end date " + end.Format(time.DateOnly) + " before start date " + start.Format(time.DateOnly)})
		}
	}
	return issues
}
