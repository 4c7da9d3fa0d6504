package article

import (
	"math"
	"sort"
	"time"

	"snackstock-api/domain"
	"snackstock-api/entities"
)

// ClassifyExpiry computes the remaining days and freshness status for an
// expiry date. A nil expiry date yields (nil, "") and the caller leaves the
// derived fields out of the response entirely.
//
// Days are counted with ceiling division: an article expiring in 36 hours has
// 2 days left, not 1. The difference may be negative for articles already
// past their date; the ladder still classifies those as red.
func ClassifyExpiry(expiryDate *time.Time, now time.Time) (*int, string) {
	if expiryDate == nil {
		return nil, ""
	}

	daysLeft := int(math.Ceil(expiryDate.Sub(now).Hours() / 24))

	status := domain.StatusGreen
	if daysLeft <= 3 {
		status = domain.StatusRed
	} else if daysLeft <= 7 {
		status = domain.StatusYellow
	}

	return &daysLeft, status
}

// FilterCritical returns the articles expiring within daysThreshold days of
// now, soonest first. Already-expired articles (negative days left) and
// articles without an expiry date are excluded.
func FilterCritical(articles []*entities.Article, daysThreshold int, now time.Time) []*entities.Article {
	critical := make([]*entities.Article, 0)
	for _, a := range articles {
		daysLeft, _ := ClassifyExpiry(a.ExpiryDate, now)
		if daysLeft == nil {
			continue
		}
		if *daysLeft >= 0 && *daysLeft <= daysThreshold {
			critical = append(critical, a)
		}
	}

	sort.SliceStable(critical, func(i, j int) bool {
		return critical[i].ExpiryDate.Before(*critical[j].ExpiryDate)
	})

	return critical
}
