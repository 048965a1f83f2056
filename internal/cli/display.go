package cli

import (
	"fmt"
	"strings"

	"dewaterRecommender/domain"
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// printResult renders the ranked supplier list plus a best-pick summary.
func (a *App) printResult(result *domain.RecommendationResult) {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, strings.Repeat("=", 70))
	fmt.Fprintln(a.out, "RECOMMENDATION RESULTS")
	fmt.Fprintln(a.out, strings.Repeat("=", 70))

	fmt.Fprintf(a.out, "Product:   %s\n", result.ProductType)
	fmt.Fprintf(a.out, "Urgency:   %s\n", result.Urgency)
	fmt.Fprintf(a.out, "Quantity:  %d\n", result.Quantity)
	fmt.Fprintf(a.out, "Budget:    $%.2f\n", result.Budget)
	fmt.Fprintf(a.out, "Options:   %d\n", result.TotalOptions)

	fmt.Fprintln(a.out, "\nSUPPLIER RANKING")
	fmt.Fprintln(a.out, strings.Repeat("-", 70))

	for i, rec := range result.Recommendations {
		budgetMark := "within budget"
		if !rec.WithinBudget {
			budgetMark = "OVER BUDGET"
		}

		fmt.Fprintf(a.out, "\n%d. %s (%s) - %s\n", i+1, rec.SupplierName, rec.Country, rec.RecommendationLevel)
		fmt.Fprintf(a.out, "   Final score:   %.3f (ML score %.3f)\n", rec.FinalScore, rec.ProbabilityScore)
		fmt.Fprintf(a.out, "   Quality:       %.1f/5.0\n", rec.QualityRating)
		fmt.Fprintf(a.out, "   Unit price:    $%.2f\n", rec.PriceUSD)
		fmt.Fprintf(a.out, "   Total cost:    $%.2f (%s)\n", rec.TotalCost, budgetMark)
		fmt.Fprintf(a.out, "   Delivery:      %d days\n", rec.DeliveryDays)
		fmt.Fprintf(a.out, "   Payment terms: %d days\n", rec.PaymentTermsDays)
		fmt.Fprintf(a.out, "   Shipping included: %s, express: %s\n",
			yesNo(rec.ShippingIncluded), yesNo(rec.ExpressAvailable))
	}

	if len(result.Recommendations) == 0 {
		return
	}

	best := result.Recommendations[0]
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, strings.Repeat("=", 70))
	fmt.Fprintln(a.out, "TOP PICK")
	fmt.Fprintln(a.out, strings.Repeat("=", 70))
	fmt.Fprintf(a.out, "Supplier:   %s\n", best.SupplierName)
	fmt.Fprintf(a.out, "Rating:     %s\n", best.RecommendationLevel)
	fmt.Fprintf(a.out, "Total cost: $%.2f\n", best.TotalCost)
	fmt.Fprintf(a.out, "Quality:    %.1f/5.0\n", best.QualityRating)
	fmt.Fprintf(a.out, "Delivery:   %d days\n", best.DeliveryDays)
}
