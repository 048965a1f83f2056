// Package cli implements the interactive console flow around the shared
// recommendation service: product/urgency/quantity/budget prompts, the
// ranked result printout, and the search loop.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"dewaterRecommender/domain"
)

type RecommenderService interface {
	Recommend(ctx context.Context, req domain.RecommendationRequest) (*domain.RecommendationResult, error)
	AvailableProducts(ctx context.Context) (domain.ProductCatalog, error)
	SuppliersFor(ctx context.Context, productType string) ([]domain.SupplierOffer, error)
}

type App struct {
	svc RecommenderService
	in  io.Reader
	out io.Writer
}

func New(svc RecommenderService, in io.Reader, out io.Writer) *App {
	return &App{
		svc: svc,
		in:  in,
		out: out,
	}
}

// Run drives the search loop until the user declines another search or
// the form is aborted.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, strings.Repeat("=", 70))
	fmt.Fprintln(a.out, "DEWATERING SOLUTIONS - SUPPLIER RECOMMENDER")
	fmt.Fprintln(a.out, strings.Repeat("=", 70))

	for {
		req, err := a.collectRequest(ctx)
		if err != nil {
			return err
		}

		result, err := a.svc.Recommend(ctx, *req)
		if err != nil {
			var validationErr *domain.ValidationError
			var notFoundErr *domain.NotFoundError
			if errors.As(err, &validationErr) || errors.As(err, &notFoundErr) {
				fmt.Fprintf(a.out, "\nERROR: %s\n", err.Error())
				continue
			}
			return err
		}

		a.printResult(result)

		again, err := a.confirm("Run another search?")
		if err != nil {
			return err
		}
		if !again {
			fmt.Fprintln(a.out, "\nThanks for using the supplier recommender.")
			return nil
		}
	}
}

// collectRequest walks the user through the four request parameters.
func (a *App) collectRequest(ctx context.Context) (*domain.RecommendationRequest, error) {
	products, err := a.svc.AvailableProducts(ctx)
	if err != nil {
		return nil, err
	}

	productOptions, err := a.productOptions(ctx, products)
	if err != nil {
		return nil, err
	}

	var (
		productType string
		urgency     string
		quantityRaw string
		budgetRaw   string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Product").
				Description("Filtration products first, then sensors").
				Options(productOptions...).
				Value(&productType),
			huh.NewSelect[string]().
				Title("Urgency").
				Options(
					huh.NewOption(domain.UrgencyLow, domain.UrgencyLow),
					huh.NewOption(domain.UrgencyMedium, domain.UrgencyMedium),
					huh.NewOption(domain.UrgencyHigh, domain.UrgencyHigh),
					huh.NewOption(domain.UrgencyCritical, domain.UrgencyCritical),
				).
				Value(&urgency),
			huh.NewInput().
				Title("Quantity required").
				Placeholder("1").
				Value(&quantityRaw).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n <= 0 {
						return fmt.Errorf("quantity must be a number greater than 0")
					}
					return nil
				}),
			huh.NewInput().
				Title("Available budget (USD)").
				Placeholder("10000").
				Value(&budgetRaw).
				Validate(func(s string) error {
					b, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil || b <= 0 {
						return fmt.Errorf("budget must be a number greater than 0")
					}
					return nil
				}),
		),
	).WithInput(a.in).WithOutput(a.out)

	if err := a.runForm(form); err != nil {
		return nil, fmt.Errorf("search form failed: %w", err)
	}

	quantity, _ := strconv.Atoi(strings.TrimSpace(quantityRaw))
	budget, _ := strconv.ParseFloat(strings.TrimSpace(budgetRaw), 64)

	return &domain.RecommendationRequest{
		ProductType: productType,
		Urgency:     urgency,
		Quantity:    quantity,
		Budget:      budget,
	}, nil
}

// productOptions lists every product with the suppliers offering it.
func (a *App) productOptions(ctx context.Context, products domain.ProductCatalog) ([]huh.Option[string], error) {
	all := make([]string, 0, len(products.Filtration)+len(products.Sensors))
	all = append(all, products.Filtration...)
	all = append(all, products.Sensors...)

	options := make([]huh.Option[string], 0, len(all))
	for _, product := range all {
		offers, err := a.svc.SuppliersFor(ctx, product)
		if err != nil {
			return nil, err
		}

		seen := make(map[string]struct{}, len(offers))
		suppliers := make([]string, 0, len(offers))
		for _, o := range offers {
			if _, dup := seen[o.SupplierName]; dup {
				continue
			}
			seen[o.SupplierName] = struct{}{}
			suppliers = append(suppliers, o.SupplierName)
		}

		label := fmt.Sprintf("%s  (%s)", product, strings.Join(suppliers, ", "))
		options = append(options, huh.NewOption(label, product))
	}

	return options, nil
}

func (a *App) confirm(question string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithInput(a.in).WithOutput(a.out)

	if err := a.runForm(form); err != nil {
		return false, fmt.Errorf("confirm prompt failed: %w", err)
	}

	return confirmed, nil
}

// runForm falls back to accessible mode when input is not a terminal
// (pipes, tests).
func (a *App) runForm(form *huh.Form) error {
	if f, ok := a.in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}
	return form.Run()
}
