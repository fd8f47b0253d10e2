package stats

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dlsventas/comisiones-api/internal/domain/entity"
)

// ProductEntry es la aparición de un producto (o del resto) en una factura
// concreta dentro del desglose mensual.
type ProductEntry struct {
	NCF        string
	Date       time.Time
	Amount     decimal.Decimal
	ClientID   string
	ClientName string
}

// ProductBreakdown acumula todas las apariciones de un producto en el mes.
type ProductBreakdown struct {
	Name            string
	Percentage      decimal.Decimal
	Entries         []ProductEntry
	TotalAmount     decimal.Decimal
	TotalCommission decimal.Decimal
}

// Breakdown es el desglose mensual por producto, más la cubeta del resto y
// el gran total de comisión del mes.
type Breakdown struct {
	Year  int
	Month time.Month

	Products   []ProductBreakdown // descendente por ventas
	Rest       ProductBreakdown
	GrandTotal decimal.Decimal
}

// MonthlyBreakdown arma el desglose por producto del mes. Solo entran líneas
// con monto positivo; restPercentage etiqueta la cubeta del resto.
func MonthlyBreakdown(invoices []*entity.Invoice, clients []*entity.Client, year int, month time.Month, restPercentage decimal.Decimal) Breakdown {
	monthInvoices := FilterMonth(invoices, year, month)
	names := clientNames(clients)

	perProduct := map[string]*ProductBreakdown{}
	var order []string
	rest := ProductBreakdown{
		Name:            RestCategoryName,
		Percentage:      restPercentage,
		TotalAmount:     decimal.Zero,
		TotalCommission: decimal.Zero,
	}

	for _, inv := range monthInvoices {
		clientName := names[inv.ClientID]
		for _, p := range inv.Products {
			if !p.Amount.IsPositive() {
				continue
			}
			pb, ok := perProduct[p.ProductName]
			if !ok {
				pb = &ProductBreakdown{
					Name:            p.ProductName,
					Percentage:      p.Percentage,
					TotalAmount:     decimal.Zero,
					TotalCommission: decimal.Zero,
				}
				perProduct[p.ProductName] = pb
				order = append(order, p.ProductName)
			}
			pb.Entries = append(pb.Entries, ProductEntry{
				NCF:        inv.NCF,
				Date:       inv.InvoiceDate,
				Amount:     p.Amount,
				ClientID:   inv.ClientID,
				ClientName: clientName,
			})
			pb.TotalAmount = pb.TotalAmount.Add(p.Amount)
			pb.TotalCommission = pb.TotalCommission.Add(p.Commission)
		}
		if inv.RestAmount.IsPositive() {
			rest.Entries = append(rest.Entries, ProductEntry{
				NCF:        inv.NCF,
				Date:       inv.InvoiceDate,
				Amount:     inv.RestAmount,
				ClientID:   inv.ClientID,
				ClientName: clientName,
			})
			rest.TotalAmount = rest.TotalAmount.Add(inv.RestAmount)
			rest.TotalCommission = rest.TotalCommission.Add(inv.RestCommission)
		}
	}

	products := make([]ProductBreakdown, 0, len(perProduct))
	for _, name := range order {
		products = append(products, *perProduct[name])
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].TotalAmount.GreaterThan(products[j].TotalAmount)
	})

	grand := rest.TotalCommission
	for _, p := range products {
		grand = grand.Add(p.TotalCommission)
	}

	return Breakdown{
		Year:       year,
		Month:      month,
		Products:   products,
		Rest:       rest,
		GrandTotal: grand,
	}
}
