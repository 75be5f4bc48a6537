package service

import (
	"context"
	"fmt"

	"sales/pkg/domain/model"
)

const (
	invoiceContentType = "application/pdf"
	unknownInvoiceName = "unknown"
)

type InvoiceService interface {
	Invoice(ctx context.Context, orderRef string) (*model.Invoice, error)
}

func NewInvoiceService(repo model.OrderRepository, renderer model.InvoiceRenderer) InvoiceService {
	return &invoiceService{repo: repo, renderer: renderer}
}

type invoiceService struct {
	repo     model.OrderRepository
	renderer model.InvoiceRenderer
}

func (s *invoiceService) Invoice(ctx context.Context, orderRef string) (*model.Invoice, error) {
	order, err := s.repo.Find(ctx, orderRef)
	if err != nil {
		return nil, err
	}

	body, err := s.renderer.Render(*order)
	if err != nil {
		return nil, err
	}

	return &model.Invoice{
		Filename:    InvoiceFilename(*order),
		ContentType: invoiceContentType,
		Body:        body,
	}, nil
}

// InvoiceFilename names the file after the order id. Orders without one use
// their storage key, which keeps the name free of path separators.
func InvoiceFilename(order model.Order) string {
	name := order.Ref()
	if name == "" {
		name = unknownInvoiceName
	}
	return fmt.Sprintf("invoice_%s.pdf", name)
}
