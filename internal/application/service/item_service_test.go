package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sellbridge/consign-api/internal/domain/entity"
	"github.com/sellbridge/consign-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

type fakeItemRepo struct {
	items        map[uuid.UUID]*entity.Item
	incrementErr error
}

func (f *fakeItemRepo) Create(ctx context.Context, item *entity.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakeItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	return f.items[id], nil
}

func (f *fakeItemRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Item, error) {
	var out []entity.Item
	for _, id := range ids {
		if item, ok := f.items[id]; ok {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeItemRepo) GetBySKU(ctx context.Context, sku string) (*entity.Item, error) {
	for _, item := range f.items {
		if item.SKU == sku {
			return item, nil
		}
	}
	return nil, nil
}

func (f *fakeItemRepo) Update(ctx context.Context, item *entity.Item) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

func (f *fakeItemRepo) List(ctx context.Context, params *repository.ItemFilterParams) ([]entity.Item, int64, error) {
	return nil, 0, nil
}

func (f *fakeItemRepo) AtomicDecrementBatch(ctx context.Context, quantities map[uuid.UUID]int) ([]uuid.UUID, error) {
	return nil, nil
}

func (f *fakeItemRepo) AtomicIncrementBatch(ctx context.Context, quantities map[uuid.UUID]int) error {
	return f.incrementErr
}

func newItemFixture(t *testing.T) (*ItemService, *entity.Consignor, *fakeItemRepo) {
	t.Helper()

	consignor := &entity.Consignor{
		ID:              uuid.New(),
		ConsignorNumber: "CSN-0001",
		Name:            "Alice Vendor",
		DefaultSplit:    decimal.RequireFromString("0.6"),
		Active:          true,
	}
	consignors := &fakeConsignorRepo{consignors: map[uuid.UUID]*entity.Consignor{consignor.ID: consignor}}
	items := &fakeItemRepo{items: make(map[uuid.UUID]*entity.Item)}

	return NewItemService(items, consignors), consignor, items
}

func TestCreateItem_PriceStoredAsRoundedCents(t *testing.T) {
	svc, consignor, _ := newItemFixture(t)

	// Prices whose dollars-times-100 is not exactly representable in
	// binary floating point; truncation would lose a cent.
	tests := []struct {
		price float64
		want  int64
	}{
		{19.99, 1999},
		{0.29, 29},
		{10.10, 1010},
		{4.56, 456},
		{100.00, 10000},
	}

	for _, tt := range tests {
		item, err := svc.CreateItem(context.Background(), &CreateItemInput{
			ConsignorID: consignor.ID,
			Name:        "Brass Candlestick",
			Price:       tt.price,
			Quantity:    1,
		})
		if err != nil {
			t.Fatalf("CreateItem(%.2f) error = %v", tt.price, err)
		}
		if item.Price != tt.want {
			t.Errorf("CreateItem(%.2f) stored %d cents, want %d", tt.price, item.Price, tt.want)
		}
	}
}

func TestUpdateItem_PriceStoredAsRoundedCents(t *testing.T) {
	svc, consignor, _ := newItemFixture(t)

	item, err := svc.CreateItem(context.Background(), &CreateItemInput{
		ConsignorID: consignor.ID,
		Name:        "Brass Candlestick",
		Price:       5.00,
		Quantity:    1,
	})
	if err != nil {
		t.Fatalf("CreateItem() error = %v", err)
	}

	newPrice := 19.99
	updated, err := svc.UpdateItem(context.Background(), item.ID, &UpdateItemInput{Price: &newPrice})
	if err != nil {
		t.Fatalf("UpdateItem() error = %v", err)
	}
	if updated.Price != 1999 {
		t.Errorf("UpdateItem(19.99) stored %d cents, want 1999", updated.Price)
	}
}

func TestCreateItem_GeneratesSKUAndRejectsDuplicates(t *testing.T) {
	svc, consignor, _ := newItemFixture(t)

	first, err := svc.CreateItem(context.Background(), &CreateItemInput{
		ConsignorID: consignor.ID,
		Name:        "Oak Side Table",
		SKU:         "OAK-001",
		Price:       45.00,
		Quantity:    1,
	})
	if err != nil {
		t.Fatalf("CreateItem() error = %v", err)
	}
	if first.SKU != "OAK-001" {
		t.Errorf("SKU = %q, want OAK-001", first.SKU)
	}

	if _, err := svc.CreateItem(context.Background(), &CreateItemInput{
		ConsignorID: consignor.ID,
		Name:        "Another Table",
		SKU:         "OAK-001",
		Price:       30.00,
		Quantity:    1,
	}); err == nil {
		t.Error("CreateItem() with duplicate SKU error = nil, want conflict")
	}

	generated, err := svc.CreateItem(context.Background(), &CreateItemInput{
		ConsignorID: consignor.ID,
		Name:        "Unlabeled Vase",
		Price:       12.00,
		Quantity:    1,
	})
	if err != nil {
		t.Fatalf("CreateItem() error = %v", err)
	}
	if generated.SKU == "" {
		t.Error("SKU not generated for item without one")
	}
}
