package service

import (
	"context"
	"sync"
	"time"

	"github.com/pasalpos/pasal-api/internal/domain/entity"
)

// memProductRepo is an in-memory ProductRepository for service tests.
type memProductRepo struct {
	mu       sync.Mutex
	products map[uint]*entity.Product
	nextID   uint
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[uint]*entity.Product), nextID: 1}
}

func (r *memProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == 0 {
		product.ID = r.nextID
		r.nextID++
	} else if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id uint) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	clone := *product
	return &clone, nil
}

func (r *memProductRepo) Update(_ context.Context, id uint, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil
	}
	if v, ok := fields["name"]; ok {
		product.Name = v.(string)
	}
	if v, ok := fields["barcode"]; ok {
		product.Barcode = v.(string)
	}
	if v, ok := fields["category"]; ok {
		product.Category = v.(string)
	}
	if v, ok := fields["price"]; ok {
		product.Price = v.(int64)
	}
	if v, ok := fields["cost_price"]; ok {
		product.CostPrice = v.(int64)
	}
	if v, ok := fields["stock"]; ok {
		product.Stock = v.(int)
	}
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) List(_ context.Context, _ string) ([]entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Product, 0, len(r.products))
	for id := uint(1); id < r.nextID; id++ {
		if product, ok := r.products[id]; ok {
			out = append(out, *product)
		}
	}
	return out, nil
}

func (r *memProductRepo) GetLowStock(_ context.Context, threshold int) ([]entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Product{}
	for id := uint(1); id < r.nextID; id++ {
		if product, ok := r.products[id]; ok && product.Stock < threshold {
			out = append(out, *product)
		}
	}
	return out, nil
}

func (r *memProductRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.products)), nil
}

func (r *memProductRepo) CountLowStock(_ context.Context, threshold int) (int64, error) {
	low, _ := r.GetLowStock(context.Background(), threshold)
	return int64(len(low)), nil
}

// memSaleRepo is an in-memory SaleRepository. CommitSale mirrors the
// transactional contract: stock is re-read per line, deleted products skip
// their decrement, and with enforceStock a shortfall rolls everything back.
type memSaleRepo struct {
	mu       sync.Mutex
	sales    map[uint]*entity.Sale
	nextID   uint
	products *memProductRepo
}

func newMemSaleRepo(products *memProductRepo) *memSaleRepo {
	return &memSaleRepo{sales: make(map[uint]*entity.Sale), nextID: 1, products: products}
}

func (r *memSaleRepo) CommitSale(_ context.Context, sale *entity.Sale, enforceStock bool) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products.mu.Lock()
	defer r.products.mu.Unlock()

	if enforceStock {
		insufficient := []string{}
		for _, item := range sale.Items {
			product, ok := r.products.products[item.ProductID]
			if !ok {
				continue
			}
			if product.Stock < item.Quantity {
				insufficient = append(insufficient, item.Name)
			}
		}
		if len(insufficient) > 0 {
			return insufficient, nil
		}
	}

	sale.ID = r.nextID
	r.nextID++
	for i := range sale.Items {
		sale.Items[i].SaleID = sale.ID
		if product, ok := r.products.products[sale.Items[i].ProductID]; ok {
			product.Stock -= sale.Items[i].Quantity
		}
	}
	clone := *sale
	clone.Items = append([]entity.SaleItem(nil), sale.Items...)
	r.sales[sale.ID] = &clone
	return nil, nil
}

func (r *memSaleRepo) GetByID(_ context.Context, id uint) (*entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sale, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	clone := *sale
	clone.Items = append([]entity.SaleItem(nil), sale.Items...)
	return &clone, nil
}

func (r *memSaleRepo) List(_ context.Context) ([]entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Sale{}
	for id := r.nextID; id >= 1; id-- {
		if sale, ok := r.sales[id]; ok {
			out = append(out, *sale)
		}
	}
	return out, nil
}

func (r *memSaleRepo) Recent(ctx context.Context, limit int) ([]entity.Sale, error) {
	sales, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(sales) > limit {
		sales = sales[:limit]
	}
	return sales, nil
}

func (r *memSaleRepo) SumTotalBetween(_ context.Context, start, end time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum int64
	for _, sale := range r.sales {
		if !sale.Date.Before(start) && sale.Date.Before(end) {
			sum += sale.Total
		}
	}
	return sum, nil
}

func (r *memSaleRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.sales)), nil
}

// memSettingsRepo is an in-memory SettingsRepository.
type memSettingsRepo struct {
	mu   sync.Mutex
	rows []entity.Setting
}

func (r *memSettingsRepo) GetAll(_ context.Context) ([]entity.Setting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.Setting(nil), r.rows...), nil
}

func (r *memSettingsRepo) ReplaceAll(_ context.Context, settings []entity.Setting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append([]entity.Setting(nil), settings...)
	return nil
}

// memCustomerRepo is an in-memory CustomerRepository.
type memCustomerRepo struct {
	mu        sync.Mutex
	customers map[uint]*entity.Customer
	nextID    uint
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: make(map[uint]*entity.Customer), nextID: 1}
}

func (r *memCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	customer.ID = r.nextID
	r.nextID++
	clone := *customer
	r.customers[customer.ID] = &clone
	return nil
}

func (r *memCustomerRepo) GetByID(_ context.Context, id uint) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	customer, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	clone := *customer
	return &clone, nil
}

func (r *memCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *customer
	r.customers[customer.ID] = &clone
	return nil
}

func (r *memCustomerRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.customers, id)
	return nil
}

func (r *memCustomerRepo) List(_ context.Context, _ string) ([]entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Customer{}
	for id := uint(1); id < r.nextID; id++ {
		if customer, ok := r.customers[id]; ok {
			out = append(out, *customer)
		}
	}
	return out, nil
}

func (r *memCustomerRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.customers)), nil
}
