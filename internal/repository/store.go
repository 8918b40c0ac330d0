package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"storefront/internal/models"
)

// ErrNotFound indica que el id referenciado no existe en el documento
var ErrNotFound = errors.New("not found")

// document es el contenido completo del archivo de datos
type document struct {
	Products []models.Product `json:"products"`
	Orders   []models.Order   `json:"orders"`
}

// Store persiste productos y pedidos en un único documento JSON.
// Cada operación carga el documento entero, lo muta en memoria y lo
// reescribe completo. El mutex serializa ese ciclo frente a peticiones
// concurrentes.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// load lee el documento del disco. Archivo ausente o corrupto se trata
// como primer arranque: se escribe el catálogo semilla y se continúa.
func (s *Store) load() (*document, error) {
	data, err := os.ReadFile(s.path)
	if err == nil {
		var doc document
		uerr := json.Unmarshal(data, &doc)
		if uerr == nil {
			return &doc, nil
		}
		log.WithError(uerr).Warn("data file unreadable, reseeding catalog")
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	doc := seedDocument()
	if werr := s.write(doc); werr != nil {
		return nil, werr
	}
	return doc, nil
}

func (s *Store) write(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// ListProducts lista el catálogo completo
func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Products, nil
}

// GetProduct obtiene un producto por id
func (s *Store) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Products {
		if doc.Products[i].ID == id {
			p := doc.Products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// CreateProduct crea un producto con id generado. Stock omitido vale 10.
func (s *Store) CreateProduct(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	stock := 10
	if input.Stock != nil {
		stock = *input.Stock
	}

	product := models.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Category:    input.Category,
		Stock:       stock,
	}

	doc.Products = append(doc.Products, product)
	if err := s.write(doc); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct aplica una actualización parcial sobre un producto existente
func (s *Store) UpdateProduct(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range doc.Products {
		if doc.Products[i].ID != id {
			continue
		}
		p := &doc.Products[i]
		if update.Name != nil {
			p.Name = *update.Name
		}
		if update.Description != nil {
			p.Description = *update.Description
		}
		if update.Price != nil {
			p.Price = *update.Price
		}
		if update.Image != nil {
			p.Image = *update.Image
		}
		if update.Category != nil {
			p.Category = *update.Category
		}
		if update.Stock != nil {
			p.Stock = *update.Stock
		}
		if err := s.write(doc); err != nil {
			return nil, err
		}
		updated := *p
		return &updated, nil
	}
	return nil, ErrNotFound
}

// DeleteProduct elimina un producto por id
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	kept := doc.Products[:0]
	for _, p := range doc.Products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(doc.Products) {
		return ErrNotFound
	}
	doc.Products = kept
	return s.write(doc)
}

// CreateOrder registra un pedido con id y marca de tiempo del servidor
func (s *Store) CreateOrder(ctx context.Context, input models.OrderInput) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	order := models.Order{
		ID:           uuid.NewString(),
		CustomerName: input.CustomerName,
		Email:        input.Email,
		Address:      input.Address,
		Items:        append([]models.CartItem(nil), input.Items...),
		Total:        input.Total,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	doc.Orders = append(doc.Orders, order)
	if err := s.write(doc); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders lista todos los pedidos registrados
func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Orders, nil
}
