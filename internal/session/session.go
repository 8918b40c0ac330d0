package session

import (
	"sync"
	"time"

	"storefront/internal/models"
)

// record es el estado de un visitante: su carrito y el flag de admin
type record struct {
	cart       []models.CartItem
	isAdmin    bool
	expiration int64
}

// Store guarda las sesiones en memoria, indexadas por el id de sesión
// de la cookie. Las sesiones viven lo que el proceso: no se persisten.
type Store struct {
	items map[string]*record
	mu    sync.RWMutex
	ttl   time.Duration
}

// New crea el almacén de sesiones y arranca la limpieza periódica
func New(ttl time.Duration) *Store {
	s := &Store{
		items: make(map[string]*record),
		ttl:   ttl,
	}
	// Limpiar sesiones expiradas cada 5 minutos
	go s.cleanupExpired()
	return s
}

// touch obtiene el registro de la sesión, creándolo vacío en el primer
// acceso, y renueva su expiración. Debe llamarse con el lock tomado.
func (s *Store) touch(sid string) *record {
	now := time.Now().UnixNano()
	rec, found := s.items[sid]
	if !found || now > rec.expiration {
		rec = &record{}
		s.items[sid] = rec
	}
	rec.expiration = time.Now().Add(s.ttl).UnixNano()
	return rec
}

// Cart devuelve una copia del carrito de la sesión (vacío si no existe)
func (s *Store) Cart(sid string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return snapshot(s.touch(sid).cart)
}

// AddItem suma cantidad a la línea del producto, o la agrega al final
func (s *Store) AddItem(sid, productID string, quantity int) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.touch(sid)
	for i := range rec.cart {
		if rec.cart[i].ProductID == productID {
			rec.cart[i].Quantity += quantity
			return snapshot(rec.cart)
		}
	}
	rec.cart = append(rec.cart, models.CartItem{ProductID: productID, Quantity: quantity})
	return snapshot(rec.cart)
}

// UpdateItem fija la cantidad de una línea. Cantidad <= 0 la elimina.
// Un productID ausente deja el carrito tal cual, sin error.
func (s *Store) UpdateItem(sid, productID string, quantity int) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.touch(sid)
	for i := range rec.cart {
		if rec.cart[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			rec.cart = append(rec.cart[:i], rec.cart[i+1:]...)
		} else {
			rec.cart[i].Quantity = quantity
		}
		break
	}
	return snapshot(rec.cart)
}

// RemoveItem elimina la línea del producto; idempotente
func (s *Store) RemoveItem(sid, productID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.touch(sid)
	kept := rec.cart[:0]
	for _, item := range rec.cart {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	rec.cart = kept
	return snapshot(rec.cart)
}

// ClearCart vacía el carrito; se invoca al confirmar un pedido
func (s *Store) ClearCart(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch(sid).cart = nil
}

// IsAdmin indica si la sesión pasó el login de administración
func (s *Store) IsAdmin(sid string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.touch(sid).isAdmin
}

// SetAdmin fija el flag de admin de la sesión
func (s *Store) SetAdmin(sid string, admin bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch(sid).isAdmin = admin
}

// Size retorna el número de sesiones vivas
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// cleanupExpired elimina sesiones expiradas periódicamente
func (s *Store) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now().UnixNano()
		for sid, rec := range s.items {
			if now > rec.expiration {
				delete(s.items, sid)
			}
		}
		s.mu.Unlock()
	}
}

// snapshot copia el carrito para que el llamador no comparta el slice
// interno de la sesión
func snapshot(cart []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(cart))
	copy(out, cart)
	return out
}
