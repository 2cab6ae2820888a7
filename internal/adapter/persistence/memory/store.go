// Package memory is the in-process storage driver (STORAGE_DRIVER=memory).
// It satisfies every repository port with the same version semantics as the
// DynamoDB repositories, which makes it suitable for tests and single-node
// deployments.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase/interfaces"
)

type catalogoKey struct {
	tipo entities.TipoCatalogo
	id   string
}

// Store holds every collection behind one lock so ledger units commit
// atomically.
type Store struct {
	mu         sync.RWMutex
	clientes   map[string]entities.Cliente
	trabajos   map[string]entities.Trabajo
	items      map[string]entities.Item
	pagos      map[string]entities.Pago
	eventos    map[string]entities.Evento
	documentos map[string]entities.Documento
	catalogos  map[catalogoKey]entities.CatalogoEntry
}

func NewStore() *Store {
	return &Store{
		clientes:   map[string]entities.Cliente{},
		trabajos:   map[string]entities.Trabajo{},
		items:      map[string]entities.Item{},
		pagos:      map[string]entities.Pago{},
		eventos:    map[string]entities.Evento{},
		documentos: map[string]entities.Documento{},
		catalogos:  map[catalogoKey]entities.CatalogoEntry{},
	}
}

func (s *Store) Clientes() *ClienteRepository     { return &ClienteRepository{s: s} }
func (s *Store) Trabajos() *TrabajoRepository     { return &TrabajoRepository{s: s} }
func (s *Store) Items() *ItemRepository           { return &ItemRepository{s: s} }
func (s *Store) Pagos() *PagoRepository           { return &PagoRepository{s: s} }
func (s *Store) Ledger() *LedgerRepository        { return &LedgerRepository{s: s} }
func (s *Store) Eventos() *EventoRepository       { return &EventoRepository{s: s} }
func (s *Store) Documentos() *DocumentoRepository { return &DocumentoRepository{s: s} }
func (s *Store) Catalogos() *CatalogoRepository   { return &CatalogoRepository{s: s} }

var (
	_ interfaces.IClienteRepository   = (*ClienteRepository)(nil)
	_ interfaces.ITrabajoRepository   = (*TrabajoRepository)(nil)
	_ interfaces.IItemRepository      = (*ItemRepository)(nil)
	_ interfaces.IPagoRepository      = (*PagoRepository)(nil)
	_ interfaces.ILedgerRepository    = (*LedgerRepository)(nil)
	_ interfaces.IEventoRepository    = (*EventoRepository)(nil)
	_ interfaces.IDocumentoRepository = (*DocumentoRepository)(nil)
	_ interfaces.ICatalogoRepository  = (*CatalogoRepository)(nil)
)

func sortByCreation[T any](list []T, created func(T) time.Time, id func(T) string) []T {
	sort.Slice(list, func(i, j int) bool {
		ci, cj := created(list[i]), created(list[j])
		if !ci.Equal(cj) {
			return ci.Before(cj)
		}
		return id(list[i]) < id(list[j])
	})
	return list
}

// ---- clientes

type ClienteRepository struct{ s *Store }

func (r *ClienteRepository) Create(_ context.Context, c entities.Cliente) (entities.Cliente, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clientes[c.ID]; ok {
		return entities.Cliente{}, entities.ErrVersionConflict
	}
	r.s.clientes[c.ID] = c
	return c, nil
}

func (r *ClienteRepository) GetByID(_ context.Context, id string) (entities.Cliente, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.clientes[id], nil
}

func (r *ClienteRepository) List(_ context.Context) ([]entities.Cliente, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Cliente, 0, len(r.s.clientes))
	for _, c := range r.s.clientes {
		out = append(out, c)
	}
	return sortByCreation(out, func(c entities.Cliente) time.Time { return c.CreatedAt }, func(c entities.Cliente) string { return c.ID }), nil
}

func (r *ClienteRepository) Update(_ context.Context, c entities.Cliente) (entities.Cliente, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.clientes[c.ID]
	if !ok || cur.Version != c.Version-1 {
		return entities.Cliente{}, entities.ErrVersionConflict
	}
	r.s.clientes[c.ID] = c
	return c, nil
}

func (r *ClienteRepository) ReplaceAll(_ context.Context, clientes []entities.Cliente) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.clientes = make(map[string]entities.Cliente, len(clientes))
	for _, c := range clientes {
		r.s.clientes[c.ID] = c
	}
	return nil
}

// ---- trabajos

type TrabajoRepository struct{ s *Store }

func (r *TrabajoRepository) Create(_ context.Context, t entities.Trabajo) (entities.Trabajo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.trabajos[t.ID]; ok {
		return entities.Trabajo{}, entities.ErrVersionConflict
	}
	r.s.trabajos[t.ID] = t
	return t, nil
}

func (r *TrabajoRepository) GetByID(_ context.Context, id string) (entities.Trabajo, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.trabajos[id], nil
}

func (r *TrabajoRepository) List(_ context.Context) ([]entities.Trabajo, error) {
	return r.filter(func(entities.Trabajo) bool { return true }), nil
}

func (r *TrabajoRepository) ListByClienteID(_ context.Context, clienteID string) ([]entities.Trabajo, error) {
	return r.filter(func(t entities.Trabajo) bool { return t.ClienteID == clienteID }), nil
}

func (r *TrabajoRepository) filter(keep func(entities.Trabajo) bool) []entities.Trabajo {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Trabajo, 0)
	for _, t := range r.s.trabajos {
		if keep(t) {
			out = append(out, t)
		}
	}
	return sortByCreation(out, func(t entities.Trabajo) time.Time { return t.CreatedAt }, func(t entities.Trabajo) string { return t.ID })
}

func (r *TrabajoRepository) ReplaceAll(_ context.Context, trabajos []entities.Trabajo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.trabajos = make(map[string]entities.Trabajo, len(trabajos))
	for _, t := range trabajos {
		r.s.trabajos[t.ID] = t
	}
	return nil
}

// ---- items

type ItemRepository struct{ s *Store }

func (r *ItemRepository) Create(_ context.Context, it entities.Item) (entities.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[it.ID]; ok {
		return entities.Item{}, entities.ErrVersionConflict
	}
	r.s.items[it.ID] = it
	return it, nil
}

func (r *ItemRepository) GetByID(_ context.Context, id string) (entities.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.items[id], nil
}

func (r *ItemRepository) List(_ context.Context) ([]entities.Item, error) {
	return r.filter(func(entities.Item) bool { return true }), nil
}

// ListByTrabajoID returns the items ordered by Orden.
func (r *ItemRepository) ListByTrabajoID(_ context.Context, trabajoID string) ([]entities.Item, error) {
	out := r.filter(func(it entities.Item) bool { return it.TrabajoID == trabajoID })
	sort.SliceStable(out, func(i, j int) bool { return out[i].Orden < out[j].Orden })
	return out, nil
}

func (r *ItemRepository) filter(keep func(entities.Item) bool) []entities.Item {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Item, 0)
	for _, it := range r.s.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return sortByCreation(out, func(it entities.Item) time.Time { return it.CreatedAt }, func(it entities.Item) string { return it.ID })
}

func (r *ItemRepository) Update(_ context.Context, it entities.Item) (entities.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.items[it.ID]
	if !ok || cur.Version != it.Version-1 {
		return entities.Item{}, entities.ErrVersionConflict
	}
	r.s.items[it.ID] = it
	return it, nil
}

func (r *ItemRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.items, id)
	return nil
}

func (r *ItemRepository) ReplaceAll(_ context.Context, items []entities.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items = make(map[string]entities.Item, len(items))
	for _, it := range items {
		r.s.items[it.ID] = it
	}
	return nil
}

// ---- pagos

type PagoRepository struct{ s *Store }

func (r *PagoRepository) GetByID(_ context.Context, id string) (entities.Pago, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.pagos[id], nil
}

func (r *PagoRepository) List(_ context.Context) ([]entities.Pago, error) {
	return r.filter(func(entities.Pago) bool { return true }), nil
}

func (r *PagoRepository) ListByTrabajoID(_ context.Context, trabajoID string) ([]entities.Pago, error) {
	return r.filter(func(p entities.Pago) bool { return p.TrabajoID == trabajoID }), nil
}

func (r *PagoRepository) filter(keep func(entities.Pago) bool) []entities.Pago {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Pago, 0)
	for _, p := range r.s.pagos {
		if keep(p) {
			out = append(out, p)
		}
	}
	return sortByCreation(out, func(p entities.Pago) time.Time { return p.CreatedAt }, func(p entities.Pago) string { return p.ID })
}

func (r *PagoRepository) ReplaceAll(_ context.Context, pagos []entities.Pago) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.pagos = make(map[string]entities.Pago, len(pagos))
	for _, p := range pagos {
		r.s.pagos[p.ID] = p
	}
	return nil
}

// ---- ledger

type LedgerRepository struct{ s *Store }

// Commit validates every precondition before touching any collection.
func (r *LedgerRepository) Commit(_ context.Context, w interfaces.LedgerWrite) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if w.CreateTrabajo != nil {
		if _, ok := r.s.trabajos[w.CreateTrabajo.ID]; ok {
			return entities.ErrVersionConflict
		}
	}
	if w.Trabajo != nil {
		cur, ok := r.s.trabajos[w.Trabajo.ID]
		if !ok || cur.Version != w.Trabajo.Version-1 {
			return entities.ErrVersionConflict
		}
	}
	if w.Item != nil {
		cur, ok := r.s.items[w.Item.ID]
		if !ok || cur.Version != w.Item.Version-1 {
			return entities.ErrVersionConflict
		}
	}
	if w.Cliente != nil {
		cur, ok := r.s.clientes[w.Cliente.ID]
		if !ok || cur.Version != w.Cliente.Version-1 {
			return entities.ErrVersionConflict
		}
	}
	if w.CreatePago != nil {
		if _, ok := r.s.pagos[w.CreatePago.ID]; ok {
			return entities.ErrVersionConflict
		}
	}
	if w.DeletePagoID != "" {
		if _, ok := r.s.pagos[w.DeletePagoID]; !ok {
			return entities.ErrVersionConflict
		}
	}

	if w.CreateTrabajo != nil {
		r.s.trabajos[w.CreateTrabajo.ID] = *w.CreateTrabajo
	}
	if w.Trabajo != nil {
		r.s.trabajos[w.Trabajo.ID] = *w.Trabajo
	}
	if w.Item != nil {
		r.s.items[w.Item.ID] = *w.Item
	}
	if w.Cliente != nil {
		r.s.clientes[w.Cliente.ID] = *w.Cliente
	}
	if w.CreatePago != nil {
		r.s.pagos[w.CreatePago.ID] = *w.CreatePago
	}
	if w.DeletePagoID != "" {
		delete(r.s.pagos, w.DeletePagoID)
	}
	return nil
}

// ---- eventos

type EventoRepository struct{ s *Store }

func (r *EventoRepository) Create(_ context.Context, e entities.Evento) (entities.Evento, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.eventos[e.ID]; ok {
		return entities.Evento{}, entities.ErrVersionConflict
	}
	r.s.eventos[e.ID] = e
	return e, nil
}

func (r *EventoRepository) GetByID(_ context.Context, id string) (entities.Evento, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.eventos[id], nil
}

// List returns eventos in chronological order.
func (r *EventoRepository) List(_ context.Context) ([]entities.Evento, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Evento, 0, len(r.s.eventos))
	for _, e := range r.s.eventos {
		out = append(out, e)
	}
	return sortByCreation(out, func(e entities.Evento) time.Time { return e.FechaEvento }, func(e entities.Evento) string { return e.ID }), nil
}

func (r *EventoRepository) Update(_ context.Context, e entities.Evento) (entities.Evento, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.eventos[e.ID]
	if !ok || cur.Version != e.Version-1 {
		return entities.Evento{}, entities.ErrVersionConflict
	}
	r.s.eventos[e.ID] = e
	return e, nil
}

func (r *EventoRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.eventos, id)
	return nil
}

func (r *EventoRepository) MarkReminderShown(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.eventos[id]
	if !ok || e.RecordatorioMostrado {
		return false, nil
	}
	e.RecordatorioMostrado = true
	e.Version++
	r.s.eventos[id] = e
	return true, nil
}

func (r *EventoRepository) ReplaceAll(_ context.Context, eventos []entities.Evento) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.eventos = make(map[string]entities.Evento, len(eventos))
	for _, e := range eventos {
		r.s.eventos[e.ID] = e
	}
	return nil
}

// ---- documentos

type DocumentoRepository struct{ s *Store }

func (r *DocumentoRepository) Create(_ context.Context, d entities.Documento) (entities.Documento, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.documentos[d.ID]; ok {
		return entities.Documento{}, entities.ErrVersionConflict
	}
	r.s.documentos[d.ID] = d
	return d, nil
}

func (r *DocumentoRepository) GetByID(_ context.Context, id string) (entities.Documento, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.documentos[id], nil
}

func (r *DocumentoRepository) List(_ context.Context) ([]entities.Documento, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Documento, 0, len(r.s.documentos))
	for _, d := range r.s.documentos {
		out = append(out, d)
	}
	return sortByCreation(out, func(d entities.Documento) time.Time { return d.FechaSubida }, func(d entities.Documento) string { return d.ID }), nil
}

func (r *DocumentoRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.documentos, id)
	return nil
}

func (r *DocumentoRepository) ReplaceAll(_ context.Context, documentos []entities.Documento) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.documentos = make(map[string]entities.Documento, len(documentos))
	for _, d := range documentos {
		r.s.documentos[d.ID] = d
	}
	return nil
}

// ---- catalogos

type CatalogoRepository struct{ s *Store }

func (r *CatalogoRepository) Create(_ context.Context, e entities.CatalogoEntry) (entities.CatalogoEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := catalogoKey{e.Tipo, e.ID}
	if _, ok := r.s.catalogos[k]; ok {
		return entities.CatalogoEntry{}, entities.ErrVersionConflict
	}
	r.s.catalogos[k] = e
	return e, nil
}

func (r *CatalogoRepository) GetByID(_ context.Context, tipo entities.TipoCatalogo, id string) (entities.CatalogoEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.catalogos[catalogoKey{tipo, id}], nil
}

// ListByTipo orders entries by Orden, then nombre.
func (r *CatalogoRepository) ListByTipo(_ context.Context, tipo entities.TipoCatalogo) ([]entities.CatalogoEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.CatalogoEntry, 0)
	for k, e := range r.s.catalogos {
		if k.tipo == tipo {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Orden != out[j].Orden {
			return out[i].Orden < out[j].Orden
		}
		if out[i].Nombre != out[j].Nombre {
			return out[i].Nombre < out[j].Nombre
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *CatalogoRepository) Delete(_ context.Context, tipo entities.TipoCatalogo, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.catalogos, catalogoKey{tipo, id})
	return nil
}

func (r *CatalogoRepository) ReplaceAll(_ context.Context, tipo entities.TipoCatalogo, entries []entities.CatalogoEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for k := range r.s.catalogos {
		if k.tipo == tipo {
			delete(r.s.catalogos, k)
		}
	}
	for _, e := range entries {
		e.Tipo = tipo
		r.s.catalogos[catalogoKey{tipo, e.ID}] = e
	}
	return nil
}
