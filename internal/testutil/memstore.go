// Package testutil provee un almacén en memoria que implementa los puertos de persistencia para tests.
package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/clientes-api/internal/application/ports"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ ports.ConnRunner = (*Store)(nil)

// Store simula la base de datos: unicidad de dni_ruc, ids autoincrementales y conexiones por unidad de trabajo.
type Store struct {
	mu          sync.Mutex
	clientes    map[int64]entity.Cliente
	usuarios    []entity.Usuario
	nextCliente int64
	nextUsuario int64

	// SkipPrecheck hace que ExistsDniRuc responda false siempre (simula la carrera check/escritura).
	SkipPrecheck bool
	// AcquireErr, si no es nil, hace fallar Run como si no hubiera conexión.
	AcquireErr error

	acquired int
	released int
	writes   int
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{clientes: make(map[int64]entity.Cliente)}
}

// Run simula adquirir y liberar una conexión alrededor de fn.
func (s *Store) Run(ctx context.Context, fn func(repository.ClienteRepository, repository.UsuarioRepository) error) error {
	if s.AcquireErr != nil {
		return domain.NewStorageError("acquire connection", s.AcquireErr)
	}
	s.mu.Lock()
	s.acquired++
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.released++
		s.mu.Unlock()
	}()
	return fn(&clienteRepo{s: s}, &usuarioRepo{s: s})
}

// Connections devuelve cuántas conexiones se adquirieron y liberaron.
func (s *Store) Connections() (acquired, released int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acquired, s.released
}

// Writes número de INSERT/UPDATE/DELETE ejecutados.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// ClienteCount número de clientes almacenados.
func (s *Store) ClienteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clientes)
}

// AddCliente inserta directamente (sin reglas) y devuelve el id.
func (s *Store) AddCliente(c entity.Cliente) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextCliente++
	c.ID = s.nextCliente
	s.clientes[c.ID] = c
	return c.ID
}

// AddUsuario inserta un usuario y devuelve el id.
func (s *Store) AddUsuario(usuario, password string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextUsuario++
	s.usuarios = append(s.usuarios, entity.Usuario{ID: s.nextUsuario, Usuario: usuario, Password: password})
	return s.nextUsuario
}

type clienteRepo struct{ s *Store }

func (r *clienteRepo) List(ctx context.Context) ([]*entity.Cliente, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.Cliente, 0, len(r.s.clientes))
	for _, c := range r.s.clientes {
		c := c
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *clienteRepo) GetByID(ctx context.Context, id int64) (*entity.Cliente, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clientes[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *clienteRepo) ExistsDniRuc(ctx context.Context, dniRuc string, excludeID *int64) (bool, error) {
	if r.s.SkipPrecheck {
		return false, nil
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.dniTaken(dniRuc, excludeID), nil
}

func (r *clienteRepo) Create(ctx context.Context, c *entity.Cliente) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.dniTaken(c.DniRuc, nil) {
		return 0, domain.ErrDuplicate
	}
	r.s.writes++
	r.s.nextCliente++
	stored := *c
	stored.ID = r.s.nextCliente
	r.s.clientes[stored.ID] = stored
	return stored.ID, nil
}

func (r *clienteRepo) Update(ctx context.Context, id int64, changes []entity.ClienteChange) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.writes++
	c, ok := r.s.clientes[id]
	if !ok {
		return 0, nil
	}
	for _, ch := range changes {
		switch ch.Column {
		case "dni_ruc":
			if ch.Value == nil {
				return 0, domain.NewStorageError("update cliente", errNotNull("dni_ruc"))
			}
			if r.s.dniTaken(*ch.Value, &id) {
				return 0, domain.ErrDuplicate
			}
			c.DniRuc = *ch.Value
		case "nombre_completo":
			if ch.Value == nil {
				return 0, domain.NewStorageError("update cliente", errNotNull("nombre_completo"))
			}
			c.NombreCompleto = *ch.Value
		case "telefono":
			c.Telefono = copyPtr(ch.Value)
		case "correo":
			c.Correo = copyPtr(ch.Value)
		case "direccion":
			c.Direccion = copyPtr(ch.Value)
		case "estado":
			c.Estado = copyPtr(ch.Value)
		}
	}
	r.s.clientes[id] = c
	return 1, nil
}

func (r *clienteRepo) Delete(ctx context.Context, id int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.writes++
	if _, ok := r.s.clientes[id]; !ok {
		return 0, nil
	}
	delete(r.s.clientes, id)
	return 1, nil
}

type usuarioRepo struct{ s *Store }

func (r *usuarioRepo) FindByUsuario(ctx context.Context, usuario string) (*entity.Usuario, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.usuarios {
		if u.Usuario == usuario {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *usuarioRepo) CountByUsuario(ctx context.Context, usuario string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, u := range r.s.usuarios {
		if u.Usuario == usuario {
			n++
		}
	}
	return n, nil
}

func (r *usuarioRepo) Create(ctx context.Context, u *entity.Usuario) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextUsuario++
	stored := *u
	stored.ID = r.s.nextUsuario
	r.s.usuarios = append(r.s.usuarios, stored)
	return stored.ID, nil
}

// dniTaken requiere s.mu tomado.
func (s *Store) dniTaken(dniRuc string, excludeID *int64) bool {
	for id, c := range s.clientes {
		if excludeID != nil && id == *excludeID {
			continue
		}
		if c.DniRuc == dniRuc {
			return true
		}
	}
	return false
}

func copyPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

type errNotNull string

func (e errNotNull) Error() string {
	return "null value in column \"" + string(e) + "\" violates not-null constraint"
}
