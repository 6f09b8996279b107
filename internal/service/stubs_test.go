package service

// In-memory repository stubs shared by the service tests. They mimic the
// translated GORM sentinels: gorm.ErrRecordNotFound on misses and
// gorm.ErrDuplicatedKey on unique-index violations.

import (
	"context"
	"strings"
	"time"

	"comidapp/internal/dto"
	"comidapp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── Rol ───────────────────────────────────────────────────────────────────────

type stubRolRepo struct{ roles map[uuid.UUID]*model.Rol }

func newStubRolRepo() *stubRolRepo { return &stubRolRepo{roles: map[uuid.UUID]*model.Rol{}} }

func (r *stubRolRepo) seed(nombre string) *model.Rol {
	rol := &model.Rol{ID: uuid.New(), Nombre: nombre, Estado: true}
	r.roles[rol.ID] = rol
	return rol
}

func (r *stubRolRepo) Crear(_ context.Context, rol *model.Rol) error {
	for _, existente := range r.roles {
		if existente.Nombre == rol.Nombre {
			return gorm.ErrDuplicatedKey
		}
	}
	rol.ID = uuid.New()
	r.roles[rol.ID] = rol
	return nil
}

func (r *stubRolRepo) Listar(_ context.Context) ([]model.Rol, error) {
	out := make([]model.Rol, 0, len(r.roles))
	for _, rol := range r.roles {
		out = append(out, *rol)
	}
	return out, nil
}

func (r *stubRolRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Rol, error) {
	rol, ok := r.roles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rol, nil
}

func (r *stubRolRepo) ObtenerPorNombre(_ context.Context, nombre string) (*model.Rol, error) {
	for _, rol := range r.roles {
		if strings.EqualFold(rol.Nombre, nombre) {
			return rol, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRolRepo) Actualizar(_ context.Context, rol *model.Rol) error {
	r.roles[rol.ID] = rol
	return nil
}

func (r *stubRolRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.roles, id)
	return nil
}

// ── Usuario ───────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct{ usuarios map[uuid.UUID]*model.Usuario }

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: map[uuid.UUID]*model.Usuario{}}
}

func (r *stubUsuarioRepo) Crear(_ context.Context, u *model.Usuario) error {
	for _, existente := range r.usuarios {
		if existente.NombreUsuario == u.NombreUsuario {
			return gorm.ErrDuplicatedKey
		}
	}
	u.ID = uuid.New()
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) Listar(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) ObtenerPorNombreUsuario(_ context.Context, nombre string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.NombreUsuario == nombre && u.Estado {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) ObtenerPorClienteID(_ context.Context, clienteID uuid.UUID) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.ClienteID != nil && *u.ClienteID == clienteID {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) Actualizar(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Estado = false
	return nil
}

// ── Cliente ───────────────────────────────────────────────────────────────────

type stubClienteRepo struct{ clientes map[uuid.UUID]*model.Cliente }

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: map[uuid.UUID]*model.Cliente{}}
}

func (r *stubClienteRepo) Crear(_ context.Context, c *model.Cliente) error {
	c.ID = uuid.New()
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) Listar(_ context.Context) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClienteRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) Actualizar(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	c, ok := r.clientes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Estado = false
	return nil
}

// ── Categoria ─────────────────────────────────────────────────────────────────

type stubCategoriaRepo struct{ categorias map[uuid.UUID]*model.Categoria }

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{categorias: map[uuid.UUID]*model.Categoria{}}
}

func (r *stubCategoriaRepo) seed(nombre string) *model.Categoria {
	c := &model.Categoria{ID: uuid.New(), Nombre: nombre, Estado: true}
	r.categorias[c.ID] = c
	return c
}

func (r *stubCategoriaRepo) Crear(_ context.Context, c *model.Categoria) error {
	for _, existente := range r.categorias {
		if strings.EqualFold(existente.Nombre, c.Nombre) {
			return gorm.ErrDuplicatedKey
		}
	}
	c.ID = uuid.New()
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) Listar(_ context.Context) ([]model.Categoria, error) {
	out := make([]model.Categoria, 0, len(r.categorias))
	for _, c := range r.categorias {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoriaRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoriaRepo) ObtenerPorNombre(_ context.Context, nombre string) (*model.Categoria, error) {
	for _, c := range r.categorias {
		if strings.EqualFold(c.Nombre, nombre) {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoriaRepo) ObtenerPorIDs(_ context.Context, ids []uuid.UUID) ([]model.Categoria, error) {
	var out []model.Categoria
	for _, id := range ids {
		if c, ok := r.categorias[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCategoriaRepo) Actualizar(_ context.Context, c *model.Categoria) error {
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.categorias, id)
	return nil
}

// ── Producto ──────────────────────────────────────────────────────────────────

type stubProductoRepo struct{ productos map[uuid.UUID]*model.Producto }

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: map[uuid.UUID]*model.Producto{}}
}

func (r *stubProductoRepo) seed(p model.Producto) *model.Producto {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = &p
	return &p
}

func (r *stubProductoRepo) Crear(_ context.Context, p *model.Producto) error {
	p.ID = uuid.New()
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok || p.Eliminado {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) ObtenerPorIDs(_ context.Context, ids []uuid.UUID) ([]model.Producto, error) {
	var out []model.Producto
	for _, id := range ids {
		if p, ok := r.productos[id]; ok && !p.Eliminado {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) Listar(_ context.Context, _ dto.ProductoFilter) ([]model.Producto, int64, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if !p.Eliminado {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubProductoRepo) Actualizar(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Eliminado = true
	return nil
}

func (r *stubProductoRepo) ContarPorCategoria(_ context.Context, categoriaID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range r.productos {
		if p.CategoriaID == categoriaID && !p.Eliminado {
			n++
		}
	}
	return n, nil
}

// ── Combo ─────────────────────────────────────────────────────────────────────

type stubComboRepo struct{ combos map[uuid.UUID]*model.Combo }

func newStubComboRepo() *stubComboRepo { return &stubComboRepo{combos: map[uuid.UUID]*model.Combo{}} }

func (r *stubComboRepo) Crear(_ context.Context, c *model.Combo) error {
	for _, existente := range r.combos {
		if existente.Nombre == c.Nombre {
			return gorm.ErrDuplicatedKey
		}
	}
	c.ID = uuid.New()
	r.combos[c.ID] = c
	return nil
}

func (r *stubComboRepo) Listar(_ context.Context) ([]model.Combo, error) {
	out := make([]model.Combo, 0, len(r.combos))
	for _, c := range r.combos {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubComboRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Combo, error) {
	c, ok := r.combos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubComboRepo) Actualizar(_ context.Context, c *model.Combo) error {
	r.combos[c.ID] = c
	return nil
}

func (r *stubComboRepo) ReemplazarProductos(_ context.Context, c *model.Combo, productos []model.Producto) error {
	c.Productos = productos
	return nil
}

func (r *stubComboRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.combos, id)
	return nil
}

// ── Oferta ────────────────────────────────────────────────────────────────────

type stubOfertaRepo struct{ ofertas map[uuid.UUID]*model.Oferta }

func newStubOfertaRepo() *stubOfertaRepo {
	return &stubOfertaRepo{ofertas: map[uuid.UUID]*model.Oferta{}}
}

func (r *stubOfertaRepo) Crear(_ context.Context, o *model.Oferta) error {
	for _, existente := range r.ofertas {
		if existente.Nombre == o.Nombre {
			return gorm.ErrDuplicatedKey
		}
	}
	o.ID = uuid.New()
	r.ofertas[o.ID] = o
	return nil
}

func (r *stubOfertaRepo) Listar(_ context.Context) ([]model.Oferta, error) {
	out := make([]model.Oferta, 0, len(r.ofertas))
	for _, o := range r.ofertas {
		out = append(out, *o)
	}
	return out, nil
}

func (r *stubOfertaRepo) ListarVigentes(_ context.Context, now time.Time) ([]model.Oferta, error) {
	var out []model.Oferta
	for _, o := range r.ofertas {
		if o.Estado && !now.Before(o.FechaInicio) && !now.After(o.FechaFin) {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOfertaRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Oferta, error) {
	o, ok := r.ofertas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (r *stubOfertaRepo) Actualizar(_ context.Context, o *model.Oferta) error {
	r.ofertas[o.ID] = o
	return nil
}

func (r *stubOfertaRepo) ReemplazarProductos(_ context.Context, o *model.Oferta, productos []model.Producto) error {
	o.ProductosAplicables = productos
	return nil
}

func (r *stubOfertaRepo) ReemplazarCategorias(_ context.Context, o *model.Oferta, categorias []model.Categoria) error {
	o.CategoriasAplicables = categorias
	return nil
}

func (r *stubOfertaRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.ofertas, id)
	return nil
}

// ── Pedido ────────────────────────────────────────────────────────────────────

type stubPedidoRepo struct{ pedidos map[uuid.UUID]*model.Pedido }

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{pedidos: map[uuid.UUID]*model.Pedido{}}
}

func (r *stubPedidoRepo) seed(p model.Pedido) *model.Pedido {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.pedidos[p.ID] = &p
	return &p
}

func (r *stubPedidoRepo) Crear(_ context.Context, p *model.Pedido) error {
	p.ID = uuid.New()
	for i := range p.Items {
		p.Items[i].ID = uuid.New()
		p.Items[i].PedidoID = p.ID
	}
	r.pedidos[p.ID] = p
	return nil
}

func (r *stubPedidoRepo) Listar(_ context.Context, filter dto.PedidoFilter) ([]model.Pedido, int64, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		if filter.ClienteID != "" && p.ClienteID.String() != filter.ClienteID {
			continue
		}
		if filter.Estado != "" && p.Estado != filter.Estado {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubPedidoRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPedidoRepo) ActualizarEstado(_ context.Context, id uuid.UUID, estado string) error {
	p, ok := r.pedidos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Estado = estado
	return nil
}

func (r *stubPedidoRepo) AsignarRepartidor(_ context.Context, id uuid.UUID, repartidorID uuid.UUID) error {
	p, ok := r.pedidos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.RepartidorID = &repartidorID
	return nil
}

// ── Venta ─────────────────────────────────────────────────────────────────────

type stubVentaRepo struct{ ventas map[uuid.UUID]*model.Venta }

func newStubVentaRepo() *stubVentaRepo { return &stubVentaRepo{ventas: map[uuid.UUID]*model.Venta{}} }

func (r *stubVentaRepo) Crear(_ context.Context, v *model.Venta) error {
	for _, existente := range r.ventas {
		if existente.PedidoID == v.PedidoID {
			return gorm.ErrDuplicatedKey
		}
	}
	v.ID = uuid.New()
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) Listar(_ context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if filter.ClienteID != "" && v.ClienteID.String() != filter.ClienteID {
			continue
		}
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *stubVentaRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVentaRepo) ObtenerPorPedidoID(_ context.Context, pedidoID uuid.UUID) (*model.Venta, error) {
	for _, v := range r.ventas {
		if v.PedidoID == pedidoID {
			return v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubVentaRepo) AsignarNumeroFactura(_ context.Context, id uuid.UUID, numero string) (bool, error) {
	for _, v := range r.ventas {
		if v.NumeroFactura != nil && *v.NumeroFactura == numero {
			return false, gorm.ErrDuplicatedKey
		}
	}
	v, ok := r.ventas[id]
	if !ok {
		return false, gorm.ErrRecordNotFound
	}
	if v.NumeroFactura != nil {
		return false, nil
	}
	v.NumeroFactura = &numero
	return true, nil
}

func (r *stubVentaRepo) ActualizarEstadoPago(_ context.Context, id uuid.UUID, estado string) error {
	v, ok := r.ventas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.EstadoPago = estado
	return nil
}

func (r *stubVentaRepo) ActualizarPDFPath(_ context.Context, id uuid.UUID, path string) error {
	v, ok := r.ventas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.FacturaPDFPath = &path
	return nil
}

// ── Calificacion ──────────────────────────────────────────────────────────────

type stubCalificacionRepo struct{ calificaciones map[uuid.UUID]*model.Calificacion }

func newStubCalificacionRepo() *stubCalificacionRepo {
	return &stubCalificacionRepo{calificaciones: map[uuid.UUID]*model.Calificacion{}}
}

func (r *stubCalificacionRepo) Crear(_ context.Context, c *model.Calificacion) error {
	for _, existente := range r.calificaciones {
		if existente.PedidoID == c.PedidoID {
			return gorm.ErrDuplicatedKey
		}
	}
	c.ID = uuid.New()
	r.calificaciones[c.ID] = c
	return nil
}

func (r *stubCalificacionRepo) Listar(_ context.Context) ([]model.Calificacion, error) {
	out := make([]model.Calificacion, 0, len(r.calificaciones))
	for _, c := range r.calificaciones {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCalificacionRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Calificacion, error) {
	c, ok := r.calificaciones[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCalificacionRepo) ObtenerPorPedidoID(_ context.Context, pedidoID uuid.UUID) (*model.Calificacion, error) {
	for _, c := range r.calificaciones {
		if c.PedidoID == pedidoID {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCalificacionRepo) ListarPorCliente(_ context.Context, clienteID uuid.UUID) ([]model.Calificacion, error) {
	var out []model.Calificacion
	for _, c := range r.calificaciones {
		if c.ClienteID == clienteID {
			out = append(out, *c)
		}
	}
	return out, nil
}

// ── Repartidor ────────────────────────────────────────────────────────────────

type stubRepartidorRepo struct {
	repartidores map[uuid.UUID]*model.Repartidor
	entregas     map[uuid.UUID][]model.Entrega
}

func newStubRepartidorRepo() *stubRepartidorRepo {
	return &stubRepartidorRepo{
		repartidores: map[uuid.UUID]*model.Repartidor{},
		entregas:     map[uuid.UUID][]model.Entrega{},
	}
}

func (r *stubRepartidorRepo) seed(rep model.Repartidor) *model.Repartidor {
	if rep.ID == uuid.Nil {
		rep.ID = uuid.New()
	}
	r.repartidores[rep.ID] = &rep
	return &rep
}

func (r *stubRepartidorRepo) Crear(_ context.Context, rep *model.Repartidor) error {
	for _, existente := range r.repartidores {
		if existente.UsuarioID == rep.UsuarioID {
			return gorm.ErrDuplicatedKey
		}
	}
	rep.ID = uuid.New()
	r.repartidores[rep.ID] = rep
	return nil
}

func (r *stubRepartidorRepo) Listar(_ context.Context) ([]model.Repartidor, error) {
	out := make([]model.Repartidor, 0, len(r.repartidores))
	for _, rep := range r.repartidores {
		out = append(out, *rep)
	}
	return out, nil
}

func (r *stubRepartidorRepo) ListarDisponibles(_ context.Context) ([]model.Repartidor, error) {
	var out []model.Repartidor
	for _, rep := range r.repartidores {
		if rep.Disponible {
			out = append(out, *rep)
		}
	}
	return out, nil
}

func (r *stubRepartidorRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Repartidor, error) {
	rep, ok := r.repartidores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rep, nil
}

func (r *stubRepartidorRepo) ObtenerPorUsuarioID(_ context.Context, usuarioID uuid.UUID) (*model.Repartidor, error) {
	for _, rep := range r.repartidores {
		if rep.UsuarioID == usuarioID {
			return rep, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepartidorRepo) Actualizar(_ context.Context, rep *model.Repartidor) error {
	r.repartidores[rep.ID] = rep
	return nil
}

func (r *stubRepartidorRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.repartidores, id)
	return nil
}

func (r *stubRepartidorRepo) CrearEntrega(_ context.Context, e *model.Entrega) error {
	e.ID = uuid.New()
	e.CreatedAt = time.Now()
	r.entregas[e.RepartidorID] = append(r.entregas[e.RepartidorID], *e)
	return nil
}

func (r *stubRepartidorRepo) ListarEntregas(_ context.Context, repartidorID uuid.UUID) ([]model.Entrega, error) {
	return r.entregas[repartidorID], nil
}
