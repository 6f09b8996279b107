// Package authz is the declarative capability table: {rol, recurso, accion} →
// allow/deny, evaluated once per request before the handler runs. Row-level
// ownership (a cliente touching only its own data) stays in the services.
package authz

// Recursos.
const (
	RecRol          = "rol"
	RecUsuario      = "usuario"
	RecCliente      = "cliente"
	RecCategoria    = "categorias"
	RecProducto     = "productos"
	RecCombo        = "combos"
	RecOferta       = "ofertas"
	RecPedido       = "pedido"
	RecVenta        = "ventas"
	RecCalificacion = "calificaciones"
	RecRepartidor   = "repartidores"
)

// Acciones.
const (
	AccLeer       = "leer"
	AccCrear      = "crear"
	AccActualizar = "actualizar"
	AccEliminar   = "eliminar"
)

const (
	administrador = "administrador"
	supervisor    = "supervisor"
	cliente       = "cliente"
	repartidor    = "repartidor"
)

// policy maps recurso → accion → allowed roles.
var policy = map[string]map[string][]string{
	RecRol: {
		AccLeer:       {administrador},
		AccCrear:      {administrador},
		AccActualizar: {administrador},
		AccEliminar:   {administrador},
	},
	RecUsuario: {
		AccLeer:       {administrador, supervisor},
		AccCrear:      {administrador},
		AccActualizar: {administrador},
		AccEliminar:   {administrador},
	},
	RecCliente: {
		// Services narrow cliente access to the caller's own profile.
		AccLeer:       {administrador, supervisor, cliente},
		AccCrear:      {administrador},
		AccActualizar: {administrador, cliente},
		AccEliminar:   {administrador},
	},
	RecCategoria: {
		AccLeer:       {administrador, supervisor, cliente, repartidor},
		AccCrear:      {administrador},
		AccActualizar: {administrador},
		AccEliminar:   {administrador},
	},
	RecProducto: {
		AccLeer:       {administrador, supervisor, cliente, repartidor},
		AccCrear:      {administrador, supervisor},
		AccActualizar: {administrador, supervisor},
		AccEliminar:   {administrador},
	},
	RecCombo: {
		AccLeer:       {administrador, supervisor, cliente},
		AccCrear:      {administrador, supervisor},
		AccActualizar: {administrador, supervisor},
		AccEliminar:   {administrador},
	},
	RecOferta: {
		AccLeer:       {administrador, supervisor, cliente},
		AccCrear:      {administrador, supervisor},
		AccActualizar: {administrador, supervisor},
		AccEliminar:   {administrador},
	},
	RecPedido: {
		AccLeer:       {administrador, supervisor, cliente, repartidor},
		AccCrear:      {cliente},
		AccActualizar: {administrador, supervisor, repartidor},
		AccEliminar:   {administrador},
	},
	RecVenta: {
		AccLeer:       {administrador, supervisor, cliente},
		AccCrear:      {administrador, supervisor},
		AccActualizar: {administrador, supervisor},
		AccEliminar:   {administrador},
	},
	RecCalificacion: {
		AccLeer:  {administrador, supervisor, cliente, repartidor},
		AccCrear: {cliente},
	},
	RecRepartidor: {
		AccLeer:       {administrador, supervisor, repartidor},
		AccCrear:      {administrador},
		AccActualizar: {administrador, supervisor, repartidor},
		AccEliminar:   {administrador},
	},
}

// Allowed reports whether rol may perform accion on recurso. Unknown
// resource/action pairs deny by default.
func Allowed(rol, recurso, accion string) bool {
	acciones, ok := policy[recurso]
	if !ok {
		return false
	}
	for _, r := range acciones[accion] {
		if r == rol {
			return true
		}
	}
	return false
}
