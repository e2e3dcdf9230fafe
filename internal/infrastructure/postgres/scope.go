package postgres

// Fragmentos SQL compartidos por todas las consultas de productos. El filtro
// de propiedad vive aquí una sola vez: cualquier consulta sobre products parte
// de ownedProducts, así no existe un camino que olvide filtrar por dueño.
//
// Parámetros con pgx.NamedArgs: @owner_id siempre; @ref_date donde aplique el
// predicado de vencimiento (internal/domain/alert).
const (
	productColumns = `p.id, p.category_id, p.name, p.price, p.quantity, p.min_threshold, p.expiration_date, p.created_at`

	ownedProducts = `FROM products p
		JOIN categories c ON c.id = p.category_id AND c.owner_id = @owner_id`
)
