package entity

// Categorías de módulos para agrupar la navegación.
// El orden de declaración define el orden de las secciones del menú.
const (
	CategoryBusiness       = "BUSINESS"
	CategoryFinancial      = "FINANCIAL"
	CategoryTechnical      = "TECHNICAL"
	CategoryEducation      = "EDUCATION"
	CategoryAdministrative = "ADMINISTRATIVE"
	CategoryAnalytics      = "ANALYTICS"
)

// Categories lista las categorías en el orden fijo de presentación.
var Categories = []string{
	CategoryBusiness,
	CategoryFinancial,
	CategoryTechnical,
	CategoryEducation,
	CategoryAdministrative,
	CategoryAnalytics,
}

// Route es una ruta de UI que expone un módulo: path exacto (sin comodines),
// etiqueta de menú y permiso requerido para acceder.
type Route struct {
	Path       string `json:"path"`
	Label      string `json:"label"`
	Permission string `json:"permission"`
}

// Module es una entrada del catálogo de módulos SaaS. Inmutable en runtime:
// el catálogo se construye una vez al arranque y se inyecta donde se necesite.
type Module struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Icon         string   `json:"icon"`
	Routes       []Route  `json:"routes"`
	Dependencies []string `json:"dependencies"`
}
