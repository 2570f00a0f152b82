package entitlement

import "github.com/tu-usuario/gestion-pro/internal/domain/entity"

// MenuRoute ruta visible dentro de un módulo del menú.
type MenuRoute struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

// MenuModule módulo visible en el menú, con solo las rutas permitidas al usuario.
type MenuModule struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Icon   string      `json:"icon,omitempty"`
	Routes []MenuRoute `json:"routes"`
}

// MenuCategory sección del menú agrupada por categoría del catálogo.
type MenuCategory struct {
	Category string       `json:"category"`
	Modules  []MenuModule `json:"modules"`
}

// BuildMenu deriva el árbol de navegación para el tenant y el usuario:
// un módulo aparece si está activo y el usuario tiene permiso para al menos
// una de sus rutas; dentro del módulo solo se retienen las rutas permitidas.
// Las categorías sin módulos se omiten por completo (nunca grupos vacíos) y
// los módulos conservan el orden de declaración del catálogo, para que el
// layout del menú se controle desde el catálogo.
func (r *Resolver) BuildMenu(t *entity.Tenant, u *entity.User) []MenuCategory {
	buckets := make(map[string][]MenuModule)
	for _, m := range r.catalog.All() {
		if !r.IsModuleActive(t, m.ID) {
			continue
		}
		var routes []MenuRoute
		for _, route := range m.Routes {
			if r.HasPermission(t, u, route.Path) {
				routes = append(routes, MenuRoute{Path: route.Path, Label: route.Label})
			}
		}
		if len(routes) == 0 {
			continue
		}
		buckets[m.Category] = append(buckets[m.Category], MenuModule{
			ID:     m.ID,
			Name:   m.Name,
			Icon:   m.Icon,
			Routes: routes,
		})
	}

	menu := make([]MenuCategory, 0, len(buckets))
	for _, category := range entity.Categories {
		if modules, ok := buckets[category]; ok {
			menu = append(menu, MenuCategory{Category: category, Modules: modules})
		}
	}
	return menu
}
