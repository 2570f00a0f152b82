package catalog

import "github.com/tu-usuario/gestion-pro/internal/domain/entity"

// Default construye el catálogo de módulos de la plataforma. El orden de
// declaración es el orden en que aparecen en el menú dentro de cada categoría.
func Default() *Catalog {
	return MustNew([]entity.Module{
		{
			ID: "dashboard", Name: "Panel principal", Category: entity.CategoryAdministrative,
			Icon: "home",
			Routes: []entity.Route{
				{Path: "/dashboard", Label: "Panel", Permission: "dashboard.view"},
			},
		},
		{
			ID: "crm", Name: "CRM", Category: entity.CategoryBusiness,
			Description: "Gestión de clientes potenciales y oportunidades",
			Icon:        "users",
			Routes: []entity.Route{
				{Path: "/crm", Label: "CRM", Permission: "crm.view"},
				{Path: "/crm/leads", Label: "Leads", Permission: "crm.leads.view"},
			},
		},
		{
			ID: "customers", Name: "Clientes", Category: entity.CategoryBusiness,
			Icon: "user-check",
			Routes: []entity.Route{
				{Path: "/customers", Label: "Clientes", Permission: "customers.view"},
			},
		},
		{
			ID: "products", Name: "Productos", Category: entity.CategoryBusiness,
			Icon: "box",
			Routes: []entity.Route{
				{Path: "/products", Label: "Productos", Permission: "products.view"},
			},
		},
		{
			ID: "orders", Name: "Pedidos", Category: entity.CategoryBusiness,
			Icon:         "shopping-cart",
			Dependencies: []string{"customers", "products"},
			Routes: []entity.Route{
				{Path: "/orders", Label: "Pedidos", Permission: "orders.view"},
				{Path: "/orders/new", Label: "Nuevo pedido", Permission: "orders.create"},
			},
		},
		{
			ID: "inventory", Name: "Inventario", Category: entity.CategoryBusiness,
			Icon:         "archive",
			Dependencies: []string{"products"},
			Routes: []entity.Route{
				{Path: "/inventory", Label: "Inventario", Permission: "inventory.view"},
				{Path: "/inventory/movements", Label: "Movimientos", Permission: "inventory.movements.view"},
			},
		},
		{
			ID: "invoicing", Name: "Facturación", Category: entity.CategoryFinancial,
			Icon:         "file-text",
			Dependencies: []string{"customers"},
			Routes: []entity.Route{
				{Path: "/invoices", Label: "Facturas", Permission: "invoices.view"},
				{Path: "/invoices/new", Label: "Nueva factura", Permission: "invoices.create"},
			},
		},
		{
			ID: "hr", Name: "Recursos Humanos", Category: entity.CategoryAdministrative,
			Icon: "briefcase",
			Routes: []entity.Route{
				{Path: "/hr", Label: "RRHH", Permission: "hr.view"},
			},
		},
		{
			ID: "payroll", Name: "Nómina", Category: entity.CategoryFinancial,
			Icon:         "dollar-sign",
			Dependencies: []string{"hr"},
			Routes: []entity.Route{
				{Path: "/payroll", Label: "Nómina", Permission: "payroll.view"},
			},
		},
		{
			ID: "elevators", Name: "Ascensores", Category: entity.CategoryTechnical,
			Description:  "Vertical de mantenimiento de ascensores",
			Icon:         "layers",
			Dependencies: []string{"customers"},
			Routes: []entity.Route{
				{Path: "/elevators", Label: "Ascensores", Permission: "elevators.view"},
			},
		},
		{
			ID: "servers", Name: "Servidores", Category: entity.CategoryTechnical,
			Description: "Vertical de hosting y monitoreo de servidores",
			Icon:        "server",
			Routes: []entity.Route{
				{Path: "/servers", Label: "Servidores", Permission: "servers.view"},
			},
		},
		{
			ID: "schools", Name: "Colegios", Category: entity.CategoryEducation,
			Description: "Vertical de gestión académica",
			Icon:        "book",
			Routes: []entity.Route{
				{Path: "/schools", Label: "Colegios", Permission: "schools.view"},
			},
		},
		{
			ID: "reports", Name: "Reportes", Category: entity.CategoryAnalytics,
			Icon:         "bar-chart",
			Dependencies: []string{"dashboard"},
			Routes: []entity.Route{
				{Path: "/reports", Label: "Reportes", Permission: "reports.view"},
			},
		},
	})
}
