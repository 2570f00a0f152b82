package catalog

import (
	"fmt"
	"sort"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// Catalog es el registro inmutable de módulos de la plataforma. Se construye
// una sola vez al arranque (validando dependencias) y se inyecta en el
// resolver y el builder de navegación; no hay estado global.
type Catalog struct {
	modules map[string]entity.Module
	order   []string                       // orden de declaración, controla el layout del menú
	closure map[string]map[string]struct{} // clausura transitiva de dependencias, cacheada
}

// New construye el catálogo validando que toda dependencia declarada exista y
// que el grafo de dependencias sea acíclico. Un catálogo inválido es un error
// de configuración: el proceso no debe arrancar.
func New(modules []entity.Module) (*Catalog, error) {
	c := &Catalog{
		modules: make(map[string]entity.Module, len(modules)),
		order:   make([]string, 0, len(modules)),
		closure: make(map[string]map[string]struct{}, len(modules)),
	}
	for _, m := range modules {
		if m.ID == "" {
			return nil, fmt.Errorf("catalog: módulo sin id")
		}
		if _, dup := c.modules[m.ID]; dup {
			return nil, fmt.Errorf("catalog: módulo duplicado %q", m.ID)
		}
		c.modules[m.ID] = m
		c.order = append(c.order, m.ID)
	}
	for _, m := range modules {
		for _, dep := range m.Dependencies {
			if _, ok := c.modules[dep]; !ok {
				return nil, fmt.Errorf("catalog: módulo %q depende de %q, que no existe", m.ID, dep)
			}
		}
	}
	if err := c.buildClosure(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNew como New pero con panic; para catálogos fijos en código y tests.
func MustNew(modules []entity.Module) *Catalog {
	c, err := New(modules)
	if err != nil {
		panic(err)
	}
	return c
}

// buildClosure calcula la clausura transitiva de dependencias vía DFS con
// marcadores de "visitando" para detectar ciclos.
func (c *Catalog) buildClosure() error {
	const (
		white = 0 // no visitado
		gray  = 1 // en la pila DFS
		black = 2 // terminado
	)
	color := make(map[string]int, len(c.modules))

	var visit func(id string) error
	visit = func(id string) error {
		switch color[id] {
		case gray:
			return fmt.Errorf("catalog: ciclo de dependencias que involucra a %q", id)
		case black:
			return nil
		}
		color[id] = gray
		deps := make(map[string]struct{})
		for _, dep := range c.modules[id].Dependencies {
			if err := visit(dep); err != nil {
				return err
			}
			deps[dep] = struct{}{}
			for d := range c.closure[dep] {
				deps[d] = struct{}{}
			}
		}
		c.closure[id] = deps
		color[id] = black
		return nil
	}

	for _, id := range c.order {
		if err := visit(id); err != nil {
			return err
		}
	}
	return nil
}

// Get devuelve el módulo por id.
func (c *Catalog) Get(id string) (entity.Module, bool) {
	m, ok := c.modules[id]
	return m, ok
}

// Has informa si el id existe en el catálogo.
func (c *Catalog) Has(id string) bool {
	_, ok := c.modules[id]
	return ok
}

// All devuelve los módulos en orden de declaración (estable, no alfabético:
// el orden del catálogo controla el orden del menú).
func (c *Catalog) All() []entity.Module {
	out := make([]entity.Module, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.modules[id])
	}
	return out
}

// DependenciesOf devuelve la clausura transitiva de dependencias del módulo,
// ordenada para salida determinista. Lista vacía si el id no existe.
func (c *Catalog) DependenciesOf(id string) []string {
	deps, ok := c.closure[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(deps))
	for d := range deps {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// DependsOn informa si id depende (transitivamente) de dep.
func (c *Catalog) DependsOn(id, dep string) bool {
	deps, ok := c.closure[id]
	if !ok {
		return false
	}
	_, ok = deps[dep]
	return ok
}
